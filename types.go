package main

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// Record 数据集记录（来自API）
type Record struct {
	Symbol    string `json:"symbol"`
	Timeframe string `json:"timeframe"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	File      string `json:"file"`
}

// ViewState 表格视图状态，驱动渲染内容
type ViewState struct {
	RawRecords    []Record      // 加载得到的原始记录
	SearchText    string        // 搜索文本
	SortColumn    ColumnID      // 当前排序列
	SortDirection SortDirection // 当前排序方向
	IsLoading     bool          // 是否正在加载
}

// Config 系统配置结构
type Config struct {
	Source  SourceConfig  `yaml:"source"`  // 数据源
	HTTP    HTTPConfig    `yaml:"http"`    // HTTP 客户端设置
	System  SystemConfig  `yaml:"system"`  // 系统设置
	Display DisplayConfig `yaml:"display"` // 显示设置
	Log     LogConfig     `yaml:"log"`     // 日志设置
	Export  ExportConfig  `yaml:"export"`  // 导出设置
}

// SourceConfig 数据源设置
type SourceConfig struct {
	URL string `yaml:"url"` // Loader 请求的 HTTP 地址
}

// HTTPConfig HTTP 客户端设置
type HTTPConfig struct {
	Timeout int `yaml:"timeout"` // 请求超时（秒），0 表示使用传输层默认行为
}

// SystemConfig 系统设置
type SystemConfig struct {
	Language  string `yaml:"language"`   // 默认语言 "zh" 或 "en"
	DebugMode bool   `yaml:"debug_mode"` // 调试模式开关
	Timezone  string `yaml:"timezone"`   // 解析日期使用的时区
}

// DisplayConfig 显示设置
type DisplayConfig struct {
	TableStyle     string   `yaml:"table_style"`     // 表格样式 "light", "bold", "rounded", "double", "default"
	MaxLines       int      `yaml:"max_lines"`       // 每页最大显示行数
	Columns        []string `yaml:"columns"`         // 列顺序及可见性
	HighlightColor string   `yaml:"highlight_color"` // 搜索匹配部分的颜色
}

// LogConfig 日志设置
type LogConfig struct {
	Dir   string `yaml:"dir"`   // 日志目录
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// ExportConfig 导出设置
type ExportConfig struct {
	Dir string `yaml:"dir"` // xlsx 导出目录
}

// TextMap 文本映射结构（用于i18n）
type TextMap map[string]string

// Model 应用程序主模型
type Model struct {
	viewState ViewState // 表格视图状态
	cache     viewCache // 派生视图缓存
	config    Config    // 系统配置
	language  Language
	location  *time.Location // 日期解析时区
	styles    uiStyles       // 组件内样式
	columns   []*ColumnMetadata

	// 组件
	searchInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	focus       FocusArea

	// 加载
	client         *http.Client
	ctx            context.Context
	cancel         context.CancelFunc
	loadStarted    bool  // Loader 只运行一次
	lastLoadErr    error // 仅用于诊断
	droppedRecords int   // 缺少 symbol 被丢弃的记录数

	// 滚动
	cursor    int // 当前选中行（派生视图中的下标）
	scrollTop int // 可见窗口第一行

	// 调试
	debugMode      bool
	debugLogs      []string
	debugScrollPos int

	message string // 状态栏消息
	width   int
}

// recordsLoadedMsg Loader 完成消息
type recordsLoadedMsg struct {
	Records []Record
	Dropped int
	Err     error
}

// exportDoneMsg 导出完成消息
type exportDoneMsg struct {
	Path string
	Rows int
	Err  error
}
