package main

// 文件路径常量
const (
	defaultConfigFile = "conf/config.yml"
	defaultLogDir     = "logs"
	defaultExportDir  = "exports"
	appName           = "dataset-browser"
	envSourceURL      = "DATASET_BROWSER_URL"
)

// 语言常量
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// 焦点区域
type FocusArea int

const (
	FocusSearch FocusArea = iota // 搜索框
	FocusTable                   // 表格
)

// 排序方向枚举
type SortDirection int

const (
	SortAsc  SortDirection = iota // 升序
	SortDesc                      // 降序
)

// String 返回排序方向的配置/命令行名称
func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// 表格样式名称
const (
	TableStyleLight   = "light"
	TableStyleBold    = "bold"
	TableStyleRounded = "rounded"
	TableStyleDouble  = "double"
	TableStyleDefault = "default"
)
