package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ColumnID - 列的唯一标识符，同时作为排序键
type ColumnID string

// 列ID常量
const (
	ColSymbol    ColumnID = "symbol"
	ColTimeframe ColumnID = "timeframe"
	ColStartDate ColumnID = "start_date"
	ColEndDate   ColumnID = "end_date"
	ColFile      ColumnID = "file"
)

// defaultColumnOrder 默认列顺序
var defaultColumnOrder = []ColumnID{ColSymbol, ColTimeframe, ColStartDate, ColEndDate, ColFile}

// ColumnMetadata - 列的元数据
type ColumnMetadata struct {
	ID      ColumnID // 列ID
	I18nKey string   // 国际化翻译键
}

// columnRegistry - 列注册表，只读
var columnRegistry = map[ColumnID]*ColumnMetadata{
	ColSymbol:    {ID: ColSymbol, I18nKey: "col.symbol"},
	ColTimeframe: {ID: ColTimeframe, I18nKey: "col.timeframe"},
	ColStartDate: {ID: ColStartDate, I18nKey: "col.start_date"},
	ColEndDate:   {ID: ColEndDate, I18nKey: "col.end_date"},
	ColFile:      {ID: ColFile, I18nKey: "col.file"},
}

// parseColumnID 解析列ID（不区分大小写，允许 "-" 代替 "_"）
func parseColumnID(s string) (ColumnID, bool) {
	id := ColumnID(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	_, ok := columnRegistry[id]
	return id, ok
}

// buildColumnList - 从配置构建列元数据列表
// 配置为空时使用默认顺序；无效与重复的列ID被忽略
func buildColumnList(configIDs []string) []*ColumnMetadata {
	var result []*ColumnMetadata
	seen := make(map[ColumnID]bool)
	for _, idStr := range configIDs {
		id, ok := parseColumnID(idStr)
		if !ok {
			logWarn("log.config.invalidColumn", idStr)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, columnRegistry[id])
	}

	if len(result) == 0 {
		for _, id := range defaultColumnOrder {
			result = append(result, columnRegistry[id])
		}
	}
	return result
}

// columnLabel 列标题（不含排序指示器）
func (m *Model) columnLabel(col *ColumnMetadata) string {
	return m.getText(col.I18nKey)
}

// sortIndicator 当前排序列的方向指示器
func sortIndicator(direction SortDirection) string {
	if direction == SortDesc {
		return "↓"
	}
	return "↑"
}

// GenerateHeader - 生成表头（含光标列与排序指示器）
func (m *Model) GenerateHeader() table.Row {
	header := make(table.Row, 0, len(m.columns)+1)
	header = append(header, "")

	for i, col := range m.columns {
		label := m.columnLabel(col)
		if m.focus == FocusTable {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if col.ID == m.viewState.SortColumn {
			label = fmt.Sprintf("%s %s", label, sortIndicator(m.viewState.SortDirection))
		}
		header = append(header, label)
	}
	return header
}

// GenerateRow - 生成数据行
func (m *Model) GenerateRow(record Record, rowIndex int) table.Row {
	row := make(table.Row, 0, len(m.columns)+1)
	if rowIndex == m.cursor && m.focus == FocusTable {
		row = append(row, "►")
	} else {
		row = append(row, "")
	}

	for _, col := range m.columns {
		switch col.ID {
		case ColSymbol:
			row = append(row, m.highlightMatch(record.Symbol, m.viewState.SearchText))
		case ColFile:
			row = append(row, m.styles.file.Render(record.File))
		default:
			row = append(row, displayValue(record.Field(col.ID)))
		}
	}
	return row
}

// plainRow - 生成无颜色的数据行（导出与纯文本输出使用）
func plainRow(record Record, columns []*ColumnMetadata) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = record.Field(col.ID)
	}
	return row
}
