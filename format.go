package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ============================================================================
// 组件样式
// ============================================================================

// uiStyles 组件内样式定义，由 Model 持有
type uiStyles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
	muted   lipgloss.Style
	file    lipgloss.Style
	search  lipgloss.Style
}

// newUIStyles 创建样式
func newUIStyles() uiStyles {
	return uiStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		file:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1),
		search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// ============================================================================
// 表格样式
// ============================================================================

// tableStyles 支持的表格样式
var tableStyles = map[string]table.Style{
	TableStyleLight:   table.StyleLight,
	TableStyleBold:    table.StyleBold,
	TableStyleRounded: table.StyleRounded,
	TableStyleDouble:  table.StyleDouble,
	TableStyleDefault: table.StyleDefault,
}

// getTableStyle 按名称获取表格样式，无效时使用 light
// 表头保持 i18n 原文大小写
func getTableStyle(name string) table.Style {
	style, ok := tableStyles[name]
	if !ok {
		style = table.StyleLight
	}
	style.Format.Header = text.FormatDefault
	return style
}

// displayValue 空字段显示为 "-"
func displayValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
