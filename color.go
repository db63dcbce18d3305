package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// ColorUtils 颜色工具类
type ColorUtils struct{}

// NewColorUtils 创建颜色工具实例
func NewColorUtils() *ColorUtils {
	return &ColorUtils{}
}

// GetSupportedColors 获取go-pretty支持的所有颜色
func (c *ColorUtils) GetSupportedColors() map[string]text.Color {
	return map[string]text.Color{
		"black":   text.FgBlack,
		"red":     text.FgRed,
		"green":   text.FgGreen,
		"yellow":  text.FgYellow,
		"blue":    text.FgBlue,
		"magenta": text.FgMagenta,
		"cyan":    text.FgCyan,
		"white":   text.FgWhite,
	}
}

// GetColorOrDefault 按名称获取颜色，无效时使用默认黄色
func (c *ColorUtils) GetColorOrDefault(colorName string) text.Color {
	if color, exists := c.GetSupportedColors()[strings.ToLower(colorName)]; exists {
		return color
	}
	return text.FgYellow
}

// IsSupported 颜色名称是否有效
func (c *ColorUtils) IsSupported(colorName string) bool {
	_, exists := c.GetSupportedColors()[strings.ToLower(colorName)]
	return exists
}

// highlightMatch 高亮 symbol 中与搜索文本匹配的片段
func (m *Model) highlightMatch(symbol, search string) string {
	start, end, ok := matchRange(symbol, search)
	if !ok {
		return symbol
	}
	color := NewColorUtils().GetColorOrDefault(m.config.Display.HighlightColor)
	colors := text.Colors{color, text.Bold}
	return symbol[:start] + colors.Sprint(symbol[start:end]) + symbol[end:]
}
