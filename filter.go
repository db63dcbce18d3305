package main

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// ============================================================================
// 视图过滤
// ============================================================================

// foldText Unicode 大小写折叠，用于不区分大小写的匹配
func foldText(s string) string {
	return cases.Fold().String(s)
}

// filterRecords 返回 symbol 包含搜索文本（不区分大小写）的记录
// 空搜索文本匹配全部记录，结果始终是新切片
func filterRecords(records []Record, search string) []Record {
	filtered := make([]Record, 0, len(records))
	if search == "" {
		return append(filtered, records...)
	}

	needle := foldText(search)
	for _, record := range records {
		if strings.Contains(foldText(record.Symbol), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// matchRange 返回 symbol 中首个匹配片段的字节区间，用于高亮
// 任一字符折叠后字节长度变化时（如 ß），不返回区间
func matchRange(symbol, search string) (int, int, bool) {
	if search == "" {
		return 0, 0, false
	}
	var b strings.Builder
	for _, r := range symbol {
		f := foldText(string(r))
		if len(f) != len(string(r)) {
			return 0, 0, false
		}
		b.WriteString(f)
	}
	folded := b.String()
	needle := foldText(search)
	start := strings.Index(folded, needle)
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(needle), true
}

// deriveView 派生显示序列：先过滤再排序，纯函数
func deriveView(state ViewState, loc *time.Location) []Record {
	return sortRecords(filterRecords(state.RawRecords, state.SearchText), state.SortColumn, state.SortDirection, loc)
}
