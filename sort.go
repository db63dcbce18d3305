package main

import (
	"sort"
	"strings"
	"time"
)

// RecordSorter 记录排序接口
type RecordSorter interface {
	Sort(records []Record, column ColumnID, direction SortDirection) []Record
}

// DefaultSorter 默认排序实现（稳定排序，降序通过翻转比较结果实现）
type DefaultSorter struct {
	location *time.Location
}

// NewDefaultSorter 创建默认排序器，loc 为日期解析时区
func NewDefaultSorter(loc *time.Location) *DefaultSorter {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultSorter{location: loc}
}

// sortKey 预先计算的排序键，避免比较时重复解析日期
type sortKey struct {
	record Record
	text   string
	date   time.Time
	valid  bool
}

// Sort 返回按列排序后的新切片，相等元素保持输入顺序（升序降序都是如此）
func (s *DefaultSorter) Sort(records []Record, column ColumnID, direction SortDirection) []Record {
	dateColumn := isDateColumn(column)

	keys := make([]sortKey, len(records))
	for i, record := range records {
		value := record.Field(column)
		keys[i] = sortKey{record: record, text: value}
		if dateColumn {
			keys[i].date, keys[i].valid = parseRecordDate(value, s.location)
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		var result int
		if dateColumn {
			result = compareDates(keys[i], keys[j])
		} else {
			result = strings.Compare(keys[i].text, keys[j].text)
		}

		if direction == SortDesc {
			return result > 0
		}
		return result < 0
	})

	sorted := make([]Record, len(keys))
	for i, k := range keys {
		sorted[i] = k.record
	}
	return sorted
}

// compareDates 按时间先后比较，无法解析的日期视为最大值，彼此相等
func compareDates(a, b sortKey) int {
	switch {
	case a.valid && b.valid:
		return a.date.Compare(b.date)
	case a.valid:
		return -1
	case b.valid:
		return 1
	default:
		return 0
	}
}

// isDateColumn 列名包含 "date" 即按日期排序
func isDateColumn(column ColumnID) bool {
	return strings.Contains(string(column), "date")
}

// sortRecords 排序入口，供视图派生调用
func sortRecords(records []Record, column ColumnID, direction SortDirection, loc *time.Location) []Record {
	return NewDefaultSorter(loc).Sort(records, column, direction)
}

// toggleSort 排序列切换状态机
// 再次激活当前升序列时切换为降序，其余情况一律为新列升序
func toggleSort(current ColumnID, direction SortDirection, activated ColumnID) (ColumnID, SortDirection) {
	if current == activated && direction == SortAsc {
		return activated, SortDesc
	}
	return activated, SortAsc
}

// Field 按列ID取字段值
func (r Record) Field(column ColumnID) string {
	switch column {
	case ColSymbol:
		return r.Symbol
	case ColTimeframe:
		return r.Timeframe
	case ColStartDate:
		return r.StartDate
	case ColEndDate:
		return r.EndDate
	case ColFile:
		return r.File
	default:
		return ""
	}
}

// applySort 激活某列排序（表头操作），未注册的列被忽略
func (m *Model) applySort(column ColumnID) {
	if _, ok := columnRegistry[column]; !ok {
		m.debugPrint("debug.sort.unknownColumn", string(column))
		return
	}
	m.viewState.SortColumn, m.viewState.SortDirection = toggleSort(m.viewState.SortColumn, m.viewState.SortDirection, column)
	m.debugPrint("debug.sort.changed", string(m.viewState.SortColumn), m.viewState.SortDirection.String())
	m.resetCursor()
}
