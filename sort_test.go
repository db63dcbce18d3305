package main

import (
	"reflect"
	"testing"
	"time"
)

func files(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.File
	}
	return out
}

func TestSortRecordsStable(t *testing.T) {
	records := []Record{
		{Symbol: "B", Timeframe: "1h", File: "f1"},
		{Symbol: "A", Timeframe: "1d", File: "f2"},
		{Symbol: "B", Timeframe: "1h", File: "f3"},
		{Symbol: "A", Timeframe: "1h", File: "f4"},
		{Symbol: "B", Timeframe: "1d", File: "f5"},
	}

	tests := []struct {
		column    ColumnID
		direction SortDirection
		expected  []string
		desc      string
	}{
		{ColSymbol, SortAsc, []string{"f2", "f4", "f1", "f3", "f5"}, "代码升序，相同值保持输入顺序"},
		{ColSymbol, SortDesc, []string{"f1", "f3", "f5", "f2", "f4"}, "代码降序，相同值仍保持输入顺序"},
		{ColTimeframe, SortAsc, []string{"f2", "f5", "f1", "f3", "f4"}, "周期升序"},
		{ColTimeframe, SortDesc, []string{"f1", "f3", "f4", "f2", "f5"}, "周期降序"},
		{ColFile, SortDesc, []string{"f5", "f4", "f3", "f2", "f1"}, "文件降序"},
	}

	for _, tt := range tests {
		result := files(sortRecords(records, tt.column, tt.direction, time.UTC))
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("%s: sortRecords(%s, %s) = %v, expected %v", tt.desc, tt.column, tt.direction, result, tt.expected)
		}
	}
}

func TestSortRecordsByDate(t *testing.T) {
	records := []Record{
		{File: "a", StartDate: "2023-01-02", EndDate: "2024-05-01"},
		{File: "b", StartDate: "2023-01-01T12:00:00Z", EndDate: "2024-01-10"},
		{File: "c", StartDate: "2022/12/31", EndDate: "not a date"},
		{File: "d", StartDate: "20230110", EndDate: "2024-01-09"},
	}

	tests := []struct {
		column    ColumnID
		direction SortDirection
		expected  []string
		desc      string
	}{
		{ColStartDate, SortAsc, []string{"c", "b", "a", "d"}, "不同格式按时间先后排序"},
		{ColStartDate, SortDesc, []string{"d", "a", "b", "c"}, "开始日期降序"},
		{ColEndDate, SortAsc, []string{"d", "b", "a", "c"}, "无法解析的日期升序排在最后"},
		{ColEndDate, SortDesc, []string{"c", "a", "b", "d"}, "无法解析的日期降序排在最前"},
	}

	for _, tt := range tests {
		result := files(sortRecords(records, tt.column, tt.direction, time.UTC))
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("%s: sortRecords(%s, %s) = %v, expected %v", tt.desc, tt.column, tt.direction, result, tt.expected)
		}
	}
}

func TestSortRecordsDateNotLexicographic(t *testing.T) {
	// 按字节 "2023/01/01" > "2023-01-02"，按时间则更早
	records := []Record{
		{File: "later", StartDate: "2023-01-02"},
		{File: "earlier", StartDate: "2023/01/01"},
	}
	result := files(sortRecords(records, ColStartDate, SortAsc, time.UTC))
	if !reflect.DeepEqual(result, []string{"earlier", "later"}) {
		t.Errorf("sortRecords by start_date = %v, expected [earlier later]", result)
	}
}

func TestSortRecordsUnparseableTies(t *testing.T) {
	records := []Record{
		{File: "x", StartDate: ""},
		{File: "y", StartDate: "2024-01-01"},
		{File: "z", StartDate: "??"},
	}
	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		result := files(sortRecords(records, ColStartDate, dir, time.UTC))
		var expected []string
		if dir == SortAsc {
			expected = []string{"y", "x", "z"}
		} else {
			expected = []string{"x", "z", "y"}
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("sortRecords(start_date, %s) = %v, expected %v", dir, result, expected)
		}
	}
}

func TestSortRecordsDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	sortRecords(records, ColSymbol, SortAsc, time.UTC)
	if !reflect.DeepEqual(records, sampleRecords()) {
		t.Errorf("sortRecords modified its input")
	}
}

func TestIsDateColumn(t *testing.T) {
	tests := []struct {
		input    ColumnID
		expected bool
	}{
		{ColStartDate, true},
		{ColEndDate, true},
		{ColSymbol, false},
		{ColTimeframe, false},
		{ColFile, false},
	}
	for _, tt := range tests {
		if result := isDateColumn(tt.input); result != tt.expected {
			t.Errorf("isDateColumn(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestToggleSort(t *testing.T) {
	tests := []struct {
		column       ColumnID
		direction    SortDirection
		activated    ColumnID
		expectColumn ColumnID
		expectDir    SortDirection
		desc         string
	}{
		{ColStartDate, SortAsc, ColStartDate, ColStartDate, SortDesc, "同列升序切换为降序"},
		{ColStartDate, SortDesc, ColStartDate, ColStartDate, SortAsc, "同列降序切换回升序"},
		{ColStartDate, SortAsc, ColSymbol, ColSymbol, SortAsc, "不同列重置为升序"},
		{ColStartDate, SortDesc, ColFile, ColFile, SortAsc, "降序时切换到不同列也重置为升序"},
	}

	for _, tt := range tests {
		column, dir := toggleSort(tt.column, tt.direction, tt.activated)
		if column != tt.expectColumn || dir != tt.expectDir {
			t.Errorf("%s: toggleSort(%s, %s, %s) = (%s, %s), expected (%s, %s)",
				tt.desc, tt.column, tt.direction, tt.activated, column, dir, tt.expectColumn, tt.expectDir)
		}
	}
}

func TestToggleSortTwiceFromInitial(t *testing.T) {
	state := newViewState()
	column, dir := toggleSort(state.SortColumn, state.SortDirection, state.SortColumn)
	column, dir = toggleSort(column, dir, column)
	if column != ColStartDate || dir != SortAsc {
		t.Errorf("toggling start_date twice = (%s, %s), expected (start_date, asc)", column, dir)
	}
}
