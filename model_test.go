package main

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(url string) *Model {
	config := getDefaultConfig()
	config.Source.URL = url
	config.Export.Dir = ""
	return newModel(config, http.DefaultClient)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewViewStateDefaults(t *testing.T) {
	state := newViewState()
	if state.SearchText != "" || state.SortColumn != ColStartDate || state.SortDirection != SortAsc || state.IsLoading {
		t.Errorf("unexpected defaults: %+v", state)
	}
	if state.RawRecords == nil || len(state.RawRecords) != 0 {
		t.Errorf("RawRecords should be empty and non-nil, got %#v", state.RawRecords)
	}
}

func TestModelLoadsOnce(t *testing.T) {
	server := newRecordsServer(t, http.StatusOK, `{"data":[{"symbol":"AAA","start_date":"2024-02-01"},{"symbol":"BBB","start_date":"2024-01-01"}]}`)
	m := newTestModel(server.URL)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should return a load command")
	}
	if !m.viewState.IsLoading {
		t.Error("IsLoading should be true after Init")
	}
	if cmd := m.startLoad(); cmd != nil {
		t.Error("second startLoad should not issue another request")
	}

	msg := loadRecordsCmd(context.Background(), server.Client(), server.URL)()
	m.Update(msg)

	if m.viewState.IsLoading {
		t.Error("IsLoading should be false after load")
	}
	if got := symbols(m.visibleRecords()); !reflect.DeepEqual(got, []string{"BBB", "AAA"}) {
		t.Errorf("visibleRecords = %v, expected [BBB AAA]", got)
	}
}

func TestModelLoadFailure(t *testing.T) {
	m := newTestModel("http://example.invalid")
	m.Init()

	m.Update(recordsLoadedMsg{Err: errors.New("boom")})

	if m.viewState.IsLoading {
		t.Error("IsLoading should be false after failed load")
	}
	if len(m.viewState.RawRecords) != 0 {
		t.Errorf("RawRecords should stay empty, got %v", m.viewState.RawRecords)
	}
	if m.lastLoadErr == nil {
		t.Error("load error should be kept for diagnostics")
	}
	if strings.Contains(m.View(), "boom") {
		t.Error("load error must not be visible outside the debug panel")
	}
}

func TestModelEmptyBody(t *testing.T) {
	server := newRecordsServer(t, http.StatusOK, `{}`)
	m := newTestModel(server.URL)
	m.Init()

	m.Update(loadRecordsCmd(context.Background(), server.Client(), server.URL)())

	if m.viewState.IsLoading {
		t.Error("IsLoading should be false")
	}
	if m.lastLoadErr != nil {
		t.Errorf("unexpected error: %v", m.lastLoadErr)
	}
	if len(m.visibleRecords()) != 0 {
		t.Errorf("expected no rows, got %v", m.visibleRecords())
	}
}

func TestModelSortKeys(t *testing.T) {
	m := newTestModel("")
	m.Update(recordsLoadedMsg{Records: []Record{
		{Symbol: "AAA", StartDate: "2024-02-01"},
		{Symbol: "BBB", StartDate: "2024-01-01"},
	}})

	// 切换焦点到表格后按 3 激活第三列（start_date）
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusTable {
		t.Fatalf("focus = %v, expected table", m.focus)
	}

	m.Update(runeKey("3"))
	if m.viewState.SortColumn != ColStartDate || m.viewState.SortDirection != SortDesc {
		t.Errorf("after pressing 3: (%s, %s), expected (start_date, desc)", m.viewState.SortColumn, m.viewState.SortDirection)
	}
	if got := symbols(m.visibleRecords()); !reflect.DeepEqual(got, []string{"AAA", "BBB"}) {
		t.Errorf("descending rows = %v, expected [AAA BBB]", got)
	}

	m.Update(runeKey("1"))
	if m.viewState.SortColumn != ColSymbol || m.viewState.SortDirection != SortAsc {
		t.Errorf("after pressing 1: (%s, %s), expected (symbol, asc)", m.viewState.SortColumn, m.viewState.SortDirection)
	}
}

func TestModelSearchTyping(t *testing.T) {
	m := newTestModel("")
	m.Update(recordsLoadedMsg{Records: []Record{
		{Symbol: "AAA", StartDate: "2024-02-01"},
		{Symbol: "BBB", StartDate: "2024-01-01"},
	}})

	m.Update(runeKey("a"))
	m.Update(runeKey("a"))
	if m.viewState.SearchText != "aa" {
		t.Fatalf("SearchText = %q, expected %q", m.viewState.SearchText, "aa")
	}
	if got := symbols(m.visibleRecords()); !reflect.DeepEqual(got, []string{"AAA"}) {
		t.Errorf("rows = %v, expected [AAA]", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.viewState.SearchText != "" || m.searchInput.Value() != "" {
		t.Errorf("esc should clear search, got %q", m.viewState.SearchText)
	}
	if len(m.visibleRecords()) != 2 {
		t.Errorf("expected all rows after clearing search")
	}
}

func TestModelUnknownSortColumnIgnored(t *testing.T) {
	m := newTestModel("")
	m.applySort(ColumnID("volume"))
	if m.viewState.SortColumn != ColStartDate || m.viewState.SortDirection != SortAsc {
		t.Errorf("unknown column changed sort state: (%s, %s)", m.viewState.SortColumn, m.viewState.SortDirection)
	}
}

func TestModelQuitCancelsLoad(t *testing.T) {
	m := newTestModel("")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the load context")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel("")
	m.Init()
	if !strings.Contains(m.View(), "Loading....") {
		t.Error("view should show loading indicator while loading")
	}

	m.Update(recordsLoadedMsg{Records: []Record{{Symbol: "AAA", Timeframe: "1d", StartDate: "2024-02-01", File: "a.csv"}}})
	view := m.View()
	for _, want := range []string{"Symbol", "Time Frame", "Start Date ↑", "End Date", "File", "AAA", "a.csv"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Loading....") {
		t.Error("loading indicator should be gone")
	}
}

func TestModelCursorWindow(t *testing.T) {
	m := newTestModel("")
	m.config.Display.MaxLines = 2
	records := make([]Record, 5)
	for i := range records {
		records[i] = Record{Symbol: string(rune('A' + i))}
	}
	m.Update(recordsLoadedMsg{Records: records})

	m.moveCursor(3)
	if m.cursor != 3 {
		t.Errorf("cursor = %d, expected 3", m.cursor)
	}
	start, end := m.visibleWindow(5)
	if start != 2 || end != 4 {
		t.Errorf("window = [%d, %d), expected [2, 4)", start, end)
	}

	m.moveCursor(10)
	if m.cursor != 4 {
		t.Errorf("cursor = %d, expected 4", m.cursor)
	}
	m.moveCursor(-10)
	if m.cursor != 0 || m.scrollTop != 0 {
		t.Errorf("cursor/scroll = %d/%d, expected 0/0", m.cursor, m.scrollTop)
	}
}
