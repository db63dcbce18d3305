package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// View 渲染界面
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.getText("title")) + "\n\n")
	b.WriteString(m.styles.search.Render(m.searchInput.View()) + "\n")

	if m.viewState.IsLoading {
		b.WriteString(m.spinner.View() + " " + m.getText("loading") + "\n")
	}

	b.WriteString(m.renderTable() + "\n")
	b.WriteString(m.renderSummary() + "\n")

	if m.message != "" {
		b.WriteString(m.message + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	b.WriteString(m.renderDebugPanel())
	return b.String()
}

// renderTable 渲染当前可见窗口的记录
func (m *Model) renderTable() string {
	rows := m.visibleRecords()
	start, end := m.visibleWindow(len(rows))

	t := table.NewWriter()
	t.SetStyle(getTableStyle(m.config.Display.TableStyle))
	t.AppendHeader(m.GenerateHeader())
	for i := start; i < end; i++ {
		t.AppendRow(m.GenerateRow(rows[i], i))
	}
	return t.Render()
}

// renderSummary 行数统计
func (m *Model) renderSummary() string {
	total := len(m.viewState.RawRecords)
	shown := len(m.visibleRecords())
	if shown == 0 {
		if m.viewState.IsLoading {
			return ""
		}
		return m.styles.muted.Render(m.getText("summary.empty"))
	}
	start, end := m.visibleWindow(shown)
	return m.styles.muted.Render(fmt.Sprintf(m.getText("summary.rows"), start+1, end, shown, total))
}

// ============================================================================
// 纯文本输出
// ============================================================================

// renderPlainTable 将记录以纯文本表格写入 out（不含颜色与光标）
func renderPlainTable(out io.Writer, lang Language, style string, columns []*ColumnMetadata, state ViewState, rows []Record) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(getTableStyle(style))

	header := make(table.Row, len(columns))
	for i, col := range columns {
		label := lookupText(lang, col.I18nKey)
		if col.ID == state.SortColumn {
			label = fmt.Sprintf("%s %s", label, sortIndicator(state.SortDirection))
		}
		header[i] = label
	}
	t.AppendHeader(header)

	for _, record := range rows {
		values := plainRow(record, columns)
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = displayValue(v)
		}
		t.AppendRow(row)
	}
	t.Render()
}
