package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xuri/excelize/v2"
)

// exportSheetName 导出工作表名称
const exportSheetName = "Records"

// exportFileName 生成带时间戳的导出文件路径
func exportFileName(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.xlsx", appName, now.Format("20060102-150405")))
}

// exportView 将当前显示的记录写入 xlsx 文件（表头 + 数据行）
func exportView(path string, columns []*ColumnMetadata, headers []string, records []Record) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeSheetRow(f, i+2, plainRow(record, columns)); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(exportSheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSheetRow 写入一行（rowNum 从 1 开始）
func writeSheetRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

// exportHeaders 导出用表头（不含排序指示器）
func (m *Model) exportHeaders() []string {
	headers := make([]string, len(m.columns))
	for i, col := range m.columns {
		headers[i] = m.columnLabel(col)
	}
	return headers
}

// exportCmd 导出当前视图的快照
func (m *Model) exportCmd() tea.Cmd {
	rows := m.visibleRecords()
	columns := m.columns
	headers := m.exportHeaders()
	path := exportFileName(m.config.Export.Dir, time.Now())

	return func() tea.Msg {
		err := exportView(path, columns, headers, rows)
		return exportDoneMsg{Path: path, Rows: len(rows), Err: err}
	}
}
