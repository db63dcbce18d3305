package main

// ============================================================================
// 表格光标与滚动控制
// ============================================================================

// maxLines 每页显示行数
func (m *Model) maxLines() int {
	if m.config.Display.MaxLines <= 0 {
		return 1
	}
	return m.config.Display.MaxLines
}

// resetCursor 视图内容变化后光标回到第一行
func (m *Model) resetCursor() {
	m.cursor = 0
	m.scrollTop = 0
}

// moveCursor 按 delta 移动光标并保证其在可见范围内
func (m *Model) moveCursor(delta int) {
	total := len(m.visibleRecords())
	if total == 0 {
		m.resetCursor()
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > total-1 {
		m.cursor = total - 1
	}
	m.adjustScroll(total)
}

// cursorToTop 跳转到第一行
func (m *Model) cursorToTop() {
	m.resetCursor()
}

// cursorToBottom 跳转到最后一行
func (m *Model) cursorToBottom() {
	total := len(m.visibleRecords())
	if total == 0 {
		m.resetCursor()
		return
	}
	m.cursor = total - 1
	m.adjustScroll(total)
}

// adjustScroll 调整滚动位置使光标可见
func (m *Model) adjustScroll(total int) {
	lines := m.maxLines()
	if total <= lines {
		m.scrollTop = 0
		return
	}

	if m.cursor < m.scrollTop {
		m.scrollTop = m.cursor
	}
	if m.cursor >= m.scrollTop+lines {
		m.scrollTop = m.cursor - lines + 1
	}
	if m.scrollTop > total-lines {
		m.scrollTop = total - lines
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

// visibleWindow 返回当前可见的行区间 [start, end)
func (m *Model) visibleWindow(total int) (int, int) {
	start := m.scrollTop
	if start > total {
		start = total
	}
	end := start + m.maxLines()
	if end > total {
		end = total
	}
	return start, end
}
