package main

// ============================================================================
// 派生视图缓存
// ============================================================================

// viewKey 派生视图的依赖元组
type viewKey struct {
	revision  int // RawRecords 版本号，每次替换记录时递增
	search    string
	column    ColumnID
	direction SortDirection
}

// viewCache 以依赖元组为键缓存最近一次派生结果
type viewCache struct {
	revision int
	key      viewKey
	rows     []Record
	valid    bool
}

// invalidate 原始记录变化后调用
func (c *viewCache) invalidate() {
	c.revision++
	c.valid = false
	c.rows = nil
}

// visibleRecords 获取当前显示序列（带缓存），返回值不可修改
func (m *Model) visibleRecords() []Record {
	key := viewKey{
		revision:  m.cache.revision,
		search:    m.viewState.SearchText,
		column:    m.viewState.SortColumn,
		direction: m.viewState.SortDirection,
	}
	if m.cache.valid && m.cache.key == key {
		return m.cache.rows
	}

	rows := deriveView(m.viewState, m.location)
	m.cache.key = key
	m.cache.rows = rows
	m.cache.valid = true
	m.debugPrint("debug.cache.recompute", len(m.viewState.RawRecords), len(rows))
	return rows
}

// setRecords 替换原始记录并使缓存失效
func (m *Model) setRecords(records []Record) {
	if records == nil {
		records = []Record{}
	}
	m.viewState.RawRecords = records
	m.cache.invalidate()
	m.resetCursor()
}

// setSearchText 更新搜索文本，文本未变化时不做任何事
func (m *Model) setSearchText(text string) {
	if text == m.viewState.SearchText {
		return
	}
	m.viewState.SearchText = text
	m.resetCursor()
}
