package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newViewState 视图状态默认值：空搜索、按开始日期升序、未加载
func newViewState() ViewState {
	return ViewState{
		RawRecords:    []Record{},
		SearchText:    "",
		SortColumn:    ColStartDate,
		SortDirection: SortAsc,
		IsLoading:     false,
	}
}

// newModel 创建应用模型
func newModel(config Config, client *http.Client) *Model {
	language := parseLanguage(config.System.Language)

	input := textinput.New()
	input.Placeholder = lookupText(language, "search.placeholder")
	input.Prompt = "🔍 "
	input.CharLimit = 128
	input.Width = 40
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		viewState:   newViewState(),
		config:      config,
		language:    language,
		location:    loadLocation(config.System.Timezone),
		styles:      newUIStyles(),
		columns:     buildColumnList(config.Display.Columns),
		searchInput: input,
		spinner:     spin,
		help:        help.New(),
		keys:        newKeyMap(language),
		focus:       FocusSearch,
		client:      client,
		ctx:         ctx,
		cancel:      cancel,
		debugMode:   config.System.DebugMode,
	}
}

// Init 首次激活时启动一次加载
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), textinput.Blink)
}

// startLoad 设置加载标志并发起请求；Loader 在模型生命周期内只运行一次
func (m *Model) startLoad() tea.Cmd {
	if m.loadStarted {
		return nil
	}
	m.loadStarted = true
	m.viewState.IsLoading = true
	m.debugPrint("debug.load.start", m.config.Source.URL)
	return tea.Batch(m.spinner.Tick, loadRecordsCmd(m.ctx, m.client, m.config.Source.URL))
}

// Update 处理消息
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case recordsLoadedMsg:
		m.handleRecordsLoaded(msg)
		return m, nil
	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil
	case spinner.TickMsg:
		if !m.viewState.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusSearch {
		return m.updateSearchInput(msg)
	}
	return m, nil
}

// handleRecordsLoaded 加载完成：无论成功与否都结束加载状态
func (m *Model) handleRecordsLoaded(msg recordsLoadedMsg) {
	m.viewState.IsLoading = false
	if msg.Err != nil {
		// 失败时保留原始记录（仍为空），只记录诊断信息
		m.lastLoadErr = msg.Err
		logError("log.load.failed", msg.Err)
		m.debugPrint("debug.load.failed", msg.Err)
		return
	}
	m.droppedRecords = msg.Dropped
	m.setRecords(msg.Records)
	m.debugPrint("debug.load.done", len(msg.Records), msg.Dropped)
}

// handleExportDone 导出完成
func (m *Model) handleExportDone(msg exportDoneMsg) {
	if msg.Err != nil {
		logError("log.export.failed", msg.Path, msg.Err)
		m.message = m.styles.errText.Render(fmt.Sprintf(m.getText("status.exportFailed"), msg.Err))
		return
	}
	logInfo("log.export.done", msg.Rows, msg.Path)
	m.message = m.styles.status.Render(fmt.Sprintf(m.getText("status.exported"), msg.Rows, msg.Path))
}

// handleKey 按焦点分发键盘事件
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.forceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.debug):
		m.debugMode = !m.debugMode
		m.debugPrint("debug.mode.on")
		return m, nil
	case msg.Type == tea.KeyTab:
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.clear):
		m.searchInput.SetValue("")
		m.setSearchText("")
		return m, nil
	}

	switch msg.String() {
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "pgup":
		m.moveCursor(-m.maxLines())
		return m, nil
	case "pgdown":
		m.moveCursor(m.maxLines())
		return m, nil
	}

	if m.focus == FocusSearch {
		if msg.Type == tea.KeyEnter {
			return m, m.toggleFocus()
		}
		return m.updateSearchInput(msg)
	}
	return m.handleTableKey(msg)
}

// handleTableKey 表格获得焦点时的快捷键
func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.focus):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.home):
		m.cursorToTop()
	case key.Matches(msg, m.keys.end):
		m.cursorToBottom()
	case key.Matches(msg, m.keys.sortColumn):
		index := int(msg.String()[0] - '1')
		if index >= 0 && index < len(m.columns) {
			m.applySort(m.columns[index].ID)
		}
	case key.Matches(msg, m.keys.export):
		m.message = m.styles.status.Render(m.getText("status.exporting"))
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.debugUp):
		m.scrollDebugUp()
	case key.Matches(msg, m.keys.debugDown):
		m.scrollDebugDown()
	}
	return m, nil
}

// updateSearchInput 将消息交给搜索框并同步搜索文本
func (m *Model) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setSearchText(m.searchInput.Value())
	return m, cmd
}

// toggleFocus 在搜索框与表格之间切换焦点
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusSearch {
		m.focus = FocusTable
		m.searchInput.Blur()
		return nil
	}
	m.focus = FocusSearch
	return m.searchInput.Focus()
}

// quit 退出前取消进行中的请求
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
