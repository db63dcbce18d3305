package main

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// 调试日志系统
// ============================================================================

// maxDebugLogs 调试日志最大保留条数
const maxDebugLogs = 500

// debugPrint 调试输出 - 支持 i18n key
// 同时写入 DEBUG 级别文件日志；调试模式开启时追加到调试面板
func (m *Model) debugPrint(key string, args ...any) {
	logDebug(key, args...)
	if !m.debugMode {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	format := m.getText(key)
	m.addDebugLog(fmt.Sprintf("[%s] %s", timestamp, fmt.Sprintf(format, args...)))
}

// addDebugLog 添加调试日志
func (m *Model) addDebugLog(msg string) {
	m.debugLogs = append(m.debugLogs, msg)
	if len(m.debugLogs) > maxDebugLogs {
		m.debugLogs = m.debugLogs[len(m.debugLogs)-maxDebugLogs:]
	}

	// 用户在查看历史日志时保持内容不错位
	if m.debugScrollPos > 0 && m.debugScrollPos < len(m.debugLogs)-1 {
		m.debugScrollPos++
	}
}

// ============================================================================
// 调试日志滚动控制
// ============================================================================

// scrollDebugUp 向上滚动调试日志
func (m *Model) scrollDebugUp() {
	if m.debugScrollPos < len(m.debugLogs)-1 {
		m.debugScrollPos++
	}
}

// scrollDebugDown 向下滚动调试日志
func (m *Model) scrollDebugDown() {
	if m.debugScrollPos > 0 {
		m.debugScrollPos--
	}
}

// ============================================================================
// 调试面板渲染
// ============================================================================

// renderDebugPanel 渲染调试面板
func (m *Model) renderDebugPanel() string {
	if !m.debugMode {
		return ""
	}

	maxDebugLines := 8
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 80) + "\n")

	total := len(m.debugLogs)
	fmt.Fprintf(&b, m.getText("debug.panel.title")+"\n", total-m.debugScrollPos, total)
	if m.lastLoadErr != nil {
		b.WriteString(m.styles.errText.Render(fmt.Sprintf(m.getText("debug.panel.loadError"), m.lastLoadErr)) + "\n")
	}
	if m.droppedRecords > 0 {
		fmt.Fprintf(&b, m.getText("debug.panel.dropped")+"\n", m.droppedRecords)
	}
	b.WriteString(strings.Repeat("-", 80) + "\n")

	if total == 0 {
		b.WriteString(m.getText("debug.panel.empty") + "\n")
	}

	endIndex := total - m.debugScrollPos
	startIndex := endIndex - maxDebugLines
	if startIndex < 0 {
		startIndex = 0
	}
	for i := startIndex; i < endIndex; i++ {
		prefix := ""
		if i == endIndex-1 && m.debugScrollPos == 0 {
			prefix = "→ "
		}
		b.WriteString(prefix + m.debugLogs[i] + "\n")
	}

	b.WriteString(strings.Repeat("=", 80))
	return b.String()
}
