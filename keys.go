package main

import "github.com/charmbracelet/bubbles/key"

// keyMap 快捷键定义
type keyMap struct {
	up         key.Binding
	down       key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
	home       key.Binding
	end        key.Binding
	sortColumn key.Binding
	focus      key.Binding
	clear      key.Binding
	export     key.Binding
	debug      key.Binding
	debugUp    key.Binding
	debugDown  key.Binding
	quit       key.Binding
	forceQuit  key.Binding
}

// newKeyMap 创建快捷键，帮助文本来自 i18n
func newKeyMap(lang Language) keyMap {
	t := func(k string) string { return lookupText(lang, k) }
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", t("help.up"))),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", t("help.down"))),
		pageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", t("help.pageUp"))),
		pageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", t("help.pageDown"))),
		home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", t("help.top"))),
		end:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", t("help.bottom"))),
		sortColumn: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", t("help.sort"))),
		focus:      key.NewBinding(key.WithKeys("tab", "/"), key.WithHelp("tab", t("help.focus"))),
		clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", t("help.clear"))),
		export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", t("help.export"))),
		debug:      key.NewBinding(key.WithKeys("f12", "ctrl+d"), key.WithHelp("ctrl+d", t("help.debug"))),
		debugUp:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", t("help.debugUp"))),
		debugDown:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", t("help.debugDown"))),
		quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", t("help.quit"))),
		forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp 实现 help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.focus, k.sortColumn, k.up, k.down, k.clear, k.export, k.quit}
}

// FullHelp 实现 help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown, k.home, k.end},
		{k.focus, k.sortColumn, k.clear, k.export},
		{k.debug, k.debugUp, k.debugDown, k.quit},
	}
}
