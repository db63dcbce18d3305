package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed i18n/*.json
var i18nFS embed.FS

// texts i18n 配置 - 存储各语言的文本映射
var texts = loadI18nFiles()

// loadI18nFiles 加载内嵌的 i18n 文件
func loadI18nFiles() map[Language]TextMap {
	loaded := make(map[Language]TextMap)
	for _, lang := range []Language{Chinese, English} {
		path := fmt.Sprintf("i18n/%s.json", lang)
		data, err := i18nFS.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to read %s: %v\n", path, err)
			continue
		}
		var m TextMap
		if err := json.Unmarshal(data, &m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to parse %s: %v\n", path, err)
			continue
		}
		loaded[lang] = m
	}
	return loaded
}

// lookupText 获取指定语言的文本，找不到时回退到英文，再回退到 key
func lookupText(lang Language, key string) string {
	if text, exists := texts[lang][key]; exists {
		return text
	}
	if text, exists := texts[English][key]; exists {
		return text
	}
	return key
}

// getText 获取本地化文本的辅助函数
func (m *Model) getText(key string) string {
	return lookupText(m.language, key)
}

// parseLanguage 解析语言配置，未知值使用英文
func parseLanguage(s string) Language {
	switch Language(s) {
	case Chinese:
		return Chinese
	default:
		return English
	}
}
