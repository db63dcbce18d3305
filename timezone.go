package main

import (
	"strings"
	"time"
)

// recordDateLayouts 支持的日期格式，按顺序尝试
var recordDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"20060102",
}

// parseRecordDate 将记录中的日期文本解析为时间
// 不含时区信息的格式按 loc 解析；空字符串或无法解析时返回 false
func parseRecordDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range recordDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// loadLocation 加载配置的时区，失败时降级到 UTC
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		logWarn("log.timezone.loadFail", name, err)
		return time.UTC
	}
	return location
}
