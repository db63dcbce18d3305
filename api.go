package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// 数据集记录获取
// ============================================================================

// StatusError 非 2xx 响应
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// wireRecord 响应中的单条记录，symbol 使用指针以区分缺失与空字符串
type wireRecord struct {
	Symbol    *string `json:"symbol"`
	Timeframe string  `json:"timeframe"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	File      string  `json:"file"`
}

// newHTTPClient 根据配置创建 HTTP 客户端
func newHTTPClient(cfg HTTPConfig) *http.Client {
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return client
}

// fetchRecords 发起一次 GET 请求并解析 { data: Record[] }
// 返回：记录、因缺少 symbol 被丢弃的条数、错误
func fetchRecords(ctx context.Context, client *http.Client, url string) ([]Record, int, error) {
	if client == nil {
		client = http.DefaultClient
	}

	logDebug("log.api.request", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	logDebug("log.api.response", resp.StatusCode, len(body))

	body, err = toUTF8(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, 0, err
	}
	return decodeRecords(body)
}

// decodeRecords 解析响应体
// 非法 JSON 视为错误；合法 JSON 但结构不符时返回空列表
func decodeRecords(body []byte) ([]Record, int, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if !json.Valid(body) {
			return nil, 0, fmt.Errorf("decode response: %w", err)
		}
		logWarn("log.api.unexpectedShape")
		return []Record{}, 0, nil
	}

	raw, ok := envelope["data"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []Record{}, 0, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		logWarn("log.api.unexpectedShape")
		return []Record{}, 0, nil
	}

	records := make([]Record, 0, len(items))
	dropped := 0
	for i, item := range items {
		var w wireRecord
		if err := json.Unmarshal(item, &w); err != nil || w.Symbol == nil {
			logWarn("log.api.dropRecord", i)
			dropped++
			continue
		}
		records = append(records, Record{
			Symbol:    *w.Symbol,
			Timeframe: w.Timeframe,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			File:      w.File,
		})
	}

	logInfo("log.api.loaded", len(records), dropped)
	return records, dropped, nil
}

// loadRecordsCmd 异步加载记录
func loadRecordsCmd(ctx context.Context, client *http.Client, url string) tea.Cmd {
	return func() tea.Msg {
		records, dropped, err := fetchRecords(ctx, client, url)
		return recordsLoadedMsg{
			Records: records,
			Dropped: dropped,
			Err:     err,
		}
	}
}
