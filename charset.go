package main

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ============================================================================
// 字符编码转换
// ============================================================================

// bodyEncoding 根据 Content-Type 的 charset 选择解码器，UTF-8 或未声明时返回 nil
func bodyEncoding(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}
	switch strings.ToLower(params["charset"]) {
	case "gbk", "gb2312", "cp936":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	default:
		return nil
	}
}

// toUTF8 将响应体转换为 UTF-8
func toUTF8(body []byte, contentType string) ([]byte, error) {
	enc := bodyEncoding(contentType)
	if enc == nil {
		return body, nil
	}
	reader := transform.NewReader(bytes.NewReader(body), enc.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", contentType, err)
	}
	return utf8Data, nil
}
