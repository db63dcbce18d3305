package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// Config 配置文件持久化
// ============================================================================

// getDefaultConfig 获取默认配置
func getDefaultConfig() Config {
	columns := make([]string, len(defaultColumnOrder))
	for i, id := range defaultColumnOrder {
		columns[i] = string(id)
	}

	return Config{
		Source: SourceConfig{
			URL: "http://localhost:8080/api/datasets",
		},
		HTTP: HTTPConfig{
			Timeout: 0, // 使用传输层默认行为
		},
		System: SystemConfig{
			Language:  "en",
			DebugMode: false,
			Timezone:  "UTC",
		},
		Display: DisplayConfig{
			TableStyle:     TableStyleLight,
			MaxLines:       15,
			Columns:        columns,
			HighlightColor: "yellow",
		},
		Log: LogConfig{
			Dir:   defaultLogDir,
			Level: "info",
		},
		Export: ExportConfig{
			Dir: defaultExportDir,
		},
	}
}

// loadConfig 加载配置文件
// 文件不存在时写入默认配置；格式错误时使用默认配置并返回错误说明
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		config := getDefaultConfig()
		if os.IsNotExist(err) {
			if saveErr := saveConfig(path, config); saveErr != nil {
				return validateConfig(config), fmt.Errorf("write default config: %w", saveErr)
			}
			return validateConfig(config), nil
		}
		return validateConfig(config), fmt.Errorf("read config: %w", err)
	}

	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return validateConfig(getDefaultConfig()), fmt.Errorf("parse config: %w", err)
	}

	return validateConfig(config), nil
}

// validateConfig 验证配置的合理性，不合理的值回退到默认值
func validateConfig(config Config) Config {
	defaults := getDefaultConfig()

	if config.Display.MaxLines <= 0 || config.Display.MaxLines > 50 {
		config.Display.MaxLines = defaults.Display.MaxLines
	}
	if _, ok := tableStyles[config.Display.TableStyle]; !ok {
		config.Display.TableStyle = TableStyleLight
	}
	if !NewColorUtils().IsSupported(config.Display.HighlightColor) {
		config.Display.HighlightColor = defaults.Display.HighlightColor
	}
	if len(config.Display.Columns) == 0 {
		config.Display.Columns = defaults.Display.Columns
	}
	config.System.Language = string(parseLanguage(config.System.Language))
	if config.HTTP.Timeout < 0 {
		config.HTTP.Timeout = 0
	}
	if config.Log.Dir == "" {
		config.Log.Dir = defaults.Log.Dir
	}
	if config.Export.Dir == "" {
		config.Export.Dir = defaults.Export.Dir
	}

	// 环境变量覆盖数据源地址
	if v := os.Getenv(envSourceURL); v != "" {
		config.Source.URL = v
	}

	return config
}

// saveConfig 保存配置文件
func saveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
