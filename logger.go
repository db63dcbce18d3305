package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ============================================================================
// 日志级别定义
// ============================================================================

// LogLevel 日志级别
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// parseLogLevel 解析配置中的日志级别，未知值为 info
func parseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// ============================================================================
// Logger 结构
// ============================================================================

// Logger 封装 zap logger，支持按天自动轮转
type Logger struct {
	mu         sync.Mutex
	zap        *zap.Logger
	file       *os.File
	currentDay string // 当前日志文件对应的日期 (YYYY-MM-DD)
	logDir     string
	level      LogLevel
	now        func() time.Time
}

var globalLogger *Logger

// ============================================================================
// 初始化
// ============================================================================

// InitLogger 初始化全局日志系统
func InitLogger(logDir string, level LogLevel) error {
	logger, err := NewLogger(logDir, level)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// NewLogger 创建写入 logDir 的日志器
func NewLogger(logDir string, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		logDir: logDir,
		level:  level,
		now:    time.Now,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.rotateLocked(); err != nil {
		return nil, err
	}
	return l, nil
}

// ============================================================================
// 日志轮转
// ============================================================================

// logFileName 日志文件名
func logFileName(day string) string {
	return fmt.Sprintf("%s-%s.log", appName, day)
}

// rotateLocked 日期变化时切换到新的日志文件，调用方需持有锁
func (l *Logger) rotateLocked() error {
	today := l.now().Format("2006-01-02")
	if l.currentDay == today && l.zap != nil {
		return nil
	}

	if l.zap != nil {
		l.zap.Sync()
	}
	if l.file != nil {
		l.file.Close()
	}

	logPath := filepath.Join(l.logDir, logFileName(today))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:    "time",
		LevelKey:   "level",
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
		// [2006-01-02 15:04:05][DEBUG]
		EncodeLevel: bracketLevelEncoder,
		EncodeTime:  bracketTimeEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(file),
		levelToZapLevel(l.level),
	)

	l.zap = zap.New(core)
	l.file = file
	l.currentDay = today
	return nil
}

// ============================================================================
// 编码器
// ============================================================================

// bracketTimeEncoder 自定义时间编码器: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 自定义级别编码器: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// levelToZapLevel 将自定义 LogLevel 转换为 zapcore.Level
func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogInfo:
		return zapcore.InfoLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ============================================================================
// 日志接口
// ============================================================================

// Log 统一日志接口，格式: [pathKey][message] 或 [message]
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// 跨天时自动切换文件，失败时继续使用旧文件
	l.rotateLocked()
	if l.zap == nil {
		return
	}

	var formatted string
	if pathKey != "" {
		formatted = "[" + pathKey + "][" + message + "]"
	} else {
		formatted = "[" + message + "]"
	}

	switch level {
	case LogDebug:
		l.zap.Debug(formatted)
	case LogInfo:
		l.zap.Info(formatted)
	case LogWarn:
		l.zap.Warn(formatted)
	case LogError:
		l.zap.Error(formatted)
	}
}

// Sync 刷新缓冲区（应用退出时调用）
func (l *Logger) Sync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap != nil {
		l.zap.Sync()
	}
}

// Close 刷新并关闭日志文件
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap != nil {
		l.zap.Sync()
	}
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
	l.zap = nil
}
