package logger

import (
	"ecotrack_backend/internal/config"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局日志，InitLogger 之前为空实现，测试中可直接使用
var Log = zap.NewNop()

// level 所有 core 共享，SetLevel 修改后立即生效
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// ParseLevel 未配置级别时 debug 模式输出 debug 日志，其余为 info
func ParseLevel(name, mode string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		if mode == "debug" {
			return zap.DebugLevel, nil
		}
		return zap.InfoLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// SetLevel 配置热更新时调整日志级别，非法级别保持原值
func SetLevel(name, mode string) error {
	lvl, err := ParseLevel(name, mode)
	if err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// Level 当前日志级别
func Level() zapcore.Level {
	return level.Level()
}

func newCore(fileWriter, consoleWriter io.Writer) zapcore.Core {
	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(fileWriter), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(consoleWriter), level),
	)
}

func InitLogger(cfg *config.Config) {
	if err := SetLevel(cfg.Log.Level, cfg.Server.Mode); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	file := cfg.Log.File
	if file == "" {
		file = "logs/ecotrack.log"
	}
	fileWriter := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	}

	Log = zap.New(newCore(fileWriter, os.Stdout), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", "ecotrack"))
}
