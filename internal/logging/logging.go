// Package logging guarda o logger zap compartilhado pela API.
package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	initOnce sync.Once
	logger   *zap.Logger
	exitFunc = os.Exit
)

// L devolve o logger da aplicação, criado no primeiro uso a partir do ambiente.
func L() *zap.Logger {
	initOnce.Do(func() {
		logger = newLogger()
	})
	return logger
}

// Sync descarrega o buffer. Chamar no desligamento.
func Sync() error {
	if logger != nil {
		return logger.Sync()
	}
	return nil
}

func newLogger() *zap.Logger {
	cfg := buildConfig(
		os.Getenv("CRM_LOG_LEVEL"),
		os.Getenv("CRM_LOG_FORMAT"),
		os.Getenv("CRM_LOG_CALLER") == "true",
	)
	l, err := cfg.Build(zap.Fields(zap.String("service", "crm")))
	if err != nil {
		l, _ = zap.NewDevelopment()
	}
	return l
}

// buildConfig: json/structured para produção, console colorido no resto.
// O arquivo:linha só entra no log com caller ligado.
func buildConfig(level, format string, caller bool) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.DisableCaller = !caller
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	switch strings.ToLower(format) {
	case "json", "structured":
		cfg.Encoding = "json"
	default:
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

func parseLevel(value string) zapcore.Level {
	switch strings.ToLower(value) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fatal loga em nível error e sai com status 1.
func Fatal(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
	exitFunc(1)
}
