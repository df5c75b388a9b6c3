// Package logger provides the shared zap sugared logger.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"pocketsense-backend/internal/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

func initLogger() {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(utils.GetConfig("LOG_LEVEL"))); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if utils.GetConfig("IsProd") == "true" {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = zapLogger.Sugar()
}

func GetLogger() *zap.SugaredLogger {
	once.Do(initLogger)
	return logger
}

// SetLogger replaces the shared logger; tests use it with zap.NewNop().
func SetLogger(l *zap.SugaredLogger) {
	once.Do(func() {})
	logger = l
}

func Sync() {
	if logger == nil {
		return
	}
	if err := logger.Sync(); err != nil && !strings.Contains(err.Error(), "invalid argument") {
		fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
	}
}

// MaskEmail keeps the domain and the first character of the local part.
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || parts[0] == "" {
		return strings.Repeat("*", len(email))
	}
	return parts[0][:1] + "***@" + parts[1]
}
