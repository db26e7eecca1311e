package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared counterpart. Both are
// initialized once by InitLogger and safe for concurrent use.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger configures the process-wide zap logger. Development mode uses
// the console encoder, anything else emits JSON.
func InitLogger() {
	env := os.Getenv("ENVIRONMENT")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it deferred from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
