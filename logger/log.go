package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetUpLog replaces the global logger with a development logger at level.
func SetUpLog(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := c.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
