package dbg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the development logger when debug is set, the production one otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return build(zap.NewDevelopmentConfig())
	}
	return build(zap.NewProductionConfig())
}

func NewDevLogger() *zap.Logger {
	return must(build(zap.NewDevelopmentConfig()))
}

func NewProdLogger() *zap.Logger {
	return must(build(zap.NewProductionConfig()))
}

func build(cfg zap.Config) (*zap.Logger, error) {
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}

func must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}
