package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NOOPLogger discards everything. It is the default for servers built
// without a logger, mostly in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New returns a JSON production logger, or a console development logger
// when appEnv is "local".
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar().With("env", appEnv), nil
}

// NewBootstrap returns a JSON logger writing to out. Binaries use it for
// failures that happen before the configured logger exists.
func NewBootstrap(out zapcore.WriteSyncer) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(out),
		zap.InfoLevel,
	)
	return zap.New(core).Sugar()
}
