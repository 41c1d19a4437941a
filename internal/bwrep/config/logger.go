package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogger はログ出力を管理します。
// デバッグモードでは Printf の内容も出力し、それ以外では警告以上のみ出力します。
type DebugLogger struct {
	enabled bool
	logger  *zap.Logger
	sugar   *zap.SugaredLogger
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !enabled
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !enabled {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.EncoderConfig.TimeKey = ""
	}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return newDebugLogger(logger, enabled)
}

// NewDebugLoggerWithCore は指定した zapcore.Core に出力するDebugLoggerを作成します
func NewDebugLoggerWithCore(core zapcore.Core, enabled bool) *DebugLogger {
	return newDebugLogger(zap.New(core), enabled)
}

func newDebugLogger(logger *zap.Logger, enabled bool) *DebugLogger {
	return &DebugLogger{
		enabled: enabled,
		logger:  logger,
		sugar:   logger.Sugar(),
	}
}

// Printf はデバッグモードが有効な場合のみメッセージを出力します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		d.sugar.Debugf(format, a...)
	}
}

// Warnf は警告を出力します
func (d *DebugLogger) Warnf(format string, a ...any) {
	d.sugar.Warnf(format, a...)
}

// Zap は内部の *zap.Logger を返します
func (d *DebugLogger) Zap() *zap.Logger {
	return d.logger
}

// Sync はバッファされたログを書き出します
func (d *DebugLogger) Sync() error {
	return d.logger.Sync()
}
