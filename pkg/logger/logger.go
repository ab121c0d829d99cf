package logger

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = &Logger{l: zap.NewNop()}

// Logger is a thin handle around zap carrying pre-bound fields.
type Logger struct {
	l *zap.Logger
}

// Init builds the process-wide logger. Call once at startup, before any
// other package function; until then all output is dropped.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	global = &Logger{l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}

	return nil
}

func L() *Logger { return global }

func With(fields ...Field) *Logger {
	return &Logger{l: global.l.With(fields...)}
}

func Debug(ctx context.Context, msg string, fields ...Field) { global.Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { global.Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { global.Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { global.Error(ctx, msg, fields...) }

func (lg *Logger) Debug(_ context.Context, msg string, fields ...Field) { lg.l.Debug(msg, fields...) }
func (lg *Logger) Info(_ context.Context, msg string, fields ...Field)  { lg.l.Info(msg, fields...) }
func (lg *Logger) Warn(_ context.Context, msg string, fields ...Field)  { lg.l.Warn(msg, fields...) }
func (lg *Logger) Error(_ context.Context, msg string, fields ...Field) { lg.l.Error(msg, fields...) }

func (lg *Logger) Sync() error { return lg.l.Sync() }
