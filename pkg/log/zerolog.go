package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gofit-ml/gofit/pkg/errors"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.logger.Debug(), msg, fields...)
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.emit(z.logger.Info(), msg, fields...)
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.logger.Warn(), msg, fields...)
}

// Error implements Logger.Error.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	z.emit(z.logger.Error(), msg, fields...)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	ctx := z.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

func (z *ZerologLogger) emit(event *zerolog.Event, msg string, fields ...any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		value := fields[i+1]

		switch v := value.(type) {
		case error:
			event = event.AnErr(key, v)
		case zerolog.LogObjectMarshaler:
			event = event.Object(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	event.Msg(msg)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider is the default LoggerProvider, writing JSON lines with
// timestamps via zerolog.
type ZerologProvider struct {
	mu    sync.Mutex
	out   io.Writer
	level zerolog.Level
}

// NewZerologProvider creates a provider writing to out. A nil out defaults
// to stderr.
func NewZerologProvider(out io.Writer) *ZerologProvider {
	if out == nil {
		out = os.Stderr
	}
	return &ZerologProvider{out: out, level: zerolog.InfoLevel}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	logger := zerolog.New(p.out).Level(p.level).With().Timestamp().Logger()
	return &ZerologLogger{logger: logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = toZerologLevel(level)
}

var (
	defaultProvider     LoggerProvider = NewZerologProvider(nil)
	defaultProviderLock sync.RWMutex
)

// SetProvider replaces the package-level provider. Intended for tests and
// applications embedding the library.
func SetProvider(p LoggerProvider) {
	defaultProviderLock.Lock()
	defer defaultProviderLock.Unlock()
	defaultProvider = p
}

// GetLogger returns a logger from the package-level provider.
func GetLogger() Logger {
	defaultProviderLock.RLock()
	defer defaultProviderLock.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the package-level provider.
func GetLoggerWithName(name string) Logger {
	defaultProviderLock.RLock()
	defer defaultProviderLock.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// InitWarningBridge routes warnings raised through pkg/errors into the
// package-level logger as structured zerolog events.
func InitWarningBridge() {
	errors.SetZerologWarnFunc(func(warning error) {
		logger := GetLogger()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn(warning.Error(), "warning", marshaler)
			return
		}
		logger.Warn(warning.Error(), ErrAttrKey, warning)
	})
}
