package jwtattributes

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Logger defines an optional logging interface compatible with log/slog.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewZapLogger returns a Logger adapter for zap.SugaredLogger. Key/value
// arguments are passed through to the *w methods.
func NewZapLogger(l *zap.SugaredLogger) Logger {
	return &zapLoggerAdapter{l}
}

type zapLoggerAdapter struct{ l *zap.SugaredLogger }

func (z *zapLoggerAdapter) Debug(msg string, args ...any) { z.l.Debugw(msg, args...) }
func (z *zapLoggerAdapter) Info(msg string, args ...any)  { z.l.Infow(msg, args...) }
func (z *zapLoggerAdapter) Warn(msg string, args ...any)  { z.l.Warnw(msg, args...) }
func (z *zapLoggerAdapter) Error(msg string, args ...any) { z.l.Errorw(msg, args...) }

// NewZerologLogger returns a Logger adapter for zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLoggerAdapter{l}
}

type zerologLoggerAdapter struct{ l zerolog.Logger }

func (z *zerologLoggerAdapter) Debug(msg string, args ...any) { z.write(z.l.Debug(), msg, args) }
func (z *zerologLoggerAdapter) Info(msg string, args ...any)  { z.write(z.l.Info(), msg, args) }
func (z *zerologLoggerAdapter) Warn(msg string, args ...any)  { z.write(z.l.Warn(), msg, args) }
func (z *zerologLoggerAdapter) Error(msg string, args ...any) { z.write(z.l.Error(), msg, args) }

func (z *zerologLoggerAdapter) write(e *zerolog.Event, msg string, args []any) {
	if len(args) > 0 {
		// zerolog only recognizes the unnamed map type.
		e = e.Fields(map[string]any(argsToFields(args)))
	}
	e.Msg(msg)
}

// NewLogrusLogger returns a Logger adapter for logrus.FieldLogger. Key/value
// arguments become logrus fields.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLoggerAdapter{l}
}

type logrusLoggerAdapter struct{ l logrus.FieldLogger }

func (l *logrusLoggerAdapter) Debug(msg string, args ...any) { l.entry(args).Debug(msg) }
func (l *logrusLoggerAdapter) Info(msg string, args ...any)  { l.entry(args).Info(msg) }
func (l *logrusLoggerAdapter) Warn(msg string, args ...any)  { l.entry(args).Warn(msg) }
func (l *logrusLoggerAdapter) Error(msg string, args ...any) { l.entry(args).Error(msg) }

func (l *logrusLoggerAdapter) entry(args []any) logrus.FieldLogger {
	if len(args) == 0 {
		return l.l
	}
	return l.l.WithFields(argsToFields(args))
}

// argsToFields pairs up slog style arguments. A dangling value is kept under
// "!BADKEY", the same key log/slog uses.
func argsToFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	return fields
}
