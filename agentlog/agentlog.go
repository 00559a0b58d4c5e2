// Package agentlog is the logging sink the pipeline stages report to.
// A nil Logger is a valid no-op, so a failed logger setup never takes
// the pipeline down with it.
package agentlog

import "go.uber.org/zap"

type Logger struct {
	z *zap.Logger
}

func New(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// Log records one significant step of an agent. Details are optional.
func (l *Logger) Log(agent, action string, details ...string) {
	if l == nil || l.z == nil {
		return
	}
	fields := []zap.Field{zap.String("agent", agent)}
	if len(details) > 0 {
		fields = append(fields, zap.Strings("details", details))
	}
	l.z.Info(action, fields...)
}

// Error records a degraded step. The pipeline keeps running; this is
// strictly observational.
func (l *Logger) Error(agent, action string, err error) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Error(action, zap.String("agent", agent), zap.Error(err))
}
