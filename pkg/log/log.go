package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger define a superfície de log estruturado usada pela API
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto da requisição
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// traceFields são os campos mantidos no log mesmo em ambiente de desenvolvimento.
// Em produção todos os campos são preservados.
var traceFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"client_id":        true,
	"year":             true,
	"month":            true,
}

type entryLogger struct {
	entry *logrus.Entry
}

// L é a instância global usada pelo middleware e pelos schedulers
var L Logger = &entryLogger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment indica se a API roda em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func (l *entryLogger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !traceFields[key] {
		return l
	}
	return &entryLogger{entry: l.entry.WithField(key, value)}
}

func (l *entryLogger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &entryLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	// Em desenvolvimento descartamos metadados de transporte para manter o log enxuto
	kept := make(logrus.Fields)
	for k, v := range fields {
		if traceFields[k] {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &entryLogger{entry: l.entry.WithFields(kept)}
}

func (l *entryLogger) WithError(err error) Logger {
	return &entryLogger{entry: l.entry.WithError(err)}
}

func (l *entryLogger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *entryLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *entryLogger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *entryLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *entryLogger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *entryLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *entryLogger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *entryLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *entryLogger) Fatal(args ...interface{})                 { l.entry.Fatal(args...) }
func (l *entryLogger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithCorrelationID injeta um novo ID de correlação no contexto e o devolve
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID recupera o ID de correlação do contexto, se presente
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}
