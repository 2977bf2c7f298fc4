package observability

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the narrow surface the services depend on.
type Logger struct {
	inner *logrus.Logger
}

func NewLogger() *Logger {
	inner := logrus.New()
	inner.SetOutput(os.Stdout)
	inner.SetFormatter(&logrus.JSONFormatter{})
	inner.SetLevel(logrus.InfoLevel)
	return &Logger{inner: inner}
}

func (l *Logger) Info(msg string) {
	l.inner.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.inner.Error(msg)
}
