package hbag

import (
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "request"},
	})
	log.SetOutput(os.Stdout)
}

// Level is the logging level.
type Level uint32

const (
	// ErrorLevel level. Used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries about what's going on.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel
	// TraceLevel level. Designates finer-grained informational events than the Debug.
	TraceLevel
)

// SetLogLevel sets the logging level.
func SetLogLevel(level Level) {
	switch level {
	case ErrorLevel:
		log.SetLevel(logrus.ErrorLevel)
	case WarnLevel:
		log.SetLevel(logrus.WarnLevel)
	case InfoLevel:
		log.SetLevel(logrus.InfoLevel)
	case DebugLevel:
		log.SetLevel(logrus.DebugLevel)
	case TraceLevel:
		log.SetLevel(logrus.TraceLevel)
	}
}

// LogError logs with log level ErrorLevel
func LogError(args ...interface{}) {
	log.Error(args...)
}

// LogWarn logs with log level WarnLevel
func LogWarn(args ...interface{}) {
	log.Warn(args...)
}

// LogInfo logs with log level InfoLevel
func LogInfo(args ...interface{}) {
	log.Info(args...)
}

// LogDebug logs with log level DebugLevel
func LogDebug(args ...interface{}) {
	log.Debug(args...)
}

// LogTrace logs with log level TraceLevel
func LogTrace(args ...interface{}) {
	log.Trace(args...)
}

// Fields type, used to pass to LogWithFields.
type Fields map[string]interface{}

// LogWithFields sets key values for additional logging
func LogWithFields(f Fields) *logrus.Entry {
	return log.WithFields(logrus.Fields(f))
}
