// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"
	"time"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Components log through entries from Component.
var Log = logrus.New()

// Init applies the configured level and format to Log.
func Init(cfg *config.AppConfig) {
	Configure(Log, cfg.LogLevel, cfg.Environment)
}

// Configure sets output, formatter and level on l. An unknown level falls back to info.
func Configure(l *logrus.Logger, level, environment string) {
	l.SetOutput(os.Stdout)
	l.SetFormatter(formatterFor(environment))

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		l.SetLevel(logrus.InfoLevel)
		l.WithField("log_level", level).Warn("Unknown log level, using info")
		return
	}
	l.SetLevel(parsed)
}

// formatterFor picks JSON for deployed environments, where logs go to a collector,
// and human-readable text everywhere else.
func formatterFor(environment string) logrus.Formatter {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "production", "staging":
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "message"},
		}
	default:
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.DateTime,
		}
	}
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
