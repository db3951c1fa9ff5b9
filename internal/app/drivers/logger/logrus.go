package logger

import (
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/pkg/constvars"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger behind Middlewares.RequestLogger.
// Production appends JSON lines to APP_ACCESS_LOG_FILENAME and falls back to
// stderr when the file cannot be opened.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	accessLog := logrus.New()
	accessLog.SetLevel(logrus.InfoLevel)

	if internalConfig.App.Env != constvars.AppEnvProduction {
		accessLog.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.DateTime})
		return accessLog
	}

	accessLog.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "event"},
	})
	file, err := os.OpenFile(internalConfig.App.AccessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		accessLog.WithError(err).
			WithField("file", internalConfig.App.AccessLogFileName).
			Warn("access log file unavailable, writing to stderr")
		return accessLog
	}
	accessLog.SetOutput(file)
	return accessLog
}
