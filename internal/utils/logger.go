package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the process-wide logrus logger. All diagnostics go
// to stderr; stdout is reserved for the translation itself.
func SetupLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
