package common

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger.
func SetupLogger(level, format string) {
	logrus.SetOutput(os.Stdout)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, falling back to info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
