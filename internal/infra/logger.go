// README: logrus setup shared by the binaries.
package infra

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ConfigureLogger applies level and format ("json" or "text") to l. An
// unknown level leaves l at info.
func ConfigureLogger(l *logrus.Logger, level, format string) {
	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}
