package logging

import (
	"fmt"
	"strings"

	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}

// NewLoggerFactory returns a factory whose loggers report at level and above.
// An empty level keeps pion's defaults, which honour the PION_LOG_* variables.
func NewLoggerFactory(level string) (logging.LoggerFactory, error) {
	f := logging.NewDefaultLoggerFactory()
	if level == "" {
		return f, nil
	}

	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f.DefaultLogLevel = l
	return f, nil
}

// ParseLevel maps a textual level to a pion log level.
func ParseLevel(level string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("logging: unknown level %q", level)
	}
}
