package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// Setup points the global zerolog logger at out. Rows go to stdout, so the
// command passes its stderr here.
func Setup(out io.Writer, logLevelStr string, logFormat string) error {
	logLevel, err := zerolog.ParseLevel(logLevelStr)
	if err != nil || logLevelStr == "" || logLevel < zerolog.DebugLevel || logLevel > zerolog.ErrorLevel {
		return fmt.Errorf("unknown log level %s", logLevelStr)
	}

	switch logFormat {
	case LogFormatJsonValue:
	case LogFormatTextValue:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return fmt.Errorf("unknown log format %s", logFormat)
	}

	log.Logger = zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
	return nil
}
