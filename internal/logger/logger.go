// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger: console output in development, plain
// JSON at info level in production.
func Init(production bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if production {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func Get() zerolog.Logger {
	return log.Logger
}
