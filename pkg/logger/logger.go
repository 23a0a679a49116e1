package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Init configures the process-wide logger. Development gets a human console
// writer at debug level, everything else structured JSON at info.
func Init(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

// args are alternating key/value pairs; a bare error or string is attached
// under "error"/"detail" so call sites can stay terse.
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			e = e.AnErr("error", v)
		case string:
			if i+1 < len(args) {
				e = e.Interface(v, args[i+1])
				i++
			} else {
				e = e.Str("detail", v)
			}
		default:
			e = e.Interface(fmt.Sprintf("field_%d", i), v)
		}
	}
	return e
}

func Debug(msg string, args ...any) {
	withFields(log.Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	withFields(log.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withFields(log.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withFields(log.Error(), args).Msg(msg)
}

func Fatal(msg string, args ...any) {
	withFields(log.Fatal(), args).Msg(msg)
}
