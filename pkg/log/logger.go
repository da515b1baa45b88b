package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger builds the application logger and stores it in the
// returned context. When path is non-empty the logger writes to that file;
// stdout belongs to the terminal UI, so the default sink is stderr.
// The returned func flushes and closes the diode writer.
func NewContextWithLogger(ctx context.Context, debug bool, path string) (context.Context, func()) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var sink io.Writer = os.Stderr
	var closeSink func() error
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			sink = f
			closeSink = f.Close
		}
	}

	// Ring-buffered writer so a slow sink never blocks a user action
	wr := diode.NewWriter(sink, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		NoColor:    true,
		TimeFormat: time.DateTime,
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	return logger.WithContext(ctx), func() {
		wr.Close()
		if closeSink != nil {
			_ = closeSink()
		}
	}
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
