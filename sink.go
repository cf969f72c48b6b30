package akka

import (
	"os"

	"github.com/rs/zerolog"
)

// ErrorSink receives errors the future machinery cannot surface through an
// outcome: listener panics, side-effect combinator failures, and thunks
// rejected by a closed scheduler. Implementations must be safe for
// concurrent use and must not block.
type ErrorSink interface {
	Report(err error, source, msg string)
}

// SinkFunc adapts a function to the ErrorSink interface.
type SinkFunc func(err error, source, msg string)

func (f SinkFunc) Report(err error, source, msg string) { f(err, source, msg) }

// NoopSink discards every report.
type NoopSink struct{}

func (NoopSink) Report(error, string, string) {}

// NewLogSink returns an ErrorSink that writes each report as a structured
// error-level event on l, with the source attached as a field.
func NewLogSink(l zerolog.Logger) ErrorSink {
	return logSink{log: l}
}

type logSink struct {
	log zerolog.Logger
}

func (s logSink) Report(err error, source, msg string) {
	s.log.Error().Err(err).Str("source", source).Msg(msg)
}

// defaultSink is used when no sink is configured: structured error logging
// to stderr. Shared by every future that did not opt into its own sink.
var defaultSink ErrorSink = NewLogSink(zerolog.New(os.Stderr).With().Timestamp().Logger())
