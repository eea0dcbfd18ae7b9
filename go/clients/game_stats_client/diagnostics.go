package game_stats_client

import (
	"github.com/rs/zerolog"
)

// Diagnostics receives trace events from the client. Implementations must be
// safe for concurrent use.
type Diagnostics interface {
	Trace(event string, fields map[string]any)
}

// DiagnosticsFunc adapts a function to Diagnostics.
type DiagnosticsFunc func(event string, fields map[string]any)

func (f DiagnosticsFunc) Trace(event string, fields map[string]any) {
	f(event, fields)
}

// NoOpDiagnostics discards every event
type NoOpDiagnostics struct{}

func (NoOpDiagnostics) Trace(string, map[string]any) {}

type zerologDiagnostics struct {
	logger zerolog.Logger
}

// NewZerologDiagnostics writes trace events as debug-level zerolog entries.
func NewZerologDiagnostics(logger zerolog.Logger) Diagnostics {
	return &zerologDiagnostics{
		logger: logger.With().Str("component", "game_stats_client").Logger(),
	}
}

func (d *zerologDiagnostics) Trace(event string, fields map[string]any) {
	d.logger.Debug().Fields(fields).Msg(event)
}
