package planner

import (
	"github.com/rs/zerolog"
)

// Logger is the narrow logging surface Plan uses for its "log, continue"
// policy points: duplicate historical row, ambiguous offering, unassigned
// elective slot, unresolved prerequisite token, unknown approved
// identifier, and prerequisite cycle. Rows are consumed already parsed, so
// there is no malformed-row event, and line-balance rejections in the
// clique search are not logged. NewZerologLogger adapts a zerolog.Logger
// to it; the default
// (noopLogger) is silent, so the library stays quiet unless a host opts
// in via WithLogger.
type Logger interface {
	Debug(event string, fields map[string]any)
	Warn(event string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Warn(string, map[string]any)  {}

// zerologAdapter wires Logger onto github.com/rs/zerolog, the structured
// logging library the sibling service repos in the retrieval pack use.
type zerologAdapter struct {
	log zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger into a planner Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologAdapter{log: l}
}

func (z zerologAdapter) Debug(event string, fields map[string]any) {
	evt := z.log.Debug()
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(event)
}

func (z zerologAdapter) Warn(event string, fields map[string]any) {
	evt := z.log.Warn()
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(event)
}
