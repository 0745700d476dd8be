package observability

import (
	"github.com/google/uuid"
)

// RenderTrace records renderer progress as structured log entries. Every
// step of one render run shares a generated run ID so the entries can be
// correlated after the fact. The zero value is not usable; construct with
// NewRenderTrace.
type RenderTrace struct {
	runID  string
	logger *Logger
}

// NewRenderTrace creates a trace bound to the given logger with a fresh
// run ID.
func NewRenderTrace(logger *Logger) *RenderTrace {
	if logger == nil {
		logger = GetDefaultLogger()
	}

	runID := uuid.New().String()
	return &RenderTrace{
		runID:  runID,
		logger: logger.WithField("run_id", runID),
	}
}

// RunID returns the identifier shared by all steps of this run.
func (t *RenderTrace) RunID() string {
	return t.runID
}

// Step logs one named renderer step with optional detail fields.
func (t *RenderTrace) Step(name string, fields map[string]interface{}) {
	merged := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["step"] = name
	t.logger.InfoWithFields("render step", merged)
}
