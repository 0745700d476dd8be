package observability

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// TraceID identifies one pipeline run
type TraceID string

// SpanID identifies one span within a trace
type SpanID string

// SpanStatus represents the outcome of a span
type SpanStatus int

const (
	SpanStatusUnset SpanStatus = iota
	SpanStatusOK
	SpanStatusError
)

// Span covers one operation of a pipeline run
type Span struct {
	TraceID       TraceID                `json:"trace_id"`
	SpanID        SpanID                 `json:"span_id"`
	ParentID      SpanID                 `json:"parent_id,omitempty"`
	OperationName string                 `json:"operation_name"`
	StartTime     time.Time              `json:"start_time"`
	EndTime       time.Time              `json:"end_time,omitempty"`
	Duration      time.Duration          `json:"duration"`
	Tags          map[string]interface{} `json:"tags,omitempty"`
	Status        SpanStatus             `json:"status"`
	mu            sync.RWMutex
	finished      bool
	tracer        *Tracer
}

// SetTag sets a tag on the span
func (s *Span) SetTag(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Tags == nil {
		s.Tags = make(map[string]interface{})
	}
	s.Tags[key] = value
}

// SetStatus sets the span status
func (s *Span) SetStatus(status SpanStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = status
}

// LogError marks the span failed and records the error message
func (s *Span) LogError(err error) {
	s.SetStatus(SpanStatusError)
	s.SetTag("error", true)
	s.SetTag("error.message", err.Error())
}

// Finish closes the span and hands it to the exporter. Finishing twice
// is a no-op.
func (s *Span) Finish() {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}

	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
	s.finished = true
	tracer := s.tracer
	s.mu.Unlock()

	if tracer != nil {
		tracer.finishSpan(s)
	}
}

// IsFinished returns whether the span is finished
func (s *Span) IsFinished() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finished
}

// SpanExporter receives finished spans
type SpanExporter interface {
	ExportSpans(spans []*Span) error
}

// Tracer creates spans and routes finished ones to its exporter. A nil
// exporter drops them.
type Tracer struct {
	serviceName string
	exporter    SpanExporter
}

// NewTracer creates a new tracer
func NewTracer(serviceName string, exporter SpanExporter) *Tracer {
	return &Tracer{
		serviceName: serviceName,
		exporter:    exporter,
	}
}

// StartSpan starts a new root span
func (t *Tracer) StartSpan(operationName string, options ...SpanOption) *Span {
	span := &Span{
		TraceID:       generateTraceID(),
		SpanID:        generateSpanID(),
		OperationName: operationName,
		StartTime:     time.Now(),
		Tags:          make(map[string]interface{}),
		Status:        SpanStatusUnset,
		tracer:        t,
	}

	for _, option := range options {
		option(span)
	}

	span.SetTag("service.name", t.serviceName)

	return span
}

// StartSpanFromContext starts a span as a child of any span carried in ctx
func (t *Tracer) StartSpanFromContext(ctx context.Context, operationName string, options ...SpanOption) (*Span, context.Context) {
	if parent := SpanFromContext(ctx); parent != nil {
		options = append(options, ChildOf(parent))
	}

	span := t.StartSpan(operationName, options...)
	return span, WithSpan(ctx, span)
}

func (t *Tracer) finishSpan(span *Span) {
	if t.exporter != nil {
		_ = t.exporter.ExportSpans([]*Span{span})
	}
}

// SpanOption configures a span at start time
type SpanOption func(*Span)

// ChildOf places the span under the given parent
func ChildOf(parent *Span) SpanOption {
	return func(span *Span) {
		if parent != nil {
			span.TraceID = parent.TraceID
			span.ParentID = parent.SpanID
		}
	}
}

// WithTag sets a tag on the span
func WithTag(key string, value interface{}) SpanOption {
	return func(span *Span) {
		span.SetTag(key, value)
	}
}

type contextKey int

const (
	spanContextKey contextKey = iota
	traceIDContextKey
)

// WithSpan adds a span to the context
func WithSpan(ctx context.Context, span *Span) context.Context {
	ctx = context.WithValue(ctx, spanContextKey, span)
	return context.WithValue(ctx, traceIDContextKey, span.TraceID)
}

// SpanFromContext extracts the active span, or nil
func SpanFromContext(ctx context.Context) *Span {
	span, _ := ctx.Value(spanContextKey).(*Span)
	return span
}

// GetTraceID extracts the trace ID from context
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDContextKey).(TraceID)
	return string(traceID)
}

func generateTraceID() TraceID {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return TraceID(fmt.Sprintf("%x", b))
}

func generateSpanID() SpanID {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return SpanID(fmt.Sprintf("%x", b))
}

// LoggingSpanExporter writes finished spans to the structured log
type LoggingSpanExporter struct {
	logger *Logger
}

// NewLoggingSpanExporter creates a new logging span exporter
func NewLoggingSpanExporter(logger *Logger) *LoggingSpanExporter {
	return &LoggingSpanExporter{logger: logger}
}

// ExportSpans logs each span as one entry with its tags flattened in
func (e *LoggingSpanExporter) ExportSpans(spans []*Span) error {
	for _, span := range spans {
		fields := map[string]interface{}{
			"trace_id":       string(span.TraceID),
			"span_id":        string(span.SpanID),
			"operation_name": span.OperationName,
			"duration_ms":    span.Duration.Milliseconds(),
			"status":         span.Status,
		}
		if span.ParentID != "" {
			fields["parent_id"] = string(span.ParentID)
		}

		for k, v := range span.Tags {
			fields[k] = v
		}

		e.logger.InfoWithFields("Span completed", fields)
	}

	return nil
}

// Global tracer instance
var defaultTracer *Tracer

// InitTracing initializes the global tracer
func InitTracing(serviceName string, exporter SpanExporter) {
	defaultTracer = NewTracer(serviceName, exporter)
}

// GetTracer returns the global tracer instance
func GetTracer() *Tracer {
	if defaultTracer == nil {
		defaultTracer = NewTracer("deckdrop", nil)
	}
	return defaultTracer
}

// StartSpanFromContext starts a span from context using the global tracer
func StartSpanFromContext(ctx context.Context, operationName string, options ...SpanOption) (*Span, context.Context) {
	return GetTracer().StartSpanFromContext(ctx, operationName, options...)
}

// TraceFunction runs fn inside its own span
func TraceFunction(ctx context.Context, operationName string, fn func(context.Context) error) error {
	span, ctx := StartSpanFromContext(ctx, operationName)
	defer span.Finish()

	if err := fn(ctx); err != nil {
		span.LogError(err)
		return err
	}

	span.SetStatus(SpanStatusOK)
	return nil
}
