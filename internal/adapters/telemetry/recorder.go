// Package telemetry provides the Progrock implementation of the tracer port.
package telemetry

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/mason/internal/core/ports"
)

// Recorder implements ports.Tracer using the progrock library: every probe
// and pipeline step becomes a vertex on the tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Start begins recording a new vertex.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	if cfg.Cached {
		v.Cached()
	}
	return ctx, &Span{vertex: v}
}

// EmitPlan records the planned step ids as a vertex group annotation.
func (r *Recorder) EmitPlan(ctx context.Context, stepIDs []string) {
	for _, id := range stepIDs {
		d := digest.FromString("plan:" + id)
		v := r.rec.Vertex(d, "plan: "+id)
		v.Done(nil)
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write satisfies io.Writer by streaming to the vertex stdout.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the span, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError records an error for the span.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute adds a key-value pair to the span output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}
