package document

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexwulf/alloy-configurator/internal/codec"
	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/diagnostics"
	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
	"github.com/alexwulf/alloy-configurator/internal/textbuf"
)

// State names the synchronizer's position in its publish cycle.
type State int

const (
	StateIdle State = iota
	StateParsing
	StatePublished
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateParsing:
		return "parsing"
	case StatePublished:
		return "published"
	}
	return "unknown"
}

// Synchronizer keeps the structured view of one buffer in lockstep with its
// text. It owns the current ComponentRecord list and marker set; both are
// fully replaced on every cycle, never patched in place.
type Synchronizer struct {
	parser   *syntax.Parser
	buf      textbuf.Buffer
	reg      *registry.Registry
	checkers []diagnostics.Checker

	sinks     []MarkerSink
	listeners []ComponentListener

	// gen orders triggers; a cycle publishes only while it is still the
	// newest. This substitutes for cancellation of in-flight parses.
	gen atomic.Uint64

	mu      sync.Mutex
	state   State
	records []model.ComponentRecord
	markers []model.Marker
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithSink subscribes a marker sink.
func WithSink(sink MarkerSink) Option {
	return func(s *Synchronizer) { s.sinks = append(s.sinks, sink) }
}

// WithListener subscribes a component listener.
func WithListener(l ComponentListener) Option {
	return func(s *Synchronizer) { s.listeners = append(s.listeners, l) }
}

// WithCheckers replaces the default semantic pass.
func WithCheckers(checkers ...diagnostics.Checker) Option {
	return func(s *Synchronizer) { s.checkers = checkers }
}

// New wires a synchronizer to a parser, a buffer and a registry. If the
// parser's language is not loaded yet, the first cycle runs as soon as it
// is; if it already is, an initial cycle runs before New returns.
func New(ctx context.Context, parser *syntax.Parser, buf textbuf.Buffer, reg *registry.Registry, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		parser: parser,
		buf:    buf,
		reg:    reg,
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	parser.Language().OnReady(func() { s.OnTextChanged(ctx) })
	return s
}

// OnTextChanged is the external trigger: the buffer content changed (or the
// grammar just became available) and the structured view must be re-derived
// from scratch. Safe to call from any goroutine; concurrent calls race only
// over who publishes last, and the newest text wins.
func (s *Synchronizer) OnTextChanged(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	gen := s.gen.Add(1)
	text := s.buf.Text()

	s.mu.Lock()
	s.state = StateParsing
	s.mu.Unlock()

	started := time.Now()
	tree, err := s.parser.Parse(text)
	if err != nil {
		// Grammar not ready: benign deferral, the language's ready callback
		// re-triggers this cycle. Never surfaced as a user-facing error.
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		logger.Debug("Reparse deferred.", "reason", err)
		return
	}

	matches := s.parser.Language().Components().Matches(tree)
	records := make([]model.ComponentRecord, 0, len(matches))
	for _, n := range matches {
		records = append(records, model.ComponentRecord{Block: codec.Unmarshal(n), Node: n})
	}
	markers := diagnostics.Extract(tree, records, s.reg, s.checkers...)
	elapsed := time.Since(started)

	s.mu.Lock()
	if s.gen.Load() != gen {
		// A newer trigger started while this cycle was computing; its
		// results are stale and must never surface.
		s.mu.Unlock()
		logger.Debug("Discarded stale parse cycle.", "generation", gen)
		return
	}
	s.records = records
	s.markers = markers
	s.state = StatePublished
	s.mu.Unlock()

	for _, sink := range s.sinks {
		if s.gen.Load() != gen {
			return
		}
		sink.PublishMarkers(markers)
	}
	for _, l := range s.listeners {
		if s.gen.Load() != gen {
			return
		}
		l.PublishComponents(records, elapsed)
	}

	logger.Debug("Document published.",
		"components", len(records),
		"markers", len(markers),
		"elapsed", elapsed,
	)
}

// State returns the current pipeline state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Records returns the most recently published component list.
func (s *Synchronizer) Records() []model.ComponentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ComponentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Markers returns the most recently published marker set.
func (s *Synchronizer) Markers() []model.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// RecordForNode resolves a node handle from the current tree back to its
// component record. It returns nil for nodes of a superseded tree.
func (s *Synchronizer) RecordForNode(n *syntax.Node) *model.ComponentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Node == n {
			return &s.records[i]
		}
	}
	return nil
}
