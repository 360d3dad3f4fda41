package testutil

import (
	"bytes"
	"sync"
	"time"

	"github.com/alexwulf/alloy-configurator/internal/model"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingSink captures every published marker set in order.
type RecordingSink struct {
	mu   sync.Mutex
	sets [][]model.Marker
}

// PublishMarkers implements document.MarkerSink.
func (r *RecordingSink) PublishMarkers(markers []model.Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := make([]model.Marker, len(markers))
	copy(set, markers)
	r.sets = append(r.sets, set)
}

// Count returns how many publishes were observed.
func (r *RecordingSink) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets)
}

// Last returns the most recent marker set, or nil.
func (r *RecordingSink) Last() []model.Marker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sets) == 0 {
		return nil
	}
	return r.sets[len(r.sets)-1]
}

// All returns every captured set in publish order.
func (r *RecordingSink) All() [][]model.Marker {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]model.Marker, len(r.sets))
	copy(out, r.sets)
	return out
}

// RecordingListener captures every published component list in order.
type RecordingListener struct {
	mu      sync.Mutex
	lists   [][]model.ComponentRecord
	elapsed []time.Duration
}

// PublishComponents implements document.ComponentListener.
func (r *RecordingListener) PublishComponents(records []model.ComponentRecord, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]model.ComponentRecord, len(records))
	copy(list, records)
	r.lists = append(r.lists, list)
	r.elapsed = append(r.elapsed, elapsed)
}

// Count returns how many publishes were observed.
func (r *RecordingListener) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lists)
}

// Last returns the most recent component list, or nil.
func (r *RecordingListener) Last() []model.ComponentRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lists) == 0 {
		return nil
	}
	return r.lists[len(r.lists)-1]
}

// All returns every captured list in publish order.
func (r *RecordingListener) All() [][]model.ComponentRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]model.ComponentRecord, len(r.lists))
	copy(out, r.lists)
	return out
}
