package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexwulf/alloy-configurator/internal/document"
	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
	"github.com/alexwulf/alloy-configurator/internal/testutil"
	"github.com/alexwulf/alloy-configurator/internal/textbuf"
)

const registryManifest = `component "local.file" {
  argument "filename" {
    type     = string
    required = true
  }
}
`

func TestInitialPublishRunsDuringConstruction(t *testing.T) {
	sess := testutil.NewSession(t, nil, "a.foo \"x\" {\n}\n\nb.bar {\n}\n")

	assert.Equal(t, document.StatePublished, sess.Sync.State())
	assert.Equal(t, 1, sess.Sink.Count())
	assert.Equal(t, 1, sess.Listener.Count())

	records := sess.Sync.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a.foo", records[0].Block.Name)
	assert.Equal(t, "x", records[0].Block.Label)
	assert.Equal(t, "b.bar", records[1].Block.Name)
}

func TestEditFullyReplacesRecords(t *testing.T) {
	sess := testutil.NewSession(t, nil, "a.foo {\n}\n")
	require.Len(t, sess.Sync.Records(), 1)

	sess.SetText("b.bar \"y\" {\n  v = 1\n}\n")

	records := sess.Sync.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "b.bar", records[0].Block.Name, "old records never survive an edit")
	assert.Equal(t, 2, sess.Listener.Count())
}

func TestMarkersArePublishedWithRecords(t *testing.T) {
	sess := testutil.NewSession(t,
		map[string]string{"local_file.hcl": registryManifest},
		"local.file \"cfg\" {\n}\n")

	markers := sess.Sync.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, `"local.file" requires argument "filename"`, markers[0].Message)
	assert.Equal(t, model.SeverityWarning, markers[0].Severity)
	assert.Equal(t, markers, sess.Sink.Last())
}

func TestRepublishIsIdempotent(t *testing.T) {
	sess := testutil.NewSession(t, nil, "a.foo {\n  x =\n}\n")

	first := sess.Sync.Markers()
	sess.Sync.OnTextChanged(sess.Ctx)
	assert.Equal(t, first, sess.Sync.Markers())
	assert.Equal(t, 2, sess.Sink.Count())
	assert.Equal(t, sess.Sink.All()[0], sess.Sink.All()[1])
}

func TestTriggerDefersUntilGrammarReady(t *testing.T) {
	ctx := testutil.Context(t)

	lang := syntax.NewLanguage()
	t.Cleanup(lang.Close)
	buf := textbuf.NewMemory("a.foo \"x\" {\n}\n")
	sink := &testutil.RecordingSink{}
	listener := &testutil.RecordingListener{}

	sync := document.New(ctx, syntax.NewParser(lang), buf, registry.New(),
		document.WithSink(sink),
		document.WithListener(listener),
	)

	// The grammar is not loaded: triggers defer without publishing.
	sync.OnTextChanged(ctx)
	assert.Equal(t, document.StateIdle, sync.State())
	assert.Equal(t, 0, sink.Count())
	assert.Empty(t, sync.Records())

	// Loading fires the pending resync.
	require.NoError(t, lang.Load(ctx))
	assert.Equal(t, document.StatePublished, sync.State())
	assert.Equal(t, 1, sink.Count())
	require.Len(t, listener.Last(), 1)
	assert.Equal(t, "a.foo", listener.Last()[0].Block.Name)
}

// retriggerSink simulates a user edit arriving while a publish is still in
// flight: the first armed publish rewrites the buffer and triggers a new
// cycle from inside the sink callback.
type retriggerSink struct {
	ctx   context.Context
	buf   *textbuf.Memory
	sync  *document.Synchronizer
	text  string
	armed bool
}

func (r *retriggerSink) PublishMarkers([]model.Marker) {
	if !r.armed {
		return
	}
	r.armed = false
	r.buf.SetText(r.text)
	r.sync.OnTextChanged(r.ctx)
}

func TestNewestTextWins(t *testing.T) {
	ctx := testutil.Context(t)

	lang := syntax.NewLanguage()
	require.NoError(t, lang.Load(ctx))
	t.Cleanup(lang.Close)

	buf := textbuf.NewMemory("")
	rt := &retriggerSink{ctx: ctx, buf: buf, text: "t2.block \"b\" {\n}\n"}
	sink := &testutil.RecordingSink{}
	listener := &testutil.RecordingListener{}

	sync := document.New(ctx, syntax.NewParser(lang), buf, registry.New(),
		document.WithSink(rt),
		document.WithSink(sink),
		document.WithListener(listener),
	)
	rt.sync = sync

	// Overlapping triggers: the t1 cycle is superseded mid-publish by the
	// edit to t2 that its own sink callback delivers.
	rt.armed = true
	buf.SetText("t1.block \"a\" {\n}\n")
	sync.OnTextChanged(ctx)

	records := sync.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "t2.block", records[0].Block.Name)

	// The superseded t1 results never reached any subscriber.
	for _, list := range listener.All() {
		for _, rec := range list {
			assert.NotEqual(t, "t1.block", rec.Block.Name)
		}
	}
	require.NotEmpty(t, listener.Last())
	assert.Equal(t, "t2.block", listener.Last()[0].Block.Name)
	assert.Equal(t, document.StatePublished, sync.State())
}

func TestRecordForNode(t *testing.T) {
	sess := testutil.NewSession(t, nil, "a.foo {\n}\n")
	node := sess.Sync.Records()[0].Node

	rec := sess.Sync.RecordForNode(node)
	require.NotNil(t, rec)
	assert.Equal(t, "a.foo", rec.Block.Name)

	// Nodes of a superseded tree no longer resolve.
	sess.SetText("a.foo {\n}\n \n")
	assert.Nil(t, sess.Sync.RecordForNode(node))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", document.StateIdle.String())
	assert.Equal(t, "parsing", document.StateParsing.String())
	assert.Equal(t, "published", document.StatePublished.String())
}
