// Package testutil provides the shared harness for pipeline tests: a
// fully wired editing session over an in-memory buffer, recording
// implementations of the publish interfaces, and small parsing helpers.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/document"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
	"github.com/alexwulf/alloy-configurator/internal/textbuf"
)

// Session is one fully wired editing pipeline for tests.
type Session struct {
	Ctx      context.Context
	Buffer   *textbuf.Memory
	Sync     *document.Synchronizer
	Sink     *RecordingSink
	Listener *RecordingListener
	Registry *registry.Registry
	Parser   *syntax.Parser
	Language *syntax.Language
}

// NewSession builds a session with the grammar already loaded. manifests
// maps file names to manifest contents for the registry; text is the
// initial buffer content. The initial publish cycle has completed by the
// time NewSession returns.
func NewSession(t *testing.T, manifests map[string]string, text string) *Session {
	t.Helper()

	ctx := Context(t)

	reg := registry.New()
	if len(manifests) > 0 {
		dir := t.TempDir()
		for name, content := range manifests {
			path := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		}
		require.NoError(t, reg.LoadDir(ctx, dir))
	}

	lang := syntax.NewLanguage()
	require.NoError(t, lang.Load(ctx))
	t.Cleanup(lang.Close)

	sess := &Session{
		Ctx:      ctx,
		Buffer:   textbuf.NewMemory(text),
		Sink:     &RecordingSink{},
		Listener: &RecordingListener{},
		Registry: reg,
		Parser:   syntax.NewParser(lang),
		Language: lang,
	}
	sess.Sync = document.New(ctx, sess.Parser, sess.Buffer, reg,
		document.WithSink(sess.Sink),
		document.WithListener(sess.Listener),
	)
	return sess
}

// SetText performs a free-text edit: full content replacement followed by
// the change notification.
func (s *Session) SetText(text string) {
	s.Buffer.SetText(text)
	s.Sync.OnTextChanged(s.Ctx)
}

// Context returns a context carrying a quiet test logger.
func Context(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// ParseDoc parses source through a freshly loaded language and fails the
// test on a deferral.
func ParseDoc(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	lang := syntax.NewLanguage()
	require.NoError(t, lang.Load(Context(t)))
	t.Cleanup(lang.Close)
	tree, err := syntax.NewParser(lang).Parse(src)
	require.NoError(t, err)
	return tree
}
