package syntax

import (
	"context"
	"errors"
	"sync"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
)

// ErrNotReady is returned by Parser.Parse until the language has finished
// loading. Callers treat it as a benign deferral, not a failure.
var ErrNotReady = errors.New("syntax: grammar not ready")

// ErrClosed is returned when a closed Language is loaded or used.
var ErrClosed = errors.New("syntax: language closed")

// componentsPattern selects every top-level block of a document.
const componentsPattern = "(file (block) @component)"

// Language owns the grammar for the component configuration language. It is
// an explicit lifecycle object: construct one per editing session, load it
// once (typically from a goroutine, mirroring the asynchronous grammar
// fetch of the hosting editor), and close it when the session ends. Until
// Load completes, parsers bound to it report ErrNotReady.
type Language struct {
	mu         sync.Mutex
	ready      bool
	closed     bool
	components *Query
	onReady    []func()
}

// NewLanguage returns an unloaded Language.
func NewLanguage() *Language {
	return &Language{}
}

// Load compiles the grammar's structural queries and marks the language
// ready. It is idempotent; concurrent callers after the first are no-ops.
// Callbacks registered with OnReady fire exactly once, after the language
// became usable.
func (l *Language) Load(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.ready {
		l.mu.Unlock()
		return nil
	}
	q, err := CompileQuery(componentsPattern)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.components = q
	l.ready = true
	fns := l.onReady
	l.onReady = nil
	l.mu.Unlock()

	logger.Debug("Grammar loaded.", "pattern", componentsPattern)
	for _, fn := range fns {
		fn()
	}
	return nil
}

// Ready reports whether Load has completed.
func (l *Language) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ready
}

// OnReady registers a callback invoked once the language is loaded. If it
// already is, the callback runs immediately on the calling goroutine.
func (l *Language) OnReady(fn func()) {
	l.mu.Lock()
	if l.ready {
		l.mu.Unlock()
		fn()
		return
	}
	l.onReady = append(l.onReady, fn)
	l.mu.Unlock()
}

// Components returns the compiled top-level component query, or nil until
// the language is ready.
func (l *Language) Components() *Query {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.components
}

// Close releases the language. Further parses report ErrNotReady.
func (l *Language) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.ready = false
	l.components = nil
	l.onReady = nil
}

// Parser produces tree snapshots for one language. Parsers are cheap;
// sessions typically hold one.
type Parser struct {
	lang *Language
}

// NewParser binds a parser to a language.
func NewParser(lang *Language) *Parser {
	return &Parser{lang: lang}
}

// Language returns the language this parser is bound to.
func (p *Parser) Language() *Language {
	return p.lang
}

// Parse produces a fresh tree for the full source text. Before the language
// has loaded it returns ErrNotReady and no tree.
func (p *Parser) Parse(src string) (*Tree, error) {
	if !p.lang.Ready() {
		return nil, ErrNotReady
	}
	return parse(src), nil
}
