package syntax

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokLBrace
	tokRBrace
	tokLBrack
	tokRBrack
	tokLParen
	tokRParen
	tokAssign
	tokDot
	tokComma
	tokNewline
	tokInvalid
)

// token is one lexeme with its source span. End is exclusive.
type token struct {
	kind  tokenKind
	text  string
	start Position
	end   Position
}

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) pos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.off}
}

func (l *lexer) eof() bool {
	return l.off >= len(l.src)
}

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.off]
}

func (l *lexer) peekAt(n int) byte {
	if l.off+n >= len(l.src) {
		return 0
	}
	return l.src[l.off+n]
}

// advance consumes one byte, maintaining line and column counters.
func (l *lexer) advance() byte {
	b := l.src[l.off]
	l.off++
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// lexAll scans the whole source into tokens. Comments are dropped; newlines
// are emitted because they terminate attribute expressions.
func lexAll(src string) []token {
	l := newLexer(src)
	var toks []token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}

func (l *lexer) next() token {
	l.skipSpaceAndComments()
	start := l.pos()
	if l.eof() {
		return token{kind: tokEOF, start: start, end: start}
	}

	b := l.peek()
	switch {
	case b == '\n':
		l.advance()
		return l.emit(tokNewline, start)
	case isIdentStart(b):
		for !l.eof() && isIdentPart(l.peek()) {
			l.advance()
		}
		return l.emit(tokIdent, start)
	case isDigit(b) || (b == '-' && isDigit(l.peekAt(1))):
		l.scanNumber()
		return l.emit(tokNumber, start)
	case b == '"':
		l.scanString()
		return l.emit(tokString, start)
	}

	l.advance()
	switch b {
	case '{':
		return l.emit(tokLBrace, start)
	case '}':
		return l.emit(tokRBrace, start)
	case '[':
		return l.emit(tokLBrack, start)
	case ']':
		return l.emit(tokRBrack, start)
	case '(':
		return l.emit(tokLParen, start)
	case ')':
		return l.emit(tokRParen, start)
	case '=':
		return l.emit(tokAssign, start)
	case '.':
		return l.emit(tokDot, start)
	case ',':
		return l.emit(tokComma, start)
	}
	return l.emit(tokInvalid, start)
}

func (l *lexer) emit(kind tokenKind, start Position) token {
	end := l.pos()
	return token{kind: kind, text: l.src[start.Offset:end.Offset], start: start, end: end}
}

// skipSpaceAndComments consumes horizontal whitespace, line comments
// ("//" and "#") and block comments ("/* */"). Newlines are left for the
// token stream.
func (l *lexer) skipSpaceAndComments() {
	for !l.eof() {
		b := l.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			l.advance()
		case b == '#' || (b == '/' && l.peekAt(1) == '/'):
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		case b == '/' && l.peekAt(1) == '*':
			l.advance()
			l.advance()
			for !l.eof() {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) scanNumber() {
	if l.peek() == '-' {
		l.advance()
	}
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		if isDigit(l.peekAt(1)) || ((l.peekAt(1) == '+' || l.peekAt(1) == '-') && isDigit(l.peekAt(2))) {
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
			for !l.eof() && isDigit(l.peek()) {
				l.advance()
			}
		}
	}
}

// scanString consumes a double-quoted string, including the closing quote.
// An unterminated string runs to the end of the line so that a single bad
// quote does not swallow the rest of the document.
func (l *lexer) scanString() {
	l.advance() // opening quote
	for !l.eof() {
		b := l.peek()
		if b == '\n' {
			return
		}
		l.advance()
		if b == '\\' && !l.eof() && l.peek() != '\n' {
			l.advance()
			continue
		}
		if b == '"' {
			return
		}
	}
}
