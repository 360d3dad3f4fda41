package syntax

type parser struct {
	src  string
	toks []token
	i    int
}

// parse builds a tree for the given source. It never fails: malformed
// regions become error nodes and absent required tokens become missing
// nodes.
func parse(src string) *Tree {
	p := &parser{src: src, toks: lexAll(src)}
	root := p.parseFile()
	t := &Tree{root: root, src: src}
	finalize(root, t)
	return t
}

func (p *parser) cur() token {
	return p.toks[p.i]
}

func (p *parser) bump() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) skipNewlines() {
	for p.cur().kind == tokNewline {
		p.i++
	}
}

func missingNode(kind string, at Position) *Node {
	return &Node{kind: kind, missing: true, start: at, end: at}
}

func (p *parser) parseFile() *Node {
	file := &Node{kind: KindFile, start: Position{Line: 1}}
	p.skipNewlines()
	for p.cur().kind != tokEOF {
		if p.cur().kind == tokIdent {
			file.children = append(file.children, p.parseStatement())
		} else {
			file.children = append(file.children, p.parseErrorRun(false))
		}
		p.skipNewlines()
	}
	file.end = p.cur().start
	return file
}

// parseName consumes a dotted identifier. It reports whether the name ended
// on a dangling dot so the caller can record the missing segment.
func (p *parser) parseName() (*Node, bool) {
	first := p.bump()
	end := first.end
	dangling := false
	for p.cur().kind == tokDot {
		dot := p.bump()
		if p.cur().kind == tokIdent {
			end = p.bump().end
			continue
		}
		end = dot.end
		dangling = true
		break
	}
	return &Node{kind: KindIdent, field: FieldName, start: first.start, end: end}, dangling
}

// parseStatement parses one attribute or block. The current token is an
// identifier.
func (p *parser) parseStatement() *Node {
	name, dangling := p.parseName()
	stmt := &Node{start: name.start}
	children := []*Node{name}
	if dangling {
		children = append(children, missingNode(KindIdent, name.end))
	}

	switch p.cur().kind {
	case tokAssign:
		stmt.kind = KindAttribute
		name.field = FieldKey
		eq := p.bump()
		value := p.parseExpr()
		if value == nil {
			value = missingNode(KindExpr, eq.end)
		}
		value.field = FieldValue
		children = append(children, value)
		stmt.end = value.end
		stmt.children = children
		return stmt

	case tokString, tokLBrace:
		return p.parseBlockRest(stmt, children)

	default:
		// An identifier followed by neither '=' nor a block opener: record a
		// block whose '{' is missing and stop here, so the surrounding
		// recovery stays local to this line.
		stmt.kind = KindBlock
		children = append(children, missingNode(KindLBrace, name.end))
		stmt.end = name.end
		stmt.children = children
		return stmt
	}
}

func (p *parser) parseBlockRest(stmt *Node, children []*Node) *Node {
	stmt.kind = KindBlock

	if p.cur().kind == tokString {
		lab := p.bump()
		children = append(children, &Node{kind: KindLabel, field: FieldLabel, start: lab.start, end: lab.end})
	}

	if p.cur().kind != tokLBrace {
		at := children[len(children)-1].end
		children = append(children, missingNode(KindLBrace, at))
		stmt.end = at
		stmt.children = children
		return stmt
	}
	lbrace := p.bump()

	body := &Node{kind: KindBody, field: FieldBody, start: lbrace.end}
	p.skipNewlines()
	for p.cur().kind != tokRBrace && p.cur().kind != tokEOF {
		if p.cur().kind == tokIdent {
			body.children = append(body.children, p.parseStatement())
		} else {
			body.children = append(body.children, p.parseErrorRun(true))
		}
		p.skipNewlines()
	}
	body.end = p.cur().start
	children = append(children, body)

	if p.cur().kind == tokRBrace {
		rbrace := p.bump()
		stmt.end = rbrace.end
	} else {
		children = append(children, missingNode(KindRBrace, p.cur().start))
		stmt.end = p.cur().start
	}
	stmt.children = children
	return stmt
}

// parseExpr captures an attribute value as one raw span: everything up to
// the next newline, closing brace or EOF at bracket depth zero. Returns nil
// when no value tokens are present.
func (p *parser) parseExpr() *Node {
	start := p.cur().start
	end := start
	depth := 0
	for {
		k := p.cur().kind
		if k == tokEOF {
			break
		}
		if depth == 0 && (k == tokNewline || k == tokRBrace) {
			break
		}
		switch k {
		case tokLBrace, tokLBrack, tokLParen:
			depth++
		case tokRBrace, tokRBrack, tokRParen:
			if depth > 0 {
				depth--
			}
		}
		end = p.bump().end
	}
	if end == start {
		return nil
	}
	return &Node{kind: KindExpr, start: start, end: end}
}

// parseErrorRun consumes tokens until a sync point: a newline at bracket
// depth zero, a closing brace when inside a block body, or EOF. The skipped
// span becomes a single error node.
func (p *parser) parseErrorRun(insideBody bool) *Node {
	start := p.cur().start
	end := start
	depth := 0
	for {
		k := p.cur().kind
		if k == tokEOF {
			break
		}
		if depth == 0 && k == tokNewline {
			break
		}
		if insideBody && depth == 0 && k == tokRBrace {
			break
		}
		switch k {
		case tokLBrace, tokLBrack, tokLParen:
			depth++
		case tokRBrace, tokRBrack, tokRParen:
			if depth > 0 {
				depth--
			}
		}
		end = p.bump().end
	}
	if end == start && p.cur().kind != tokEOF {
		// Guarantee progress on a lone sync token at the start of the run.
		end = p.bump().end
	}
	return &Node{kind: KindError, start: start, end: end}
}
