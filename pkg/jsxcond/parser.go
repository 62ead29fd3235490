package jsxcond

import (
	"fmt"
	"strings"
)

// Parse parses one source file of the host-language subset into a
// Program. The subset models just enough structure for context
// classification: function declarations, return statements, bindings,
// assignments and expression statements. Expression payloads stay
// opaque raw spans except for JSX, which is parsed structurally so the
// rewrite driver can reach pseudo-elements at any depth.
func Parse(src string) (*Program, error) {
	p := &parser{src: src, line: 1, col: 1}
	prog := &Program{}
	for {
		p.skipSpace()
		for p.peek() == ';' {
			p.advance()
			p.skipSpace()
		}
		if p.eof() {
			return prog, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
}

type parser struct {
	src  string
	pos  int
	line int
	col  int
}

type mark struct {
	pos  int
	line int
	col  int
}

func (p *parser) save() mark     { return mark{p.pos, p.line, p.col} }
func (p *parser) restore(m mark) { p.pos, p.line, p.col = m.pos, m.line, m.col }
func (p *parser) position() Pos  { return Pos{Line: p.line, Col: p.col} }
func (p *parser) eof() bool      { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) peekAt(off int) byte {
	if p.pos+off >= len(p.src) {
		return 0
	}
	return p.src[p.pos+off]
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

func (p *parser) errf(pos Pos, format string, args ...any) error {
	return fmt.Errorf("%d:%d: %s", pos.Line, pos.Col, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.advance()
		case '/':
			if p.peekAt(1) == '/' {
				for !p.eof() && p.peek() != '\n' {
					p.advance()
				}
			} else if p.peekAt(1) == '*' {
				p.advance()
				p.advance()
				for !p.eof() && !(p.peek() == '*' && p.peekAt(1) == '/') {
					p.advance()
				}
				if !p.eof() {
					p.advance()
					p.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (p *parser) skipInlineSpace() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance()
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) scanIdent() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

// atKeyword reports whether the given keyword starts here and is not a
// prefix of a longer identifier.
func (p *parser) atKeyword(kw string) bool {
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return false
	}
	next := p.peekAt(len(kw))
	return next == 0 || !isIdentChar(next)
}

func (p *parser) parseStmt() (Node, error) {
	pos := p.position()

	switch {
	case p.atKeyword("function"):
		return p.parseFunc()

	case p.atKeyword("return"):
		p.pos += len("return")
		p.col += len("return")
		p.skipInlineSpace()
		ret := &Return{Pos: pos}
		if !p.eof() && p.peek() != ';' && p.peek() != '\n' && p.peek() != '}' {
			arg, err := p.parseExpr(stmtStops, true)
			if err != nil {
				return nil, err
			}
			ret.Arg = arg
		}
		if p.peek() == ';' {
			p.advance()
		}
		return ret, nil

	case p.atKeyword("const"), p.atKeyword("let"), p.atKeyword("var"):
		m := p.save()
		kind := p.scanIdent()
		p.skipInlineSpace()
		name := p.scanIdent()
		p.skipInlineSpace()
		if name != "" && p.peek() == '=' && p.peekAt(1) != '=' && p.peekAt(1) != '>' {
			p.advance()
			p.skipInlineSpace()
			init, err := p.parseExpr(stmtStops, true)
			if err != nil {
				return nil, err
			}
			if p.peek() == ';' {
				p.advance()
			}
			return &VarDecl{Kind: kind, Name: name, Init: init, Pos: pos}, nil
		}
		p.restore(m)
	}

	// Assignment target: a dotted identifier path followed by a plain =.
	if isIdentStart(p.peek()) {
		m := p.save()
		target := p.scanIdent()
		for p.peek() == '.' && isIdentStart(p.peekAt(1)) {
			p.advance()
			target += "." + p.scanIdent()
		}
		p.skipInlineSpace()
		if p.peek() == '=' && p.peekAt(1) != '=' && p.peekAt(1) != '>' {
			p.advance()
			p.skipInlineSpace()
			value, err := p.parseExpr(stmtStops, true)
			if err != nil {
				return nil, err
			}
			if p.peek() == ';' {
				p.advance()
			}
			return &Assign{Target: target, Value: value, Pos: pos}, nil
		}
		p.restore(m)
	}

	x, err := p.parseExpr(stmtStops, true)
	if err != nil {
		return nil, err
	}
	if len(x.Parts) == 0 {
		return nil, p.errf(pos, "unexpected %q", string(p.peek()))
	}
	if p.peek() == ';' {
		p.advance()
	}
	return &ExprStmt{X: x, Pos: pos}, nil
}

func (p *parser) parseFunc() (Node, error) {
	pos := p.position()
	p.scanIdent() // "function"
	p.skipSpace()
	name := p.scanIdent()
	p.skipSpace()
	if p.peek() != '(' {
		return nil, p.errf(p.position(), "expected ( after function name")
	}
	p.advance()
	params, err := p.scanBalanced('(', ')')
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '{' {
		return nil, p.errf(p.position(), "expected function body")
	}
	p.advance()
	fn := &Func{Name: name, Params: params, Pos: pos}
	for {
		p.skipSpace()
		for p.peek() == ';' {
			p.advance()
			p.skipSpace()
		}
		if p.eof() {
			return nil, p.errf(pos, "unterminated function body")
		}
		if p.peek() == '}' {
			p.advance()
			return fn, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		fn.Body = append(fn.Body, stmt)
	}
}

// scanBalanced consumes raw source up to the close delimiter matching
// an already-consumed open delimiter and returns the interior text.
func (p *parser) scanBalanced(open, close byte) (string, error) {
	start := p.pos
	startPos := p.position()
	depth := 0
	for !p.eof() {
		c := p.peek()
		switch c {
		case '"', '\'', '`':
			p.scanStringLiteral()
			continue
		case open:
			depth++
		case close:
			if depth == 0 {
				inner := p.src[start:p.pos]
				p.advance()
				return inner, nil
			}
			depth--
		}
		p.advance()
	}
	return "", p.errf(startPos, "unterminated %q", string(open))
}

func (p *parser) scanStringLiteral() {
	quote := p.advance()
	for !p.eof() {
		c := p.advance()
		if c == '\\' && !p.eof() {
			p.advance()
			continue
		}
		if c == quote {
			return
		}
	}
}

func stmtStops(c byte) bool { return c == ';' || c == '}' }

// operandKeywords are identifiers after which an operand may start, so
// a following < opens JSX rather than a comparison. Any other
// identifier ends an operand.
var operandKeywords = map[string]bool{
	"return":     true,
	"case":       true,
	"typeof":     true,
	"throw":      true,
	"void":       true,
	"new":        true,
	"in":         true,
	"instanceof": true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"await":      true,
}

// parseExpr scans one expression as a part sequence: raw spans plus
// structurally parsed JSX. Scanning stops, without consuming, at a
// stop byte at bracket depth zero. With newlineTerm set, a newline at
// depth zero also terminates once the expression no longer expects an
// operand.
func (p *parser) parseExpr(stop func(byte) bool, newlineTerm bool) (*Expr, error) {
	x := &Expr{Pos: p.position()}
	rawStart := p.pos
	depth := 0
	expectOperand := true

	flush := func(end int) {
		code := p.src[rawStart:end]
		if len(x.Parts) == 0 {
			code = strings.TrimLeft(code, " \t\r\n")
		}
		if code != "" {
			x.Parts = append(x.Parts, &Raw{Code: code})
		}
	}

	for !p.eof() {
		c := p.peek()

		switch {
		case c == '"' || c == '\'' || c == '`':
			p.scanStringLiteral()
			expectOperand = false
			continue

		case c == '/' && p.peekAt(1) == '/':
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
			continue

		case c == '/' && p.peekAt(1) == '*':
			p.advance()
			p.advance()
			for !p.eof() && !(p.peek() == '*' && p.peekAt(1) == '/') {
				p.advance()
			}
			if !p.eof() {
				p.advance()
				p.advance()
			}
			continue

		case c == '<' && expectOperand && (isIdentStart(p.peekAt(1)) || p.peekAt(1) == '>'):
			flush(p.pos)
			el, err := p.parseJSX()
			if err != nil {
				return nil, err
			}
			x.Parts = append(x.Parts, el)
			rawStart = p.pos
			expectOperand = false
			continue
		}

		if depth == 0 && stop(c) {
			break
		}

		switch c {
		case '(', '[', '{':
			depth++
			expectOperand = true
		case ')', ']', '}':
			if depth == 0 {
				// Unbalanced close: the expression ends here and the
				// caller deals with the delimiter.
				flushTrimmed(x, p.src[rawStart:p.pos])
				return x, nil
			}
			depth--
			expectOperand = false
		case '\n':
			if newlineTerm && depth == 0 && !expectOperand {
				flushTrimmed(x, p.src[rawStart:p.pos])
				return x, nil
			}
		case ' ', '\t', '\r':
			// insignificant, no operand-state change
		default:
			if isIdentStart(c) {
				expectOperand = operandKeywords[p.scanIdent()]
				continue
			}
			if strings.IndexByte("=+-*/%,?:&|!~<>.", c) >= 0 {
				expectOperand = true
			} else {
				expectOperand = false
			}
		}
		p.advance()
	}

	flushTrimmed(x, p.src[rawStart:p.pos])
	return x, nil
}

// flushTrimmed appends the final raw span with surrounding whitespace
// removed, keeping printed output tidy.
func flushTrimmed(x *Expr, code string) {
	if len(x.Parts) == 0 {
		code = strings.TrimLeft(code, " \t\r\n")
	}
	code = strings.TrimRight(code, " \t\r\n")
	if code != "" {
		x.Parts = append(x.Parts, &Raw{Code: code})
	}
}

func isTagChar(c byte) bool {
	return isIdentChar(c) || c == '.' || c == '-'
}

func (p *parser) scanTagName() string {
	start := p.pos
	for !p.eof() && isTagChar(p.peek()) {
		p.advance()
	}
	return p.src[start:p.pos]
}

// parseJSX parses one JSX element or fragment. The scanner is
// positioned on '<'.
func (p *parser) parseJSX() (Node, error) {
	pos := p.position()
	p.advance() // '<'

	if p.peek() == '>' {
		p.advance()
		children, err := p.parseJSXChildren("", pos)
		if err != nil {
			return nil, err
		}
		return &Fragment{Children: children, Pos: pos}, nil
	}

	tag := p.scanTagName()
	if tag == "" {
		return nil, p.errf(pos, "expected tag name")
	}
	el := &Element{Tag: tag, Pos: pos}

	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errf(pos, "unterminated <%s>", tag)
		}
		switch p.peek() {
		case '/':
			if p.peekAt(1) != '>' {
				return nil, p.errf(p.position(), "expected /> in <%s>", tag)
			}
			p.advance()
			p.advance()
			el.SelfClosing = true
			return el, nil
		case '>':
			p.advance()
			children, err := p.parseJSXChildren(tag, pos)
			if err != nil {
				return nil, err
			}
			el.Children = children
			return el, nil
		default:
			attr, err := p.parseJSXAttr(tag)
			if err != nil {
				return nil, err
			}
			el.Attrs = append(el.Attrs, attr)
		}
	}
}

func (p *parser) parseJSXAttr(tag string) (Attr, error) {
	pos := p.position()
	if !isIdentStart(p.peek()) {
		return Attr{}, p.errf(pos, "invalid attribute in <%s>", tag)
	}
	start := p.pos
	for !p.eof() && (isIdentChar(p.peek()) || p.peek() == '-') {
		p.advance()
	}
	name := p.src[start:p.pos]
	attr := Attr{Name: name, Kind: AttrBare, Pos: pos}

	if p.peek() != '=' {
		return attr, nil
	}
	p.advance()

	switch p.peek() {
	case '"', '\'':
		quote := p.advance()
		vstart := p.pos
		for !p.eof() && p.peek() != quote {
			p.advance()
		}
		if p.eof() {
			return Attr{}, p.errf(pos, "unterminated value for %s", name)
		}
		attr.Kind = AttrString
		attr.Value = p.src[vstart:p.pos]
		p.advance()
		return attr, nil
	case '{':
		p.advance()
		x, err := p.parseExpr(func(c byte) bool { return c == '}' }, false)
		if err != nil {
			return Attr{}, err
		}
		if p.peek() != '}' {
			return Attr{}, p.errf(pos, "unterminated expression for %s", name)
		}
		p.advance()
		attr.Kind = AttrExpr
		attr.Expr = x
		return attr, nil
	default:
		return Attr{}, p.errf(pos, "invalid value for %s in <%s>", name, tag)
	}
}

// parseJSXChildren parses element children up to the matching closing
// tag. Pass the empty tag for fragments.
func (p *parser) parseJSXChildren(tag string, openPos Pos) ([]Node, error) {
	var children []Node
	for {
		if p.eof() {
			if tag == "" {
				return nil, p.errf(openPos, "unterminated fragment")
			}
			return nil, p.errf(openPos, "unterminated <%s>", tag)
		}
		switch {
		case p.peek() == '<' && p.peekAt(1) == '/':
			closePos := p.position()
			p.advance()
			p.advance()
			name := p.scanTagName()
			p.skipSpace()
			if p.peek() != '>' {
				return nil, p.errf(closePos, "malformed closing tag")
			}
			p.advance()
			if name != tag {
				return nil, p.errf(closePos, "mismatched closing tag </%s>, expected </%s>", name, tag)
			}
			return children, nil

		case p.peek() == '<':
			el, err := p.parseJSX()
			if err != nil {
				return nil, err
			}
			children = append(children, el)

		case p.peek() == '{':
			pos := p.position()
			p.advance()
			x, err := p.parseExpr(func(c byte) bool { return c == '}' }, false)
			if err != nil {
				return nil, err
			}
			if p.peek() != '}' {
				return nil, p.errf(pos, "unterminated expression child")
			}
			p.advance()
			children = append(children, &ExprContainer{X: x, Pos: pos})

		default:
			start := p.pos
			for !p.eof() && p.peek() != '<' && p.peek() != '{' {
				p.advance()
			}
			children = append(children, &Text{Value: p.src[start:p.pos]})
		}
	}
}
