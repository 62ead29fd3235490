package jsxcond

type switchCase struct {
	test *Expr // nil for the default case
	body []Node
	pos  Pos
}

// rewriteSwitch turns a switch pseudo-element and its ordered case
// children into a conditional expression. Case children have already
// been rewritten by the driver.
//
// Two modes, selected by the shortCircuit attribute:
//
//   - parallel (default): one independently evaluated conditional per
//     case, bundled in a fragment; any subset of cases can render at
//     once. A default case renders only when every test is falsy.
//   - short-circuit: cases fold right-to-left into one nested ternary,
//     so at most one body renders: the first truthy case in source
//     order, the default case, or null.
//
// The output shape does not depend on Context: a switch always sits in
// expression position by construction.
func (r *Rewriter) rewriteSwitch(el *Element) (Node, error) {
	cases, elseCase, err := r.collectCases(el)
	if err != nil {
		return nil, err
	}

	if el.Attr(r.opts.ShortCircuitAttr) != nil {
		return r.shortCircuitSwitch(cases, elseCase), nil
	}
	return r.parallelSwitch(el, cases, elseCase), nil
}

// collectCases validates the switch's child list and splits it into
// ordered test cases plus an optional default case. Whitespace-only
// text is insignificant; anything else that is not a case element is
// fatal.
func (r *Rewriter) collectCases(el *Element) ([]switchCase, *switchCase, error) {
	var cases []switchCase
	var elseCase *switchCase

	for _, child := range el.Children {
		switch n := child.(type) {
		case *Text:
			if !n.IsWhitespace() {
				return nil, nil, transformErr(ErrInvalidSwitchChild, el.Tag, el.Pos)
			}
		case *Element:
			if r.opts.classifyTag(n.Tag) != TagCase {
				return nil, nil, transformErr(ErrInvalidSwitchChild, n.Tag, n.Pos)
			}
			c, isElse, err := r.readCase(n)
			if err != nil {
				return nil, nil, err
			}
			if isElse {
				elseCase = &c
			} else {
				cases = append(cases, c)
			}
		default:
			return nil, nil, transformErr(ErrInvalidSwitchChild, el.Tag, el.Pos)
		}
	}
	return cases, elseCase, nil
}

func (r *Rewriter) readCase(el *Element) (switchCase, bool, error) {
	if attr := el.Attr(r.opts.TestAttr); attr != nil && attr.Kind == AttrExpr && attr.Expr != nil {
		return switchCase{test: attr.Expr, body: el.Children, pos: el.Pos}, false, nil
	}
	if el.Attr(r.opts.ElseAttr) != nil {
		return switchCase{body: el.Children, pos: el.Pos}, true, nil
	}
	return switchCase{}, false, transformErr(ErrMissingTest, el.Tag, el.Pos)
}

func (r *Rewriter) parallelSwitch(el *Element, cases []switchCase, elseCase *switchCase) Node {
	frag := &Fragment{Pos: el.Pos}
	tests := make([]*Expr, 0, len(cases))

	for _, c := range cases {
		tests = append(tests, c.test)
		cond := &Cond{
			Test: &Call{Fun: r.opts.CoerceFunc, Args: []Node{c.test}},
			Cons: &Fragment{Children: c.body, Pos: c.pos},
			Alt:  &Null{},
		}
		frag.Children = append(frag.Children, wrapChild(cond))
	}

	if elseCase != nil {
		cond := &Cond{
			Test: elseGuard(tests),
			Cons: &Fragment{Children: elseCase.body, Pos: elseCase.pos},
			Alt:  &Null{},
		}
		frag.Children = append(frag.Children, wrapChild(cond))
	}
	return frag
}

func (r *Rewriter) shortCircuitSwitch(cases []switchCase, elseCase *switchCase) Node {
	var result Node = &Null{}
	if elseCase != nil {
		result = caseBody(elseCase.body, elseCase.pos)
	}
	for i := len(cases) - 1; i >= 0; i-- {
		result = &Cond{
			Test: cases[i].test,
			Cons: caseBody(cases[i].body, cases[i].pos),
			Alt:  result,
		}
	}
	return result
}

// caseBody builds the branch expression for a case body in
// short-circuit mode: a lone element stays bare, anything else is
// fragment-wrapped. Whitespace-only text does not count.
func caseBody(children []Node, pos Pos) Node {
	significant := make([]Node, 0, len(children))
	for _, child := range children {
		if t, ok := child.(*Text); ok && t.IsWhitespace() {
			continue
		}
		significant = append(significant, child)
	}
	if len(significant) == 1 {
		if el, ok := significant[0].(*Element); ok {
			return el
		}
	}
	return &Fragment{Children: significant, Pos: pos}
}

// elseGuard builds the parallel-mode guard for the default case:
// !t1 && !t2 && ..., or the literal true when there are no other
// cases. Test expressions are cloned so no node is shared between the
// guard and the case conditionals.
func elseGuard(tests []*Expr) Node {
	if len(tests) == 0 {
		return &Bool{Value: true}
	}
	var guard Node = &Not{X: cloneExpr(tests[0])}
	for _, t := range tests[1:] {
		guard = &And{X: guard, Y: &Not{X: cloneExpr(t)}}
	}
	return guard
}

// wrapChild places an expression-shaped node into a JSX child list.
func wrapChild(node Node) Node {
	switch node.(type) {
	case *Element, *Fragment:
		return node
	default:
		return &ExprContainer{X: &Expr{Parts: []Node{node}}}
	}
}
