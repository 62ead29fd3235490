package jsxcond

// rewriteCondition turns a single-condition pseudo-element into a
// conditional expression. The element's children have already been
// rewritten by the driver, so the body is a finished fragment.
//
// In return position the test expression is used as-is; everywhere
// else it is wrapped in the boolean coercion call so truthy non-boolean
// values behave like a boolean condition. The conditional structure is
// always emitted, even for an empty body.
func (r *Rewriter) rewriteCondition(el *Element, ctx Context) (Node, error) {
	attr := el.Attr(r.opts.TestAttr)
	if attr == nil || attr.Kind != AttrExpr || attr.Expr == nil {
		return nil, transformErr(ErrMissingTest, el.Tag, el.Pos)
	}

	var test Node = attr.Expr
	if ctx != ContextReturn {
		test = &Call{Fun: r.opts.CoerceFunc, Args: []Node{test}}
	}

	return &Cond{
		Test: test,
		Cons: &Fragment{Children: el.Children, Pos: el.Pos},
		Alt:  &Null{},
	}, nil
}
