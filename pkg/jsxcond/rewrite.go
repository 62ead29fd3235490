package jsxcond

import "log/slog"

// Rewriter is the recursive rewrite driver. It owns the tree for the
// duration of one pass: traversal is depth-first and post-order on
// pseudo-element subtrees, so nested occurrences are resolved before
// the element containing them. A single pass reaches a fixed point;
// rewritten output is never re-scanned.
type Rewriter struct {
	opts Options
	log  *slog.Logger
}

// NewRewriter builds a Rewriter. Zero-value Options fields fall back
// to the defaults.
func NewRewriter(opts Options) *Rewriter {
	return &Rewriter{opts: opts.withDefaults(), log: slog.Default()}
}

// WithLogger replaces the logger used for degraded-case reporting.
func (r *Rewriter) WithLogger(log *slog.Logger) *Rewriter {
	r.log = log
	return r
}

// Rewrite replaces every pseudo-element in the program with an
// equivalent conditional expression, in place. On error the pass is
// aborted and the tree must be discarded; partial output is never
// valid.
func (r *Rewriter) Rewrite(prog *Program) error {
	parents := []Node{prog}
	for _, stmt := range prog.Stmts {
		if err := r.rewriteStmt(stmt, parents); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rewriter) rewriteStmt(stmt Node, parents []Node) error {
	switch s := stmt.(type) {
	case *Func:
		parents = append(parents, s)
		for _, inner := range s.Body {
			if err := r.rewriteStmt(inner, parents); err != nil {
				return err
			}
		}
		return nil
	case *Return:
		if s.Arg == nil {
			return nil
		}
		return r.rewriteExpr(s.Arg, append(parents, s))
	case *VarDecl:
		return r.rewriteExpr(s.Init, append(parents, s))
	case *Assign:
		return r.rewriteExpr(s.Value, append(parents, s))
	case *ExprStmt:
		return r.rewriteExpr(s.X, append(parents, s))
	default:
		return nil
	}
}

// rewriteExpr visits every part of an expression. Pseudo-elements
// found here sit in expression position, so their replacement slots in
// directly as a part.
func (r *Rewriter) rewriteExpr(x *Expr, parents []Node) error {
	if x == nil {
		return nil
	}
	parents = append(parents, x)
	for i, part := range x.Parts {
		switch n := part.(type) {
		case *Element:
			repl, changed, err := r.rewriteElement(n, parents)
			if err != nil {
				return err
			}
			if changed {
				x.Parts[i] = repl
			}
		case *Fragment:
			if err := r.rewriteChildList(n.Children, append(parents, n)); err != nil {
				return err
			}
		case *ExprContainer:
			if err := r.rewriteExpr(n.X, append(parents, n)); err != nil {
				return err
			}
		}
	}
	return nil
}

// rewriteChildList visits a JSX child list. Pseudo-elements found here
// are replaced by their expression wrapped in a container child.
func (r *Rewriter) rewriteChildList(children []Node, parents []Node) error {
	for i, child := range children {
		switch n := child.(type) {
		case *Element:
			repl, changed, err := r.rewriteElement(n, parents)
			if err != nil {
				return err
			}
			if changed {
				children[i] = wrapChild(repl)
			}
		case *Fragment:
			if err := r.rewriteChildList(n.Children, append(parents, n)); err != nil {
				return err
			}
		case *ExprContainer:
			if err := r.rewriteExpr(n.X, append(parents, n)); err != nil {
				return err
			}
		}
	}
	return nil
}

// rewriteElement dispatches one element on its tag kind. For
// pseudo-elements it first rewrites the children (inner-first), then
// classifies the context and hands off to the matching transformer.
// The returned bool reports whether the element was replaced.
func (r *Rewriter) rewriteElement(el *Element, parents []Node) (Node, bool, error) {
	elParents := append(parents, el)

	switch r.opts.classifyTag(el.Tag) {
	case TagConditional:
		if err := r.rewriteAttrs(el, elParents); err != nil {
			return nil, false, err
		}
		if err := r.rewriteChildList(el.Children, elParents); err != nil {
			return nil, false, err
		}
		repl, err := r.rewriteCondition(el, r.classify(parents, el.Pos))
		if err != nil {
			return nil, false, err
		}
		return repl, true, nil

	case TagSwitch:
		if err := r.rewriteAttrs(el, elParents); err != nil {
			return nil, false, err
		}
		for _, child := range el.Children {
			if c, ok := child.(*Element); ok && r.opts.classifyTag(c.Tag) == TagCase {
				caseParents := append(elParents, c)
				if err := r.rewriteAttrs(c, caseParents); err != nil {
					return nil, false, err
				}
				if err := r.rewriteChildList(c.Children, caseParents); err != nil {
					return nil, false, err
				}
			}
		}
		repl, err := r.rewriteSwitch(el)
		if err != nil {
			return nil, false, err
		}
		return repl, true, nil

	default:
		// A case element outside a switch is treated as an ordinary
		// element; its parent switch is what consumes it.
		if err := r.rewriteAttrs(el, elParents); err != nil {
			return nil, false, err
		}
		if err := r.rewriteChildList(el.Children, elParents); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
}

// rewriteAttrs visits every attribute expression of an element, so
// pseudo-elements nested inside attribute values are resolved too.
func (r *Rewriter) rewriteAttrs(el *Element, parents []Node) error {
	for i := range el.Attrs {
		if el.Attrs[i].Kind == AttrExpr {
			if err := r.rewriteExpr(el.Attrs[i].Expr, parents); err != nil {
				return err
			}
		}
	}
	return nil
}

// classify resolves the context of a pseudo-element occurrence from
// the driver's parent stack (outermost first). The documented fallback
// for unrecognized placements is assignment position, logged as a
// degraded case.
func (r *Rewriter) classify(parents []Node, pos Pos) Context {
	chain := make([]Node, 0, len(parents))
	for i := len(parents) - 1; i >= 0; i-- {
		chain = append(chain, parents[i])
	}
	ctx, recognized := ClassifyContext(chain)
	if !recognized {
		r.log.Warn("pseudo-element in unrecognized context, defaulting to assignment position",
			"line", pos.Line, "col", pos.Col)
	}
	return ctx
}
