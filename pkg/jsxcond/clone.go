package jsxcond

// cloneExpr deep-copies an expression. Transformers hand out freshly
// built nodes only; cloning keeps that ownership rule intact when the
// same source expression feeds more than one output position.
func cloneExpr(x *Expr) *Expr {
	if x == nil {
		return nil
	}
	out := &Expr{Pos: x.Pos, Parts: make([]Node, len(x.Parts))}
	for i, part := range x.Parts {
		out.Parts[i] = cloneNode(part)
	}
	return out
}

func cloneNode(node Node) Node {
	switch n := node.(type) {
	case *Expr:
		return cloneExpr(n)
	case *Raw:
		return &Raw{Code: n.Code}
	case *Text:
		return &Text{Value: n.Value}
	case *Element:
		out := &Element{Tag: n.Tag, SelfClosing: n.SelfClosing, Pos: n.Pos}
		for _, attr := range n.Attrs {
			cloned := attr
			cloned.Expr = cloneExpr(attr.Expr)
			out.Attrs = append(out.Attrs, cloned)
		}
		for _, child := range n.Children {
			out.Children = append(out.Children, cloneNode(child))
		}
		return out
	case *Fragment:
		out := &Fragment{Pos: n.Pos}
		for _, child := range n.Children {
			out.Children = append(out.Children, cloneNode(child))
		}
		return out
	case *ExprContainer:
		return &ExprContainer{X: cloneExpr(n.X), Pos: n.Pos}
	case *Cond:
		return &Cond{Test: cloneNode(n.Test), Cons: cloneNode(n.Cons), Alt: cloneNode(n.Alt)}
	case *Call:
		out := &Call{Fun: n.Fun}
		for _, arg := range n.Args {
			out.Args = append(out.Args, cloneNode(arg))
		}
		return out
	case *Null:
		return &Null{}
	case *Not:
		return &Not{X: cloneNode(n.X)}
	case *And:
		return &And{X: cloneNode(n.X), Y: cloneNode(n.Y)}
	case *Bool:
		return &Bool{Value: n.Value}
	default:
		return node
	}
}
