package jsxcond

import (
	"fmt"
	"strings"
)

// Print serializes a Program back to source text. Raw spans are
// emitted verbatim; JSX and synthesized conditional expressions are
// emitted in one canonical form.
func Print(prog *Program) (string, error) {
	var sb strings.Builder
	for _, stmt := range prog.Stmts {
		if err := printStmt(&sb, stmt, 0); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func printStmt(sb *strings.Builder, stmt Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch s := stmt.(type) {
	case *Func:
		fmt.Fprintf(sb, "%sfunction %s(%s) {\n", indent, s.Name, s.Params)
		for _, inner := range s.Body {
			if err := printStmt(sb, inner, depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(sb, "%s}\n", indent)
		return nil
	case *Return:
		sb.WriteString(indent)
		sb.WriteString("return")
		if s.Arg != nil {
			sb.WriteString(" ")
			if err := printNode(sb, s.Arg); err != nil {
				return err
			}
		}
		sb.WriteString(";\n")
		return nil
	case *VarDecl:
		fmt.Fprintf(sb, "%s%s %s = ", indent, s.Kind, s.Name)
		if err := printNode(sb, s.Init); err != nil {
			return err
		}
		sb.WriteString(";\n")
		return nil
	case *Assign:
		fmt.Fprintf(sb, "%s%s = ", indent, s.Target)
		if err := printNode(sb, s.Value); err != nil {
			return err
		}
		sb.WriteString(";\n")
		return nil
	case *ExprStmt:
		sb.WriteString(indent)
		if err := printNode(sb, s.X); err != nil {
			return err
		}
		sb.WriteString(";\n")
		return nil
	default:
		return fmt.Errorf("unknown statement type %T", stmt)
	}
}

func printNode(sb *strings.Builder, node Node) error {
	switch n := node.(type) {
	case *Expr:
		for _, part := range n.Parts {
			if err := printNode(sb, part); err != nil {
				return err
			}
		}
		return nil
	case *Raw:
		sb.WriteString(n.Code)
		return nil
	case *Text:
		sb.WriteString(n.Value)
		return nil
	case *Element:
		return printElement(sb, n)
	case *Fragment:
		sb.WriteString("<>")
		for _, child := range n.Children {
			if err := printNode(sb, child); err != nil {
				return err
			}
		}
		sb.WriteString("</>")
		return nil
	case *ExprContainer:
		sb.WriteString("{")
		if err := printNode(sb, n.X); err != nil {
			return err
		}
		sb.WriteString("}")
		return nil
	case *Cond:
		if err := printNode(sb, n.Test); err != nil {
			return err
		}
		sb.WriteString(" ? ")
		if err := printNode(sb, n.Cons); err != nil {
			return err
		}
		sb.WriteString(" : ")
		return printNode(sb, n.Alt)
	case *Call:
		sb.WriteString(n.Fun)
		sb.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := printNode(sb, arg); err != nil {
				return err
			}
		}
		sb.WriteString(")")
		return nil
	case *Null:
		sb.WriteString("null")
		return nil
	case *Bool:
		if n.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
		return nil
	case *Not:
		sb.WriteString("!")
		if needsParens(n.X) {
			sb.WriteString("(")
			if err := printNode(sb, n.X); err != nil {
				return err
			}
			sb.WriteString(")")
			return nil
		}
		return printNode(sb, n.X)
	case *And:
		if err := printNode(sb, n.X); err != nil {
			return err
		}
		sb.WriteString(" && ")
		return printNode(sb, n.Y)
	default:
		return fmt.Errorf("unknown node type %T", node)
	}
}

func printElement(sb *strings.Builder, el *Element) error {
	sb.WriteString("<")
	sb.WriteString(el.Tag)
	for _, attr := range el.Attrs {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		switch attr.Kind {
		case AttrString:
			fmt.Fprintf(sb, "=%q", attr.Value)
		case AttrExpr:
			sb.WriteString("={")
			if err := printNode(sb, attr.Expr); err != nil {
				return err
			}
			sb.WriteString("}")
		}
	}
	if el.SelfClosing {
		sb.WriteString("/>")
		return nil
	}
	sb.WriteString(">")
	for _, child := range el.Children {
		if err := printNode(sb, child); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(el.Tag)
	sb.WriteString(">")
	return nil
}

// needsParens reports whether a negated operand must be wrapped to
// keep its precedence. Simple identifiers stay bare: !show.
func needsParens(node Node) bool {
	x, ok := node.(*Expr)
	if !ok {
		return false
	}
	if len(x.Parts) != 1 {
		return true
	}
	raw, ok := x.Parts[0].(*Raw)
	if !ok {
		return true
	}
	code := strings.TrimSpace(raw.Code)
	if code == "" || !isIdentStart(code[0]) {
		return true
	}
	for i := 1; i < len(code); i++ {
		if !isIdentChar(code[i]) && code[i] != '.' {
			return true
		}
	}
	return false
}
