package jsxcond

import (
	"strings"
	"testing"
)

func rawExpr(code string) *Expr {
	return &Expr{Parts: []Node{&Raw{Code: code}}}
}

func TestPrintSynthesizedNodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"null literal", &Null{}, "null"},
		{"true literal", &Bool{Value: true}, "true"},
		{"false literal", &Bool{Value: false}, "false"},
		{"negated identifier stays bare", &Not{X: rawExpr("show")}, "!show"},
		{"negated dotted path stays bare", &Not{X: rawExpr("user.active")}, "!user.active"},
		{"negated compound gets parens", &Not{X: rawExpr("n > 0")}, "!(n > 0)"},
		{"conjunction of negations", &And{X: &Not{X: rawExpr("a")}, Y: &Not{X: rawExpr("b")}}, "!a && !b"},
		{"coercion call", &Call{Fun: "Boolean", Args: []Node{rawExpr("x")}}, "Boolean(x)"},
		{"conditional", &Cond{Test: rawExpr("a"), Cons: &Fragment{}, Alt: &Null{}}, "a ? <></> : null"},
		{"expression container", &ExprContainer{X: rawExpr("x")}, "{x}"},
		{"empty fragment", &Fragment{}, "<></>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := printNode(&sb, tt.node); err != nil {
				t.Fatalf("print: %v", err)
			}
			if got := sb.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintElementForms(t *testing.T) {
	el := &Element{
		Tag: "Form",
		Attrs: []Attr{
			{Name: "name", Kind: AttrString, Value: "x"},
			{Name: "active", Kind: AttrBare},
			{Name: "disabled", Kind: AttrExpr, Expr: rawExpr("!ok")},
		},
		Children: []Node{
			&Element{Tag: "Input", SelfClosing: true},
			&Text{Value: "text"},
		},
	}

	var sb strings.Builder
	if err := printNode(&sb, el); err != nil {
		t.Fatalf("print: %v", err)
	}
	want := `<Form name="x" active disabled={!ok}><Input/>text</Form>`
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintStatements(t *testing.T) {
	prog := &Program{Stmts: []Node{
		&Func{Name: "App", Params: "props", Body: []Node{
			&VarDecl{Kind: "const", Name: "x", Init: rawExpr("1")},
			&Return{Arg: rawExpr("x")},
		}},
		&Assign{Target: "app.root", Value: rawExpr("App")},
		&ExprStmt{X: rawExpr("render()")},
	}}

	got, err := Print(prog)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	want := "function App(props) {\n" +
		"  const x = 1;\n" +
		"  return x;\n" +
		"}\n" +
		"app.root = App;\n" +
		"render();\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintBareReturn(t *testing.T) {
	got, err := Print(&Program{Stmts: []Node{&Return{}}})
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if got != "return;\n" {
		t.Errorf("got %q, want %q", got, "return;\n")
	}
}

func TestPrintUnknownStatement(t *testing.T) {
	if _, err := Print(&Program{Stmts: []Node{&Raw{Code: "x"}}}); err == nil {
		t.Error("expected error for a non-statement node")
	}
}
