package jsxcond

import "testing"

func TestParseStatements(t *testing.T) {
	src := `const a = 1;
let b = foo();
var c = "str";
d.e = f;
render();
return a;`

	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Stmts) != 6 {
		t.Fatalf("got %d statements, want 6", len(prog.Stmts))
	}

	decl, ok := prog.Stmts[0].(*VarDecl)
	if !ok || decl.Kind != "const" || decl.Name != "a" {
		t.Errorf("stmt 0: got %#v, want const a", prog.Stmts[0])
	}
	if decl, ok := prog.Stmts[1].(*VarDecl); !ok || decl.Kind != "let" || decl.Name != "b" {
		t.Errorf("stmt 1: got %#v, want let b", prog.Stmts[1])
	}
	if decl, ok := prog.Stmts[2].(*VarDecl); !ok || decl.Kind != "var" || decl.Name != "c" {
		t.Errorf("stmt 2: got %#v, want var c", prog.Stmts[2])
	}
	if asn, ok := prog.Stmts[3].(*Assign); !ok || asn.Target != "d.e" {
		t.Errorf("stmt 3: got %#v, want assignment to d.e", prog.Stmts[3])
	}
	if _, ok := prog.Stmts[4].(*ExprStmt); !ok {
		t.Errorf("stmt 4: got %T, want *ExprStmt", prog.Stmts[4])
	}
	if ret, ok := prog.Stmts[5].(*Return); !ok || ret.Arg == nil {
		t.Errorf("stmt 5: got %#v, want return with argument", prog.Stmts[5])
	}
}

func TestParseFunction(t *testing.T) {
	src := `function outer(a, b) {
  function inner() {
    return null;
  }
  return inner;
}`

	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}

	fn, ok := prog.Stmts[0].(*Func)
	if !ok {
		t.Fatalf("got %T, want *Func", prog.Stmts[0])
	}
	if fn.Name != "outer" {
		t.Errorf("name: got %q, want %q", fn.Name, "outer")
	}
	if fn.Params != "a, b" {
		t.Errorf("params: got %q, want %q", fn.Params, "a, b")
	}
	if len(fn.Body) != 2 {
		t.Fatalf("body: got %d statements, want 2", len(fn.Body))
	}
	if inner, ok := fn.Body[0].(*Func); !ok || inner.Name != "inner" {
		t.Errorf("body 0: got %#v, want function inner", fn.Body[0])
	}
}

func TestParseJSXElement(t *testing.T) {
	src := `return <Form name="x" active disabled={!ok}><Input/>text{value}</Form>;`

	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ret := prog.Stmts[0].(*Return)
	if len(ret.Arg.Parts) != 1 {
		t.Fatalf("got %d expression parts, want 1", len(ret.Arg.Parts))
	}

	el, ok := ret.Arg.Parts[0].(*Element)
	if !ok {
		t.Fatalf("got %T, want *Element", ret.Arg.Parts[0])
	}
	if el.Tag != "Form" {
		t.Errorf("tag: got %q, want %q", el.Tag, "Form")
	}
	if len(el.Attrs) != 3 {
		t.Fatalf("got %d attributes, want 3", len(el.Attrs))
	}
	if a := el.Attr("name"); a == nil || a.Kind != AttrString || a.Value != "x" {
		t.Errorf("name attr: got %#v", el.Attr("name"))
	}
	if a := el.Attr("active"); a == nil || a.Kind != AttrBare {
		t.Errorf("active attr: got %#v", el.Attr("active"))
	}
	if a := el.Attr("disabled"); a == nil || a.Kind != AttrExpr || a.Expr == nil {
		t.Errorf("disabled attr: got %#v", el.Attr("disabled"))
	}

	if len(el.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(el.Children))
	}
	if input, ok := el.Children[0].(*Element); !ok || input.Tag != "Input" || !input.SelfClosing {
		t.Errorf("child 0: got %#v, want self-closing <Input/>", el.Children[0])
	}
	if text, ok := el.Children[1].(*Text); !ok || text.Value != "text" {
		t.Errorf("child 1: got %#v, want text", el.Children[1])
	}
	if _, ok := el.Children[2].(*ExprContainer); !ok {
		t.Errorf("child 2: got %T, want *ExprContainer", el.Children[2])
	}
}

func TestParseFragment(t *testing.T) {
	prog, err := Parse(`return <>a<b/></>;`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ret := prog.Stmts[0].(*Return)

	frag, ok := ret.Arg.Parts[0].(*Fragment)
	if !ok {
		t.Fatalf("got %T, want *Fragment", ret.Arg.Parts[0])
	}
	if len(frag.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(frag.Children))
	}
}

func TestParseElementPosition(t *testing.T) {
	prog, err := Parse("return <div/>;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	el := prog.Stmts[0].(*Return).Arg.Parts[0].(*Element)
	if el.Pos.Line != 1 || el.Pos.Col != 8 {
		t.Errorf("pos: got %d:%d, want 1:8", el.Pos.Line, el.Pos.Col)
	}
}

func TestParseNewlineTermination(t *testing.T) {
	src := "const a = foo\nreturn b;"
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*VarDecl); !ok {
		t.Errorf("stmt 0: got %T, want *VarDecl", prog.Stmts[0])
	}
	if _, ok := prog.Stmts[1].(*Return); !ok {
		t.Errorf("stmt 1: got %T, want *Return", prog.Stmts[1])
	}
}

func TestParseCommentsAndStraySemicolons(t *testing.T) {
	src := `// leading comment
;;
/* block
   comment */
return null;;`

	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*Return); !ok {
		t.Errorf("got %T, want *Return", prog.Stmts[0])
	}
}

func TestParseComparisonIsNotJSX(t *testing.T) {
	prog, err := Parse(`const small = a < b;`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	decl := prog.Stmts[0].(*VarDecl)
	if len(decl.Init.Parts) != 1 {
		t.Fatalf("got %d parts, want 1", len(decl.Init.Parts))
	}
	raw, ok := decl.Init.Parts[0].(*Raw)
	if !ok || raw.Code != "a < b" {
		t.Errorf("got %#v, want raw %q", decl.Init.Parts[0], "a < b")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated element", `return <div>;`},
		{"mismatched closing tag", `return <div></span>;`},
		{"unterminated fragment", `return <>;`},
		{"unquoted attribute value", `return <div a=b>;`},
		{"unterminated attribute expression", `return <Condition if={x><p/></Condition>;`},
		{"unterminated string attribute", `return <div a="x>;`},
		{"unterminated function body", `function f() { return null;`},
		{"unterminated parameter list", `function f(;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.src); err == nil {
				t.Errorf("Parse(%q): expected error", tt.src)
			}
		})
	}
}
