package jsxcond

// NodeType identifies the kind of a syntax tree node.
type NodeType int

const (
	NodeProgram NodeType = iota
	NodeFunc
	NodeReturn
	NodeVarDecl
	NodeAssign
	NodeExprStmt
	NodeExpr
	NodeRaw
	NodeElement
	NodeFragment
	NodeText
	NodeExprContainer
	NodeCond
	NodeCall
	NodeNull
	NodeNot
	NodeAnd
	NodeBool
)

// Node is a node in the host-language syntax tree. The engine only
// needs the node kind; everything else is reached through the concrete
// types.
type Node interface {
	Type() NodeType
}

// Pos is a 1-based source position.
type Pos struct {
	Line int
	Col  int
}

// Program is a parsed source file: an ordered statement list.
type Program struct {
	Stmts []Node
}

func (*Program) Type() NodeType { return NodeProgram }

// Func is a function declaration. Parameters are kept as an opaque
// source span; only the body is modeled.
type Func struct {
	Name   string
	Params string
	Body   []Node
	Pos    Pos
}

func (*Func) Type() NodeType { return NodeFunc }

// Return is a return statement. Arg is nil for a bare return.
type Return struct {
	Arg *Expr
	Pos Pos
}

func (*Return) Type() NodeType { return NodeReturn }

// VarDecl is a single-name binding: const/let/var name = init.
type VarDecl struct {
	Kind string // "const", "let" or "var"
	Name string
	Init *Expr
	Pos  Pos
}

func (*VarDecl) Type() NodeType { return NodeVarDecl }

// Assign is a plain assignment statement: target = value.
type Assign struct {
	Target string
	Value  *Expr
	Pos    Pos
}

func (*Assign) Type() NodeType { return NodeAssign }

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	X   *Expr
	Pos Pos
}

func (*ExprStmt) Type() NodeType { return NodeExprStmt }

// Expr is a host-language expression: an ordered sequence of parts,
// each either an opaque Raw code span or a structurally parsed JSX
// node. Synthesized nodes (Cond, Call, ...) also appear as parts after
// rewriting.
type Expr struct {
	Parts []Node
	Pos   Pos
}

func (*Expr) Type() NodeType { return NodeExpr }

// Raw is an opaque span of host-language code inside an expression.
// The engine never looks inside it.
type Raw struct {
	Code string
}

func (*Raw) Type() NodeType { return NodeRaw }

// AttrKind distinguishes the three attribute value forms.
type AttrKind int

const (
	AttrBare   AttrKind = iota // <Tag attr>
	AttrString                 // <Tag attr="value">
	AttrExpr                   // <Tag attr={expr}>
)

// Attr is a JSX attribute.
type Attr struct {
	Name  string
	Kind  AttrKind
	Value string // literal for AttrString
	Expr  *Expr  // payload for AttrExpr
	Pos   Pos
}

// Element is a JSX element.
type Element struct {
	Tag         string
	Attrs       []Attr
	Children    []Node
	SelfClosing bool
	Pos         Pos
}

func (*Element) Type() NodeType { return NodeElement }

// Attr returns the named attribute, or nil.
func (e *Element) Attr(name string) *Attr {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return &e.Attrs[i]
		}
	}
	return nil
}

// Fragment is a JSX fragment: a grouping wrapper with no rendered
// output of its own.
type Fragment struct {
	Children []Node
	Pos      Pos
}

func (*Fragment) Type() NodeType { return NodeFragment }

// Text is literal JSX text content.
type Text struct {
	Value string
}

func (*Text) Type() NodeType { return NodeText }

// IsWhitespace reports whether the text is insignificant.
func (t *Text) IsWhitespace() bool {
	for _, r := range t.Value {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

// ExprContainer is a braced expression child: {expr}.
type ExprContainer struct {
	X   *Expr
	Pos Pos
}

func (*ExprContainer) Type() NodeType { return NodeExprContainer }

// Cond is a conditional expression: test ? cons : alt.
type Cond struct {
	Test Node
	Cons Node
	Alt  Node
}

func (*Cond) Type() NodeType { return NodeCond }

// Call is a call to a named function, used for the boolean coercion
// wrapper.
type Call struct {
	Fun  string
	Args []Node
}

func (*Call) Type() NodeType { return NodeCall }

// Null is the literal null.
type Null struct{}

func (*Null) Type() NodeType { return NodeNull }

// Not is a logical negation: !x.
type Not struct {
	X Node
}

func (*Not) Type() NodeType { return NodeNot }

// And is a logical conjunction: x && y.
type And struct {
	X Node
	Y Node
}

func (*And) Type() NodeType { return NodeAnd }

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

func (*Bool) Type() NodeType { return NodeBool }
