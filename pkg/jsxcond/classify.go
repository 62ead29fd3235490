package jsxcond

// TagKind classifies an element's tag against the configured
// pseudo-element vocabulary. Classification happens once per element;
// the rest of the engine switches on the enum instead of comparing
// strings.
type TagKind int

const (
	TagOther TagKind = iota
	TagConditional
	TagSwitch
	TagCase
)

func (o Options) classifyTag(tag string) TagKind {
	switch tag {
	case o.ConditionTag:
		return TagConditional
	case o.SwitchTag:
		return TagSwitch
	case o.CaseTag:
		return TagCase
	default:
		return TagOther
	}
}

// Context is the syntactic role the expression containing a
// pseudo-element occurrence plays in the enclosing tree.
type Context int

const (
	// ContextJSXChild: the occurrence sits in another element's child
	// list (directly or through an expression container).
	ContextJSXChild Context = iota

	// ContextReturn: the occurrence is a return statement's argument.
	ContextReturn

	// ContextAssignment: the occurrence initializes a binding or is the
	// right-hand side of an assignment. Also the documented fallback
	// for unrecognized placements.
	ContextAssignment
)

func (c Context) String() string {
	switch c {
	case ContextJSXChild:
		return "jsx-child"
	case ContextReturn:
		return "return"
	case ContextAssignment:
		return "assignment"
	default:
		return "unknown"
	}
}

// ClassifyContext determines the Context of an occurrence from its
// parent chain, ordered innermost first. Expression wrappers are
// transparent; the first structural ancestor decides. The second
// return value is false when none of the rules matched and the
// assignment fallback was applied.
func ClassifyContext(parents []Node) (Context, bool) {
	for _, p := range parents {
		switch p.Type() {
		case NodeExpr, NodeRaw:
			continue
		case NodeReturn:
			return ContextReturn, true
		case NodeVarDecl, NodeAssign:
			return ContextAssignment, true
		case NodeElement, NodeFragment, NodeExprContainer:
			return ContextJSXChild, true
		default:
			return ContextAssignment, false
		}
	}
	return ContextAssignment, false
}
