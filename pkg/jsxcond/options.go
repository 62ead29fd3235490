package jsxcond

// Options is the pseudo-element vocabulary the engine recognizes and
// the name of the boolean coercion callee it emits. Zero-value fields
// fall back to the defaults, so Options{} behaves like DefaultOptions().
type Options struct {
	ConditionTag     string
	SwitchTag        string
	CaseTag          string
	TestAttr         string
	ElseAttr         string
	ShortCircuitAttr string
	CoerceFunc       string
}

// DefaultOptions returns the stock vocabulary: <Condition if={...}>,
// <Switch shortCircuit> with <Switch.Case if={...}> children, and
// Boolean() as the coercion wrapper.
func DefaultOptions() Options {
	return Options{
		ConditionTag:     "Condition",
		SwitchTag:        "Switch",
		CaseTag:          "Switch.Case",
		TestAttr:         "if",
		ElseAttr:         "else",
		ShortCircuitAttr: "shortCircuit",
		CoerceFunc:       "Boolean",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ConditionTag == "" {
		o.ConditionTag = def.ConditionTag
	}
	if o.SwitchTag == "" {
		o.SwitchTag = def.SwitchTag
	}
	if o.CaseTag == "" {
		o.CaseTag = def.CaseTag
	}
	if o.TestAttr == "" {
		o.TestAttr = def.TestAttr
	}
	if o.ElseAttr == "" {
		o.ElseAttr = def.ElseAttr
	}
	if o.ShortCircuitAttr == "" {
		o.ShortCircuitAttr = def.ShortCircuitAttr
	}
	if o.CoerceFunc == "" {
		o.CoerceFunc = def.CoerceFunc
	}
	return o
}
