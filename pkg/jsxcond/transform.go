package jsxcond

import "strings"

// Transform is the whole-file entry point used by host bindings:
// parse, rewrite once, print. The returned source has every recognized
// pseudo-element replaced; a fatal error yields no output at all.
func Transform(src string, opts Options) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", err
	}
	if err := NewRewriter(opts).Rewrite(prog); err != nil {
		return "", err
	}
	return Print(prog)
}

// ContainsPseudo is a cheap pre-scan: it reports whether the source
// can contain any pseudo-element at all. Callers use it to skip the
// parse and rewrite for files that never mention the vocabulary. False
// positives are fine, false negatives are not.
func ContainsPseudo(src string, opts Options) bool {
	opts = opts.withDefaults()
	return strings.Contains(src, "<"+opts.ConditionTag) ||
		strings.Contains(src, "<"+opts.SwitchTag)
}
