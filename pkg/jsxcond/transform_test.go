package jsxcond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPseudo(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"condition element", `return <Condition if={x}><p/></Condition>;`, true},
		{"switch element", `return <Switch></Switch>;`, true},
		{"plain markup", `return <div>Hello</div>;`, false},
		{"empty source", ``, false},
		// False positives are fine: the pre-scan only gates the parse.
		{"tag name prefix", `return <ConditionalPanel/>;`, true},
		{"mention in text", `return <p>no pseudo here</p>;`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPseudo(tt.src, opts))
		})
	}
}

func TestContainsPseudoCustomVocabulary(t *testing.T) {
	opts := Options{ConditionTag: "If", SwitchTag: "Choose"}

	assert.True(t, ContainsPseudo(`return <If cond={x}><p/></If>;`, opts))
	assert.False(t, ContainsPseudo(`return <Condition if={x}><p/></Condition>;`, opts))
}

func TestTransformParseError(t *testing.T) {
	_, err := Transform(`return <div>;`, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated <div>")
}

func TestTransformYieldsNoPartialOutput(t *testing.T) {
	src := `return <div><Condition><p/></Condition></div>;`
	got, err := Transform(src, DefaultOptions())
	require.Error(t, err)
	assert.Empty(t, got)
}
