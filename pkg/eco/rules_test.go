package eco

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `buffer_markers: [REPEAT, CLKBUF]
output_pins: [ZN]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	// Overridden fields
	assert.Equal(t, []string{"REPEAT", "CLKBUF"}, rules.BufferMarkers)
	assert.Equal(t, []string{"ZN"}, rules.OutputPins)
	// Untouched fields keep defaults
	assert.Equal(t, DefaultRules().InputPins, rules.InputPins)
	assert.Equal(t, DefaultRules().SizeSuffix, rules.SizeSuffix)

	rs, err := rules.Compile()
	require.NoError(t, err)
	assert.True(t, rs.IsBuffer("CLKBUFx4"))
	assert.False(t, rs.IsBuffer("BUFx4"))
	assert.True(t, rs.IsOutputPin("ZN"))
	assert.False(t, rs.IsOutputPin("Y"))
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCompileRejectsBadPattern(t *testing.T) {
	r := DefaultRules()
	r.SizeSuffix = `x(`
	_, err := r.Compile()
	assert.Error(t, err)
}
