package eco

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules captures the cell-library naming conventions the analyzer relies
// on. Standard-cell libraries disagree on buffer family names and pin
// labels, so the conventions are data with built-in defaults rather than
// hard-coded tests.
type Rules struct {
	// BufferMarkers are substrings of a cell type name that mark a
	// buffering element (repeaters, half-buffer pairs).
	BufferMarkers []string `yaml:"buffer_markers"`

	// OutputPins are the pin names treated as cell outputs.
	OutputPins []string `yaml:"output_pins"`

	// InputPins are the pin names treated as cell inputs.
	InputPins []string `yaml:"input_pins"`

	// SizeSuffix is the regular expression for a drive-strength suffix.
	// Matches are collapsed to SizeCanon when normalizing a cell type,
	// so INVx4 and INVxp5 both normalize to INVx.
	SizeSuffix string `yaml:"size_suffix"`

	// SizeCanon is the placeholder a matched size suffix collapses to.
	SizeCanon string `yaml:"size_canon"`
}

// DefaultRules returns the conventions of the typical open cell
// libraries: x-suffix drive strengths (integer or p-fractional) and
// Y/Z/Q outputs against A/D/IN inputs.
func DefaultRules() Rules {
	return Rules{
		BufferMarkers: []string{"BUF", "HB1", "HB2"},
		OutputPins:    []string{"Y", "Z", "Q"},
		InputPins:     []string{"A", "D", "IN"},
		SizeSuffix:    `x(?:\d+|p\d+)[a-zA-Z]*`,
		SizeCanon:     "x",
	}
}

// LoadRules reads a YAML rules file. Fields left empty in the file keep
// their defaults, so a file may override just the buffer markers.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("failed to read rules file: %w", err)
	}
	var override Rules
	if err := yaml.Unmarshal(data, &override); err != nil {
		return r, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if len(override.BufferMarkers) > 0 {
		r.BufferMarkers = override.BufferMarkers
	}
	if len(override.OutputPins) > 0 {
		r.OutputPins = override.OutputPins
	}
	if len(override.InputPins) > 0 {
		r.InputPins = override.InputPins
	}
	if override.SizeSuffix != "" {
		r.SizeSuffix = override.SizeSuffix
	}
	if override.SizeCanon != "" {
		r.SizeCanon = override.SizeCanon
	}
	return r, nil
}

// Ruleset is a compiled Rules, ready for classification.
type Ruleset struct {
	rules  Rules
	sizeRE *regexp.Regexp
	outPin map[string]bool
	inPin  map[string]bool
}

// Compile validates the rules and builds the matchers.
func (r Rules) Compile() (*Ruleset, error) {
	re, err := regexp.Compile(r.SizeSuffix)
	if err != nil {
		return nil, fmt.Errorf("invalid size_suffix pattern %q: %w", r.SizeSuffix, err)
	}
	rs := &Ruleset{
		rules:  r,
		sizeRE: re,
		outPin: make(map[string]bool, len(r.OutputPins)),
		inPin:  make(map[string]bool, len(r.InputPins)),
	}
	for _, p := range r.OutputPins {
		rs.outPin[p] = true
	}
	for _, p := range r.InputPins {
		rs.inPin[p] = true
	}
	return rs, nil
}

// MustCompile is Compile for the built-in defaults, which are known
// valid.
func MustCompile(r Rules) *Ruleset {
	rs, err := r.Compile()
	if err != nil {
		panic(err)
	}
	return rs
}

// Normalize strips drive-strength suffixes from a cell type, yielding
// its base function name. Two types with equal normalizations differ
// only in drive strength.
func (rs *Ruleset) Normalize(cellType string) string {
	return rs.sizeRE.ReplaceAllString(cellType, rs.rules.SizeCanon)
}

// SameFunction reports whether two cell types share a base function.
func (rs *Ruleset) SameFunction(a, b string) bool {
	return rs.Normalize(a) == rs.Normalize(b)
}

// IsBuffer reports whether a cell type names a buffering element.
func (rs *Ruleset) IsBuffer(cellType string) bool {
	for _, marker := range rs.rules.BufferMarkers {
		if strings.Contains(cellType, marker) {
			return true
		}
	}
	return false
}

// IsOutputPin reports whether pin is a recognized output.
func (rs *Ruleset) IsOutputPin(pin string) bool { return rs.outPin[pin] }

// IsInputPin reports whether pin is a recognized input.
func (rs *Ruleset) IsInputPin(pin string) bool { return rs.inPin[pin] }
