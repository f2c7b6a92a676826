// Package eco derives an ECO changelist from two extractions of the same
// design: the cell resizes and buffer insertions that transform the
// original circuit into the modified one, with insertions sequenced so
// that every buffer is created before anything that depends on it.
package eco

import (
	"github.com/edatools/defeco/pkg/def"
	"github.com/edatools/defeco/pkg/diag"
)

// Changelist is the full result of one analysis run.
type Changelist struct {
	// Resizes, sorted by instance name.
	Resizes []ResizeCommand

	// Insertions, in dependency order.
	Insertions []InsertionCommand

	// Stuck is non-empty when insertion ordering fell back to lexical
	// order for a cyclic remainder; it names the affected buffers.
	Stuck []string

	// Diagnostics collects every recoverable anomaly of the run,
	// extraction anomalies from both documents included.
	Diagnostics []diag.Diagnostic
}

// Total is the command count reported at the end of the changelist.
func (cl Changelist) Total() int {
	return len(cl.Resizes) + len(cl.Insertions)
}

// Analyzer runs the classify / reconstruct / order pipeline under a
// fixed convention ruleset.
type Analyzer struct {
	rules *Ruleset
}

// NewAnalyzer returns an Analyzer using the given conventions.
func NewAnalyzer(rules *Ruleset) *Analyzer {
	return &Analyzer{rules: rules}
}

// Analyze compares the original and modified designs. It never fails:
// anything it cannot make sense of is dropped with a diagnostic, and the
// commands it does emit are always complete and well formed.
func (a *Analyzer) Analyze(orig, mod *def.Design) Changelist {
	var cl Changelist
	cl.Diagnostics = append(cl.Diagnostics, orig.Diagnostics...)
	cl.Diagnostics = append(cl.Diagnostics, mod.Diagnostics...)

	cl.Resizes = a.rules.Resizes(orig, mod)

	var insertions []InsertionCommand
	for _, instance := range a.rules.BufferCandidates(orig, mod) {
		cmd, ds, ok := a.rules.Reconstruct(mod, instance, mod.Components[instance])
		cl.Diagnostics = append(cl.Diagnostics, ds...)
		if ok {
			insertions = append(insertions, cmd)
		}
	}

	ordered, ds := Order(insertions)
	cl.Diagnostics = append(cl.Diagnostics, ds...)
	cl.Insertions = ordered.Commands
	cl.Stuck = ordered.Stuck
	return cl
}
