package eco

import (
	"sort"

	"github.com/edatools/defeco/pkg/def"
)

// ResizeCommand retypes an existing instance to a different drive
// strength of the same logical function.
type ResizeCommand struct {
	Instance    string
	NewCellType string
}

// String renders the command in ECO script form.
func (c ResizeCommand) String() string {
	return "size_cell " + c.Instance + " " + c.NewCellType
}

// Resizes returns one command per instance present in both designs whose
// cell type changed to a different drive strength of the same function.
// A type change to a different base function is a real functional edit,
// not a resize, and is excluded. Commands come back sorted by instance
// name so runs are byte-for-byte reproducible.
func (rs *Ruleset) Resizes(orig, mod *def.Design) []ResizeCommand {
	var cmds []ResizeCommand
	for instance, origType := range orig.Components {
		modType, ok := mod.Components[instance]
		if !ok || origType == modType {
			continue
		}
		if rs.SameFunction(origType, modType) {
			cmds = append(cmds, ResizeCommand{Instance: instance, NewCellType: modType})
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Instance < cmds[j].Instance })
	return cmds
}

// BufferCandidates returns the instances that exist only in the modified
// design and whose cell type carries a buffer-family marker, sorted by
// instance name. New non-buffer cells are someone else's problem and are
// ignored here.
func (rs *Ruleset) BufferCandidates(orig, mod *def.Design) []string {
	var candidates []string
	for instance, cellType := range mod.Components {
		if _, existed := orig.Components[instance]; existed {
			continue
		}
		if rs.IsBuffer(cellType) {
			candidates = append(candidates, instance)
		}
	}
	sort.Strings(candidates)
	return candidates
}
