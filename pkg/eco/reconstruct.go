package eco

import (
	"strings"

	"github.com/edatools/defeco/pkg/def"
	"github.com/edatools/defeco/pkg/diag"
)

// InsertionCommand splices a new buffer into an existing net: the listed
// loads move off the original net onto the buffer's output net, and the
// buffer's input takes over the original connection.
type InsertionCommand struct {
	// Instance is the buffer's instance name; it exists only in the
	// modified design.
	Instance string

	// CellType is the buffer's cell type.
	CellType string

	// Loads are the terminals the buffer now drives: every attachment on
	// the output net except the buffer itself, in net attachment order.
	Loads []def.Conn

	// OutputNet is the net the buffer drives.
	OutputNet string

	// InputNet is the net feeding the buffer, when one was found. It is
	// informational; reconstruction succeeds without it.
	InputNet string
}

// String renders the command in ECO script form:
//
//	insert_buffer {u2/A u3/A} BUFx2 buf1 net_a
func (c InsertionCommand) String() string {
	loads := make([]string, len(c.Loads))
	for i, l := range c.Loads {
		loads[i] = l.String()
	}
	return "insert_buffer {" + strings.Join(loads, " ") + "} " + c.CellType + " " + c.Instance + " " + c.OutputNet
}

// Reconstruct recovers the wire topology around one inserted buffer. It
// scans the modified design's nets once, classifying the buffer's own
// attachments by pin role; the net holding its output pin is the output
// net and every other terminal on that net is a load. When the buffer
// attaches with the same role on several nets the later net wins,
// following document order.
//
// A buffer with no recognizable output net, or whose output net drives
// nothing else, is not actionable: Reconstruct reports ok=false and a
// diagnostic, and the candidate is dropped.
func (rs *Ruleset) Reconstruct(mod *def.Design, instance, cellType string) (cmd InsertionCommand, ds []diag.Diagnostic, ok bool) {
	outputNet := ""
	inputNet := ""
	for _, net := range mod.Nets {
		for _, conn := range net.Conns {
			if conn.Instance != instance {
				continue
			}
			switch {
			case rs.IsOutputPin(conn.Pin):
				outputNet = net.Name
			case rs.IsInputPin(conn.Pin):
				inputNet = net.Name
			}
		}
	}

	if outputNet == "" {
		ds = append(ds, diag.Diagnostic{
			Code:    diag.CodeUnresolvableBuffer,
			Subject: instance,
			Message: "no output net found, dropping insertion",
		})
		return InsertionCommand{}, ds, false
	}

	var loads []def.Conn
	if net, found := mod.Net(outputNet); found {
		for _, conn := range net.Conns {
			if conn.Instance != instance {
				loads = append(loads, conn)
			}
		}
	}
	if len(loads) == 0 {
		ds = append(ds, diag.Diagnostic{
			Code:    diag.CodeDanglingBuffer,
			Subject: instance,
			Message: "output net " + outputNet + " drives no loads, dropping insertion",
		})
		return InsertionCommand{}, ds, false
	}

	return InsertionCommand{
		Instance:  instance,
		CellType:  cellType,
		Loads:     loads,
		OutputNet: outputNet,
		InputNet:  inputNet,
	}, ds, true
}
