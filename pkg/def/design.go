package def

import "github.com/edatools/defeco/pkg/diag"

// Conn is one terminal attached to a net: an (instance, pin) pair.
type Conn struct {
	Instance string
	Pin      string
}

// String renders the terminal in instance/pin form, the shape ECO
// commands use for load lists.
func (c Conn) String() string {
	return c.Instance + "/" + c.Pin
}

// Net is a named electrical connection and its attached terminals, in
// document order.
type Net struct {
	Name  string
	Conns []Conn
}

// Design holds the structural facts extracted from one DEF document:
// which cell type each instance is bound to, and which terminals each
// net joins. A Design is immutable once extraction returns it; the
// analyzer stages only read it.
type Design struct {
	// Components maps instance name to cell type name.
	Components map[string]string

	// Nets lists every net with at least one connection, in document
	// order. Document order is what makes repeated runs byte-identical.
	Nets []Net

	// Diagnostics records the recoverable anomalies seen during
	// extraction (missing sections, skipped records).
	Diagnostics []diag.Diagnostic

	netIndex map[string]int
}

// NewDesign builds a Design from already-extracted facts, indexing the
// nets by name. Parse is the normal entry point; this exists for tests
// and for callers that obtain the facts some other way.
func NewDesign(components map[string]string, nets []Net) *Design {
	d := &Design{
		Components: components,
		netIndex:   make(map[string]int, len(nets)),
	}
	if d.Components == nil {
		d.Components = make(map[string]string)
	}
	for _, n := range nets {
		d.addNet(n)
	}
	return d
}

// Net looks a net up by name.
func (d *Design) Net(name string) (Net, bool) {
	i, ok := d.netIndex[name]
	if !ok {
		return Net{}, false
	}
	return d.Nets[i], true
}

// addNet appends a net, keeping the name index in step. A duplicate net
// name replaces the earlier entry in place, matching last-record-wins
// extraction of malformed documents.
func (d *Design) addNet(n Net) {
	if i, ok := d.netIndex[n.Name]; ok {
		d.Nets[i] = n
		return
	}
	d.netIndex[n.Name] = len(d.Nets)
	d.Nets = append(d.Nets, n)
}
