package def

// componentRecord is one entry of the COMPONENTS section:
//
//	- <instance> <celltype> + PLACED ( 15 20 ) N ... ;
//
// Only the instance and cell type matter; placement and other modifiers
// are accepted and discarded.
type componentRecord struct {
	Instance string   `parser:"'-' @Symbol"`
	CellType string   `parser:"@Symbol"`
	Rest     []string `parser:"@!';'* ';'"`
}

// netRecord is one entry of the NETS section:
//
//	- <netname> ( <instance> <pin> ) ( <instance> <pin> ) + USE SIGNAL ;
//
// The net name is everything before the first connection group. Groups
// and bare modifier words may interleave after it; routing groups that
// are not (instance pin) pairs are kept in the AST but contribute no
// connections.
type netRecord struct {
	NameParts []string   `parser:"'-' @!('(' | ';')*"`
	Items     []*netItem `parser:"@@* ';'"`
}

type netItem struct {
	Group *connGroup `parser:"  @@"`
	Word  string     `parser:"| @Symbol"`
}

// connGroup is a parenthesized token group. A group with exactly two
// fields is a pin connection; anything else (routing coordinates, via
// names) is ignored.
type connGroup struct {
	Fields []string `parser:"'(' @!(')' | '(')* ')'"`
}

// conn returns the (instance, pin) pair for two-field groups.
func (g *connGroup) conn() (Conn, bool) {
	if len(g.Fields) != 2 {
		return Conn{}, false
	}
	return Conn{Instance: g.Fields[0], Pin: g.Fields[1]}, true
}
