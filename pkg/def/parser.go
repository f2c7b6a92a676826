// Package def extracts structural facts from DEF circuit-description
// documents: the cell type bound to each placed instance, and the
// (instance, pin) terminals attached to each net. It understands only
// the COMPONENTS and NETS sections; everything else in the file is
// ignored. Missing sections and malformed records are reported as
// diagnostics on the resulting Design, never as errors.
package def

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/edatools/defeco/pkg/diag"
)

// Parser holds the compiled record grammars for the DEF subset.
type Parser struct {
	components *participle.Parser[componentRecord]
	nets       *participle.Parser[netRecord]
}

// NewParser compiles the record grammars.
func NewParser() (*Parser, error) {
	components, err := participle.Build[componentRecord](
		participle.Lexer(recordLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build component grammar: %w", err)
	}
	nets, err := participle.Build[netRecord](
		participle.Lexer(recordLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build net grammar: %w", err)
	}
	return &Parser{components: components, nets: nets}, nil
}

// Parse extracts a Design from a DEF document read from r.
func (p *Parser) Parse(r io.Reader) (*Design, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return p.ParseString(string(text)), nil
}

// ParseString extracts a Design from DEF document text. Extraction
// itself cannot fail: anomalies become diagnostics on the Design.
func (p *Parser) ParseString(text string) *Design {
	d := &Design{
		Components: make(map[string]string),
		netIndex:   make(map[string]int),
	}
	lines := strings.Split(text, "\n")
	p.extractComponents(d, lines)
	p.extractNets(d, lines)
	return d
}

// ParseFile extracts a Design from the DEF document at path.
func (p *Parser) ParseFile(path string) (*Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

func (p *Parser) extractComponents(d *Design, lines []string) {
	body, found := sectionLines(lines, "COMPONENTS")
	if !found {
		d.Diagnostics = append(d.Diagnostics, diag.Missingf("COMPONENTS", "section not found, treating as empty"))
		return
	}
	for _, record := range assembleRecords(body) {
		rec, err := p.components.ParseString("", record)
		if err != nil {
			d.Diagnostics = append(d.Diagnostics, diag.Malformedf(record, "skipping component record: %v", err))
			continue
		}
		d.Components[rec.Instance] = rec.CellType
	}
}

func (p *Parser) extractNets(d *Design, lines []string) {
	body, found := sectionLines(lines, "NETS")
	if !found {
		d.Diagnostics = append(d.Diagnostics, diag.Missingf("NETS", "section not found, treating as empty"))
		return
	}
	for _, record := range assembleRecords(body) {
		rec, err := p.nets.ParseString("", record)
		if err != nil {
			d.Diagnostics = append(d.Diagnostics, diag.Malformedf(record, "skipping net record: %v", err))
			continue
		}
		net := Net{Name: strings.Join(rec.NameParts, " ")}
		for _, item := range rec.Items {
			if item.Group == nil {
				continue
			}
			if conn, ok := item.Group.conn(); ok {
				net.Conns = append(net.Conns, conn)
			}
		}
		// A record contributing no terminals is noise, not a net.
		if len(net.Conns) == 0 {
			continue
		}
		d.addNet(net)
	}
}

// ParseFile is a convenience that compiles the grammars and extracts a
// Design in one call.
func ParseFile(path string) (*Design, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.ParseFile(path)
}

// ParseString is a convenience for tests and embedding callers.
func ParseString(text string) (*Design, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.ParseString(text), nil
}
