package def

import (
	"strings"
	"testing"

	"github.com/edatools/defeco/pkg/diag"
)

const sampleDEF = `VERSION 5.8 ;
DESIGN top ;
UNITS DISTANCE MICRONS 1000 ;

COMPONENTS 3 ;
- u1 INVx1 + PLACED ( 100 200 ) N ;
- u2 NAND2x2
  + PLACED ( 300 200 ) N ;
- u3 DFFx1 ;
END COMPONENTS

PINS 1 ;
- clk + NET clk + DIRECTION INPUT ;
END PINS

NETS 2 ;
- net_a ( u1 Y ) ( u2 A )
  + USE SIGNAL ;
- clk ( PIN clk ) ( u3 CLK ) + USE CLOCK ;
END NETS

END DESIGN
`

func mustParse(t *testing.T, text string) *Design {
	t.Helper()
	d, err := ParseString(text)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return d
}

func TestParseComponents(t *testing.T) {
	d := mustParse(t, sampleDEF)

	if len(d.Components) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(d.Components))
	}
	want := map[string]string{
		"u1": "INVx1",
		"u2": "NAND2x2",
		"u3": "DFFx1",
	}
	for instance, cellType := range want {
		if got := d.Components[instance]; got != cellType {
			t.Errorf("Component %s: expected type %q, got %q", instance, cellType, got)
		}
	}
}

func TestParseNets(t *testing.T) {
	d := mustParse(t, sampleDEF)

	if len(d.Nets) != 2 {
		t.Fatalf("Expected 2 nets, got %d", len(d.Nets))
	}

	netA, ok := d.Net("net_a")
	if !ok {
		t.Fatal("net_a not found")
	}
	if len(netA.Conns) != 2 {
		t.Fatalf("net_a: expected 2 connections, got %d", len(netA.Conns))
	}
	if netA.Conns[0] != (Conn{Instance: "u1", Pin: "Y"}) {
		t.Errorf("net_a first connection: got %v", netA.Conns[0])
	}
	if netA.Conns[1] != (Conn{Instance: "u2", Pin: "A"}) {
		t.Errorf("net_a second connection: got %v", netA.Conns[1])
	}

	clk, ok := d.Net("clk")
	if !ok {
		t.Fatal("clk net not found")
	}
	// Top-level port connections keep the PIN marker as the instance.
	if clk.Conns[0] != (Conn{Instance: "PIN", Pin: "clk"}) {
		t.Errorf("clk first connection: got %v", clk.Conns[0])
	}
}

func TestNetOrderPreserved(t *testing.T) {
	d := mustParse(t, sampleDEF)
	if d.Nets[0].Name != "net_a" || d.Nets[1].Name != "clk" {
		t.Errorf("Net document order not preserved: %s, %s", d.Nets[0].Name, d.Nets[1].Name)
	}
}

func TestMultiLineNetRecord(t *testing.T) {
	input := `NETS 1 ;
- long_net
  ( u1 Y )
  ( u2 A ) ( u3 A )
  + USE SIGNAL
  + WEIGHT 2 ;
END NETS
`
	d := mustParse(t, input)
	net, ok := d.Net("long_net")
	if !ok {
		t.Fatal("long_net not found")
	}
	if len(net.Conns) != 3 {
		t.Fatalf("Expected 3 connections, got %d", len(net.Conns))
	}
}

func TestImplicitRecordClose(t *testing.T) {
	// First record never sees its terminator; the next dash line must
	// close it instead of swallowing it.
	input := `NETS 2 ;
- net_a ( u1 Y ) ( u2 A )
- net_b ( u3 Y ) ( u4 A ) ;
END NETS
`
	d := mustParse(t, input)
	if len(d.Nets) != 2 {
		t.Fatalf("Expected 2 nets, got %d", len(d.Nets))
	}
	if _, ok := d.Net("net_a"); !ok {
		t.Error("Unterminated net_a was dropped")
	}
	if _, ok := d.Net("net_b"); !ok {
		t.Error("net_b was dropped")
	}
}

func TestMissingSections(t *testing.T) {
	d := mustParse(t, "VERSION 5.8 ;\nDESIGN top ;\nEND DESIGN\n")

	if len(d.Components) != 0 {
		t.Errorf("Expected no components, got %d", len(d.Components))
	}
	if len(d.Nets) != 0 {
		t.Errorf("Expected no nets, got %d", len(d.Nets))
	}
	if !diag.HasCode(d.Diagnostics, diag.CodeMissingSection) {
		t.Error("Expected MissingSection diagnostics")
	}
	if len(d.Diagnostics) != 2 {
		t.Errorf("Expected 2 diagnostics (components and nets), got %d", len(d.Diagnostics))
	}
}

func TestMalformedRecordSkipped(t *testing.T) {
	input := `COMPONENTS 3 ;
- u1 INVx1 ;
- ;
- u3 DFFx1 ;
END COMPONENTS
`
	d := mustParse(t, input)
	if len(d.Components) != 2 {
		t.Fatalf("Expected 2 components after skipping malformed record, got %d", len(d.Components))
	}
	if !diag.HasCode(d.Diagnostics, diag.CodeMalformedRecord) {
		t.Error("Expected MalformedRecord diagnostic")
	}
}

func TestZeroConnectionNetDiscarded(t *testing.T) {
	input := `NETS 2 ;
- floating + USE SIGNAL ;
- net_a ( u1 Y ) ( u2 A ) ;
END NETS
`
	d := mustParse(t, input)
	if len(d.Nets) != 1 {
		t.Fatalf("Expected 1 net, got %d", len(d.Nets))
	}
	if _, ok := d.Net("floating"); ok {
		t.Error("Connection-free net should be discarded")
	}
}

func TestSpecialnetsNotMistakenForNets(t *testing.T) {
	input := `SPECIALNETS 1 ;
- VDD ( u1 VDD ) + USE POWER ;
END SPECIALNETS

NETS 1 ;
- net_a ( u1 Y ) ( u2 A ) ;
END NETS
`
	d := mustParse(t, input)
	if len(d.Nets) != 1 {
		t.Fatalf("Expected 1 net, got %d", len(d.Nets))
	}
	if _, ok := d.Net("VDD"); ok {
		t.Error("SPECIALNETS record leaked into the net extraction")
	}
}

// Every record matching the expected shape appears exactly once in the
// extraction, and nothing else does.
func TestComponentProjection(t *testing.T) {
	var b strings.Builder
	b.WriteString("COMPONENTS 50 ;\n")
	instances := []string{}
	for _, row := range []struct{ inst, typ string }{
		{"core/u_alu/add1", "ADDHx2"},
		{"core/u_alu/add2", "ADDHx4"},
		{"pad_ring/in0", "IBUFx8"},
		{"u_top", "NAND2x1"},
	} {
		b.WriteString("- " + row.inst + " " + row.typ + " + PLACED ( 0 0 ) N ;\n")
		instances = append(instances, row.inst)
	}
	b.WriteString("END COMPONENTS\n")

	d := mustParse(t, b.String())
	if len(d.Components) != len(instances) {
		t.Fatalf("Expected %d components, got %d", len(instances), len(d.Components))
	}
	for _, inst := range instances {
		if _, ok := d.Components[inst]; !ok {
			t.Errorf("Instance %s missing from extraction", inst)
		}
	}
}

func TestExtractionDeterministic(t *testing.T) {
	d1 := mustParse(t, sampleDEF)
	d2 := mustParse(t, sampleDEF)

	if len(d1.Nets) != len(d2.Nets) {
		t.Fatal("Net counts differ between runs")
	}
	for i := range d1.Nets {
		if d1.Nets[i].Name != d2.Nets[i].Name {
			t.Errorf("Net order differs at %d: %s vs %s", i, d1.Nets[i].Name, d2.Nets[i].Name)
		}
	}
}
