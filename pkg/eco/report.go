package eco

import (
	"fmt"
	"io"
	"strings"
)

// WriteCommands renders the bare changelist: one command per line,
// sizing first, then buffering in dependency order, then the total.
// This is the machine-facing form a downstream ECO tool consumes.
func WriteCommands(w io.Writer, cl Changelist) error {
	for _, cmd := range cl.Resizes {
		if _, err := fmt.Fprintln(w, cmd.String()); err != nil {
			return err
		}
	}
	for _, cmd := range cl.Insertions {
		if _, err := fmt.Fprintln(w, cmd.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total ECO Changes: %d\n", cl.Total())
	return err
}

// WriteReport renders the human-facing changelist with numbered commands
// and section rules.
func WriteReport(w io.Writer, cl Changelist) error {
	var b strings.Builder

	b.WriteString("ECO CHANGELIST\n")
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	fmt.Fprintf(&b, "Sizing Commands (%d):\n", len(cl.Resizes))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	if len(cl.Resizes) == 0 {
		b.WriteString("   No sizing changes found.\n")
	}
	for i, cmd := range cl.Resizes {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, cmd.String())
	}

	fmt.Fprintf(&b, "\nBuffering Commands (%d):\n", len(cl.Insertions))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	if len(cl.Insertions) == 0 {
		b.WriteString("   No buffer insertions found.\n")
	}
	for i, cmd := range cl.Insertions {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, cmd.String())
	}

	if len(cl.Stuck) > 0 {
		fmt.Fprintf(&b, "\nNote: lexical fallback order applied to: %s\n", strings.Join(cl.Stuck, ", "))
	}

	fmt.Fprintf(&b, "\nTotal ECO Changes: %d\n", cl.Total())

	_, err := io.WriteString(w, b.String())
	return err
}
