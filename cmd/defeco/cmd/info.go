package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/edatools/defeco/pkg/def"
	"github.com/edatools/defeco/pkg/diag"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.def>",
	Short: "Show what defeco extracts from a DEF file",
	Long: `Parse one DEF file and summarize the extracted structure: component and
net counts, cell-type usage, and any diagnostics the extraction raised.
Useful for checking a file before running a diff against it.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := def.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	fmt.Printf("File: %s\n", args[0])
	fmt.Println()
	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", len(d.Components))
	fmt.Printf("  Nets: %d\n", len(d.Nets))
	conns := 0
	for _, net := range d.Nets {
		conns += len(net.Conns)
	}
	fmt.Printf("  Connections: %d\n", conns)
	fmt.Println()

	// Cell-type usage, most used first
	byType := make(map[string]int)
	for _, cellType := range d.Components {
		byType[cellType]++
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if byType[types[i]] != byType[types[j]] {
			return byType[types[i]] > byType[types[j]]
		}
		return types[i] < types[j]
	})
	if len(types) > 0 {
		fmt.Println("Cell types:")
		for _, t := range types {
			fmt.Printf("  %-24s %d\n", t, byType[t])
		}
		fmt.Println()
	}

	if len(d.Diagnostics) > 0 {
		fmt.Printf("Diagnostics (%d):\n", len(d.Diagnostics))
		fmt.Fprintln(os.Stdout, diag.Join(d.Diagnostics))
	}
	return nil
}
