package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	rulesFile string
)

var rootCmd = &cobra.Command{
	Use:   "defeco",
	Short: "defeco - ECO changelist extraction from DEF snapshots",
	Long: `defeco compares two snapshots of a placed design (DEF format) and derives
the ECO changelist that turns the original into the modified one:

  - size_cell commands for drive-strength changes
  - insert_buffer commands for repeaters spliced into existing nets,
    ordered so that a buffer feeding another buffer is created first

Examples:
  defeco diff top_orig.def top_repair.def          # print the changelist
  defeco diff top_orig.def top_repair.def -o eco.txt
  defeco info top_orig.def                         # extraction summary`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "YAML file overriding cell-library naming conventions")
}
