package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/edatools/defeco/pkg/def"
	"github.com/edatools/defeco/pkg/diag"
	"github.com/edatools/defeco/pkg/eco"
)

var (
	diffOutput string
	diffPlain  bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <original.def> <modified.def>",
	Short: "Derive the ECO changelist between two DEF snapshots",
	Long: `Compare an original and a modified DEF file and emit the ECO changelist:
size_cell commands for resized instances and dependency-ordered
insert_buffer commands for newly inserted repeaters.

By default a human-readable report is printed; --plain emits only the
bare commands for consumption by downstream ECO tools.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "", "also write the changelist to this file")
	diffCmd.Flags().BoolVar(&diffPlain, "plain", false, "emit bare commands instead of the report")
}

func runDiff(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	orig, err := def.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing original: %w", err)
	}
	mod, err := def.ParseFile(args[1])
	if err != nil {
		return fmt.Errorf("error parsing modified: %w", err)
	}

	cl := eco.NewAnalyzer(rules).Analyze(orig, mod)

	if verbose && len(cl.Diagnostics) > 0 {
		fmt.Fprintln(os.Stderr, diag.Join(cl.Diagnostics))
	}

	if err := writeChangelist(os.Stdout, cl); err != nil {
		return err
	}
	if diffOutput != "" {
		f, err := os.Create(diffOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		if err := writeChangelist(f, cl); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
	}
	return nil
}

func writeChangelist(w io.Writer, cl eco.Changelist) error {
	if diffPlain {
		return eco.WriteCommands(w, cl)
	}
	return eco.WriteReport(w, cl)
}

func loadRules() (*eco.Ruleset, error) {
	rules := eco.DefaultRules()
	if rulesFile != "" {
		var err error
		rules, err = eco.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
	}
	rs, err := rules.Compile()
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return rs, nil
}
