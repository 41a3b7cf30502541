package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
)

var (
	distanceFormat string
	supportFormat  string
	noDistances    bool
	noSupport      bool
	quoteAll       bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite a tree in a consistent layout",
	Long: `Rewrite a Newick tree with normalized whitespace, consistent number
formatting and a trailing semicolon.

Examples:
  phylo fmt tree.nwk
  phylo fmt --distance-format %.6f tree.nwk
  phylo fmt --no-support --no-distances tree.nwk`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTree(args)
		if err != nil {
			return err
		}
		w := newick.NewWriter(os.Stdout)
		w.DistanceFormat = distanceFormat
		w.SupportFormat = supportFormat
		w.IncludeDistances = !noDistances
		w.IncludeSupport = !noSupport
		w.QuoteAllNames = quoteAll
		if err := w.Write(t); err != nil {
			return err
		}
		fmt.Println(";")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().StringVar(&distanceFormat, "distance-format", "%.3f",
		"printf format for branch lengths")
	fmtCmd.Flags().StringVar(&supportFormat, "support-format", "%.2f",
		"printf format for support values")
	fmtCmd.Flags().BoolVar(&noDistances, "no-distances", false,
		"omit branch lengths")
	fmtCmd.Flags().BoolVar(&noSupport, "no-support", false,
		"omit support values")
	fmtCmd.Flags().BoolVar(&quoteAll, "quote-all", false,
		"single-quote every name")
}
