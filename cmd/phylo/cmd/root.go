package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/tree"
)

var (
	noAnnotations   bool
	noSupportValues bool
)

var rootCmd = &cobra.Command{
	Use:   "phylo",
	Short: "Inspect and rewrite phylogenetic trees in Newick format",
	Long: `phylo reads phylogenetic trees in Newick format and can reformat,
validate and summarize them.

Every command reads a single tree, optionally semicolon-terminated, from
the named file, or from standard input when no file is given.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noAnnotations, "no-annotations", false,
		"do not parse [&key=value,...] annotation blocks")
	rootCmd.PersistentFlags().BoolVar(&noSupportValues, "no-support-values", false,
		"treat numeric internal labels as names, not support values")
}

// readTree parses one Newick tree from the named file, or from standard
// input when args is empty.
func readTree(args []string) (*tree.Tree, error) {
	var src io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	r := newick.NewReader(src)
	r.NodeAnnotations = !noAnnotations
	r.SupportValues = !noSupportValues
	return r.Read()
}
