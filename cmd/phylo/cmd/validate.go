package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a tree parses and is structurally sound",
	Long: `Parse a Newick tree and check its structural invariants: a known
root, branches joining known nodes, exactly one fewer branch than nodes,
and a connected graph.

The exit status is nonzero if the tree fails to parse or to validate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTree(args)
		if err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return err
		}
		fmt.Printf("OK: %d nodes, %d branches, %d tips\n",
			t.CountNodes(), t.CountBranches(), len(t.Tips()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
