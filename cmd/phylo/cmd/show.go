package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a tree as an indented outline",
	Long: `Print a tree one node per line, indented by depth, with branch
lengths in parentheses. Unnamed nodes print as N/A.

Example:
  phylo show tree.nwk`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTree(args)
		if err != nil {
			return err
		}
		fmt.Print(t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
