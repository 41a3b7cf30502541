package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/tree"
)

var statsTips bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize the structure of a tree",
	Long: `Report node, branch and tip counts for a tree, along with its
topological centroid.

Examples:
  phylo stats tree.nwk
  phylo stats --tips tree.nwk`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTree(args)
		if err != nil {
			return err
		}
		fmt.Printf("nodes:    %d\n", t.CountNodes())
		fmt.Printf("branches: %d\n", t.CountBranches())
		fmt.Printf("tips:     %d\n", len(t.Tips()))
		fmt.Printf("rooted:   %v\n", t.Root() != nil)
		fmt.Printf("centroid: %s\n", nodeName(t.Centroid()))
		if statsTips {
			for _, tip := range t.Tips() {
				fmt.Println(nodeName(tip))
			}
		}
		return nil
	},
}

func nodeName(n *tree.Node) string {
	if n == nil {
		return "(none)"
	}
	if title, ok := n.Title(); ok {
		return title
	}
	return "(unnamed)"
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsTips, "tips", false,
		"also list the tip names")
}
