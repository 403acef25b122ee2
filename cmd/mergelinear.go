package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var mergeLinearCmd = &cobra.Command{
	Use:   "mergelinear <file>",
	Short: "Merge every maximal linear path in the graph and print the result to stdout",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "usage: gfapy mergelinear <file>")
			os.Exit(2)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.New()
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		for _, path := range g.LinearPaths() {
			if _, err := g.MergeLinearPath(path, gfa.MergeOptions{}); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
		fmt.Print(g.ToS())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeLinearCmd)
}
