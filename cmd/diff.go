package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a.gfa> <b.gfa>",
	Short: "Exit 0 iff two GFA files parse to structurally equal graphs",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: gfapy diff <a.gfa> <b.gfa>")
			os.Exit(2)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.New()
		opts := gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate}
		a, err := gfa.ReadFile(args[0], opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			os.Exit(1)
		}
		b, err := gfa.ReadFile(args[1], opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[1], err)
			os.Exit(1)
		}
		if gfa.Equal(a, b) {
			os.Exit(0)
		}
		fmt.Println("graphs differ")
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
