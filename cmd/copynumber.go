package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var distributeLinks bool

var copyNumberCmd = &cobra.Command{
	Use:   "copynumber <file> <single-copy-coverage>",
	Short: "Compute each segment's copy number from its coverage, then multiply segments to match",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		coverage, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalf("single-copy-coverage must be a number: %v", err)
		}
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			log.Fatalf("reading %s: %v", args[0], err)
		}
		if err := g.ComputeCopyNumbers(c.Edit.CountTag, coverage); err != nil {
			log.Fatalf("computing copy numbers: %v", err)
		}
		if err := g.ApplyCopyNumbers(distributeLinks); err != nil {
			log.Fatalf("applying copy numbers: %v", err)
		}
		fmt.Print(g.ToS())
	},
}

func init() {
	copyNumberCmd.Flags().BoolVar(&distributeLinks, "distribute-links", false, "partition links among copies instead of duplicating them")
	rootCmd.AddCommand(copyNumberCmd)
}
