package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var pruneCmd = &cobra.Command{
	Use:   "prune <file> <threshold>",
	Short: "Delete every segment whose count-tag coverage falls below threshold",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		threshold, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalf("threshold must be a number: %v", err)
		}
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			log.Fatalf("reading %s: %v", args[0], err)
		}
		condemned, err := g.Prune(c.Edit.CountTag, threshold)
		if err != nil {
			log.Fatalf("prune: %v", err)
		}
		if c.Verbose {
			fmt.Fprintf(os.Stderr, "pruned %d segment(s): %v\n", len(condemned), condemned)
		}
		fmt.Print(g.ToS())
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
