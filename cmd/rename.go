package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var renameCmd = &cobra.Command{
	Use:   "rename <file> <old> <new>",
	Short: "Rename a segment, cascading the change to every reference, and print the result",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			log.Fatalf("reading %s: %v", args[0], err)
		}
		if err := g.Rename(args[1], args[2]); err != nil {
			log.Fatalf("rename %s -> %s: %v", args[1], args[2], err)
		}
		fmt.Print(g.ToS())
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
