package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var multiplyCmd = &cobra.Command{
	Use:   "multiply <file> <segment> <factor>",
	Short: "Multiply a segment into factor copies, dividing its count tags and duplicating its links",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		factor, err := strconv.Atoi(args[2])
		if err != nil {
			log.Fatalf("factor must be an integer: %v", err)
		}
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			log.Fatalf("reading %s: %v", args[0], err)
		}
		if _, err := g.Multiply(args[1], factor, gfa.MultiplyOptions{}); err != nil {
			log.Fatalf("multiply %s by %d: %v", args[1], factor, err)
		}
		fmt.Print(g.ToS())
	},
}

func init() {
	rootCmd.AddCommand(multiplyCmd)
}
