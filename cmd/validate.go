package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a GFA file with field validation enabled and report errors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		opts := gfa.ParseOptions{
			Version:  gfa.Version(c.Version),
			Validate: true,
		}
		g, err := gfa.ReadFile(args[0], opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("ok: %d lines, version %s\n", len(g.Lines()), versionLabel(g.Version()))
	},
}

func versionLabel(v gfa.Version) string {
	if v == gfa.VersionUnknown {
		return "unknown"
	}
	return string(v)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
