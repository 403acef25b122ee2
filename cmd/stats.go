package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ujjwalsh/gfapy/config"
	"github.com/ujjwalsh/gfapy/gfa"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print segment, link, and path counts and the number of connected components",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		g, err := gfa.ReadFile(args[0], gfa.ParseOptions{Version: gfa.Version(c.Version), Validate: c.Validate})
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", args[0], err)
			os.Exit(1)
		}

		var links, containments, paths int
		for _, l := range g.Lines() {
			switch l.Type() {
			case gfa.RecordLink, gfa.RecordEdge:
				links++
			case gfa.RecordContainment:
				containments++
			case gfa.RecordPath, gfa.RecordOrderedGroup, gfa.RecordUnorderedGroup:
				paths++
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintf(w, "version\t%s\n", versionLabel(g.Version()))
		fmt.Fprintf(w, "segments\t%d\n", len(g.Segments()))
		fmt.Fprintf(w, "links\t%d\n", links)
		fmt.Fprintf(w, "containments\t%d\n", containments)
		fmt.Fprintf(w, "paths/groups\t%d\n", paths)
		fmt.Fprintf(w, "connected components\t%d\n", len(g.ConnectedComponents()))
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
