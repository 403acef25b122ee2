package cmd

import (
	"testing"

	"github.com/ujjwalsh/gfapy/gfa"
)

func Test_versionLabel(t *testing.T) {
	tests := []struct {
		name string
		in   gfa.Version
		want string
	}{
		{"unknown", gfa.VersionUnknown, "unknown"},
		{"gfa1", gfa.GFA1, "gfa1"},
		{"gfa2", gfa.GFA2, "gfa2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionLabel(tt.in); got != tt.want {
				t.Errorf("versionLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_rootCmdRegistersSubcommands(t *testing.T) {
	want := []string{"validate", "rename", "multiply", "prune", "copynumber", "mergelinear", "diff", "stats"}
	got := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("rootCmd is missing subcommand %q", name)
		}
	}
}
