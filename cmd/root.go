// Package cmd is for command line interactions with the gfapy application
package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gfapy",
	Short: `Parse, validate, edit, and query Graphical Fragment Assembly (GFA) files.

"gfapy" reads GFA1 and GFA2 text files into an in-memory assembly graph and
exposes subcommands for validating, renaming, multiplying, pruning, and
merging segments, plus tools for diffing and summarizing graphs.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("version-tag", "", "pin parsing to gfa1 or gfa2 (default: auto-detect)")
	rootCmd.PersistentFlags().Bool("validate", true, "validate fields against their datatypes while parsing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log extra detail to stderr")

	viper.BindPFlag("version", rootCmd.PersistentFlags().Lookup("version-tag"))
	viper.BindPFlag("validate", rootCmd.PersistentFlags().Lookup("validate"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig wires Viper to the GFAPY_* environment namespace, the way the
// teacher config layer reads settings without a config file.
func initConfig() {
	viper.SetEnvPrefix("gfapy")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
