// Package cli wires the seoscan commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seoscan",
	Short: "Extract SEO-relevant text from UI component files",
	Long: `seoscan walks a project's JSX/TSX component files, extracts the
human-readable text they render and filters out structural noise
(CSS utility classes, SVG path data, measurements, framework
attribute names). The result is a per-file metadata record and a
project-wide collection used to generate SEO meta tags.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
