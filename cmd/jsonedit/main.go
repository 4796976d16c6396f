// Command jsonedit inspects and edits nodes of JSON documents by path.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "jsonedit",
	Short: "Edit nodes of a JSON document by path",
	Long: `jsonedit reads and writes values inside JSON documents addressed by
bracket-notation paths ($["users"][0]["name"]). Writes go through the same
merge/replace engine a host editor would use: object drafts shallow-merge
into existing objects, everything else replaces the subtree, and missing
intermediate containers are created on the way down.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newPathsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
