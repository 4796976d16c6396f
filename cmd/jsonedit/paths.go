package main

import (
	"fmt"
	"io"
	"os"

	gyaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/jsonedit/jsonedit"
)

func newPathsCmd() *cobra.Command {
	var leavesOnly bool
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "List every addressable path in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			root, err := jsonedit.ParseValue(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			printPaths(cmd.OutOrStdout(), root, nil, leavesOnly)
			return nil
		},
	}
	cmd.Flags().BoolVar(&leavesOnly, "leaves", false, "only print scalar leaves")
	return cmd
}

func printPaths(w io.Writer, v interface{}, path jsonedit.Path, leavesOnly bool) {
	t := jsonedit.TypeOf(v)
	if t.IsLeaf() || !leavesOnly {
		fmt.Fprintf(w, "%s\t%s\n", fieldColor(path.String()), t)
	}
	switch c := v.(type) {
	case gyaml.MapSlice:
		for _, it := range c {
			key := fmt.Sprint(it.Key)
			printPaths(w, it.Value, append(path, jsonedit.Key(key)), leavesOnly)
		}
	case []interface{}:
		for i, e := range c {
			printPaths(w, e, append(path, jsonedit.Index(i)), leavesOnly)
		}
	}
}
