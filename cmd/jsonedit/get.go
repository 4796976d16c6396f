package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonedit/jsonedit"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, rawPath := args[0], args[1]
			path, err := jsonedit.ParsePath(normalizePathArg(rawPath))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			root, err := jsonedit.ParseValue(data)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			v, ok := jsonedit.Read(root, path)
			if !ok {
				return fmt.Errorf("%s: no value at %s", file, path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderValue(v))
			return nil
		},
	}
}

// normalizePathArg lets users omit the leading '$'.
func normalizePathArg(p string) string {
	if p == "" || p[0] != '$' {
		return "$" + p
	}
	return p
}
