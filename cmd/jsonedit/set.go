package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonedit/jsonedit"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Commit a draft value at a path",
		Long: `set runs the full edit protocol: VALUE is parsed as JSON; if both it and
the existing value at PATH are objects, its keys are shallow-merged into the
existing object, otherwise the subtree is replaced. Unparseable VALUEs commit
as raw strings when the target node has no nested containers. Missing
intermediate containers along PATH are created.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, rawPath, draft := args[0], args[1], args[2]
			path, err := jsonedit.ParsePath(normalizePathArg(rawPath))
			if err != nil {
				return err
			}

			store := &fileStore{path: file}
			node, err := selectNode(store, path)
			if err != nil {
				return err
			}

			engine := jsonedit.NewEngine(store)
			engine.Select(node)
			engine.BeginEdit()
			if err := engine.AttemptSave(draft); err != nil {
				return err
			}

			// Echo the committed value back for confirmation.
			text, err := store.CurrentText()
			if err != nil {
				return err
			}
			root, err := jsonedit.ParseValue([]byte(text))
			if err != nil {
				return err
			}
			if v, ok := jsonedit.Read(root, path); ok {
				fmt.Fprintln(cmd.OutOrStdout(), renderValue(v))
			}
			return nil
		},
	}
}

// selectNode builds the SelectedNode a host view would hand the engine: the
// path plus the row projection of whatever currently lives there. A missing
// target projects as a bare null leaf so the raw-string fallback applies.
func selectNode(store *fileStore, path jsonedit.Path) (*jsonedit.SelectedNode, error) {
	text, err := store.CurrentText()
	if err != nil {
		return nil, err
	}
	root, err := jsonedit.ParseValue([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", store.path, err)
	}
	cur, _ := jsonedit.Read(root, path)
	return &jsonedit.SelectedNode{Path: path, Rows: jsonedit.RowsForValue(cur)}, nil
}
