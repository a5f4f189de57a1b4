package cli

import (
	"encoding/json"
	"os"

	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/itemdoc"
	"github.com/ppiankov/wbmodel/internal/logger"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	var (
		jsonPath string
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show the field-by-field difference between two item revisions",
		Long: `Diff compares two YAML item documents and reports added, removed and
changed labels, descriptions, aliases, site links and statements.
Statements are matched by id, or by content when they have none.

Order is not compared: aliases are diffed as sets and statements by id.
Two revisions that differ only in alias or statement order therefore show
no changes here, while their content hashes (see hash and check) differ.

Example:
  wbmodel diff q42-old.yaml q42-new.yaml
  wbmodel diff q42-old.yaml q42-new.yaml --format yaml
  wbmodel diff q42-old.yaml q42-new.yaml --json q42.diff.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := itemdoc.Load(args[0])
			if err != nil {
				return err
			}
			to, err := itemdoc.Load(args[1])
			if err != nil {
				return err
			}

			d, err := item.NewDiffer().DiffItems(from, to)
			if err != nil {
				return errors.Wrap(err, "diff items")
			}
			view := newDiffView(from, to, d)
			logger.Logger.Debugw("items diffed", "old", args[0], "new", args[1], "empty", view.Empty)

			if jsonPath != "" {
				if err := writeJSONFile(jsonPath, view); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatText {
				err = writeDiffText(out, view)
			} else {
				err = writeFormatted(out, a.cfg.Output.Format, view)
			}
			if err != nil {
				return errors.Wrap(err, "render diff")
			}

			if exitCode && !view.Empty {
				return errItemsDiffer
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "also write the diff as JSON to this file")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "fail when the items differ")
	return cmd
}

var errItemsDiffer = errors.New("items differ")

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal diff")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
