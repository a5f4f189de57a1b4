package cli

import (
	"fmt"

	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/itemdoc"
	"github.com/ppiankov/wbmodel/internal/worker"
	"github.com/spf13/cobra"
)

// hashEntry is one line of `wbmodel hash` output
type hashEntry struct {
	Path  string `json:"path" yaml:"path"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Hash  string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newHashCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Print the content hash of item documents",
		Long: `Hash loads each YAML item document and prints its content hash.

The hash covers labels, descriptions, aliases, site links and statements.
It does not cover the item id, so two documents with the same content hash
equally. Documents are processed concurrently.

Example:
  wbmodel hash q42.yaml q64.yaml
  wbmodel hash --from items.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPaths(args, from)
			if err != nil {
				return err
			}

			hasher := worker.NewBatchHasher(itemdoc.Load, a.cfg.Concurrency.Workers)
			results := hasher.HashFiles(cmd.Context(), paths)

			entries := make([]hashEntry, len(results))
			failed := 0
			for i, r := range results {
				entries[i] = hashEntry{Path: r.Path}
				if r.Error != nil {
					failed++
					entries[i].Error = r.Error.Error()
					continue
				}
				entries[i].Hash = r.Hash
				if !r.Item.ID().IsZero() {
					entries[i].ID = r.Item.ID().Serialization()
				}
			}

			if err := writeHashEntries(cmd, a.cfg.Output.Format, entries); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf("%d of %d documents could not be hashed", failed, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "file listing document paths, one per line")
	return cmd
}

func writeHashEntries(cmd *cobra.Command, format string, entries []hashEntry) error {
	if format != config.FormatText {
		return writeFormatted(cmd.OutOrStdout(), format, entries)
	}
	for _, e := range entries {
		if e.Error != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", e.Path, e.Error)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Hash, e.Path)
	}
	return nil
}

// collectPaths merges positional paths with those listed in from
func collectPaths(args []string, from string) ([]string, error) {
	paths := append([]string(nil), args...)
	if from != "" {
		listed, err := worker.ReadPathsFromFile(from)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", from)
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return nil, errors.WithHint(
			errors.InvalidArgumentf("no item documents given"),
			"pass document paths as arguments or use --from")
	}
	return paths, nil
}
