package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ppiankov/wbmodel/internal/cache"
	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/itemdoc"
	"github.com/ppiankov/wbmodel/internal/logger"
	"github.com/ppiankov/wbmodel/internal/revision"
	"github.com/ppiankov/wbmodel/internal/worker"
	"github.com/spf13/cobra"
)

// checkEntry is one line of `wbmodel check` output
type checkEntry struct {
	Path         string `json:"path" yaml:"path"`
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Hash         string `json:"hash,omitempty" yaml:"hash,omitempty"`
	PreviousHash string `json:"previous_hash,omitempty" yaml:"previous_hash,omitempty"`
	Changed      bool   `json:"changed" yaml:"changed"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		from   string
		forget bool
	)

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report which item documents changed since the last check",
		Long: `Check hashes each item document and compares it with the hash recorded by
the previous check of the same item. Changed hashes are recorded.

Items are identified by their id, or by document path when they have none.
Recorded hashes live in the cache directory; with the cache disabled every
document reports as changed.

Example:
  wbmodel check items/*.yaml
  wbmodel check --from items.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPaths(args, from)
			if err != nil {
				return err
			}

			store := revision.NewStore(newCache(a.cfg.Cache))
			results := worker.NewBatchHasher(itemdoc.Load, a.cfg.Concurrency.Workers).
				HashFiles(cmd.Context(), paths)

			entries := make([]checkEntry, len(results))
			failed := 0
			for i, r := range results {
				entries[i] = checkEntry{Path: r.Path}
				if r.Error != nil {
					failed++
					entries[i].Error = r.Error.Error()
					continue
				}

				id := r.Path
				if abs, err := filepath.Abs(r.Path); err == nil {
					id = abs
				}
				if !r.Item.ID().IsZero() {
					id = r.Item.ID().Serialization()
				}
				if forget {
					if err := store.Forget(id); err != nil {
						return err
					}
				}

				res, err := store.SaveIfChanged(cmd.Context(), id, r.Item)
				if err != nil {
					return errors.Wrapf(err, "check %s", r.Path)
				}
				entries[i].ID = res.ID
				entries[i].Hash = res.Hash
				entries[i].PreviousHash = res.PreviousHash
				entries[i].Changed = res.Changed
			}

			if err := writeCheckEntries(cmd, a.cfg.Output.Format, entries); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf("%d of %d documents could not be checked", failed, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "file listing document paths, one per line")
	cmd.Flags().BoolVar(&forget, "forget", false, "discard recorded hashes before checking")
	return cmd
}

// newCache builds the revision cache described by cfg
func newCache(cfg config.CacheConfig) cache.Cache {
	memoryTTL := cfg.MemoryTTL
	if memoryTTL == 0 {
		memoryTTL = cache.NoExpiration
	}
	if !cfg.Enabled {
		logger.Logger.Debugw("cache disabled, revision hashes are kept in memory only")
		return cache.NewMemoryCache(memoryTTL, 10*time.Minute)
	}

	diskTTL := cfg.DiskTTL
	if diskTTL == 0 {
		diskTTL = cache.NoExpiration
	}
	return cache.NewDefaultLayeredCache(memoryTTL, cfg.Dir, diskTTL)
}

func writeCheckEntries(cmd *cobra.Command, format string, entries []checkEntry) error {
	if format != config.FormatText {
		return writeFormatted(cmd.OutOrStdout(), format, entries)
	}
	for _, e := range entries {
		switch {
		case e.Error != "":
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", e.Path, e.Error)
		case e.Changed:
			fmt.Fprintf(cmd.OutOrStdout(), "changed    %s  %s\n", e.ID, e.Path)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "unchanged  %s  %s\n", e.ID, e.Path)
		}
	}
	return nil
}
