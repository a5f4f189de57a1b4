package worker

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/logger"
)

// Loader turns a document path into an item
type Loader func(path string) (*item.Item, error)

// HashJob loads one item document and hashes it
type HashJob struct {
	Path   string
	Loader Loader
}

// Execute loads and hashes the document
func (j *HashJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &HashResult{Path: j.Path, Error: err}
	}
	it, err := j.Loader(j.Path)
	if err != nil {
		return &HashResult{Path: j.Path, Error: err}
	}
	return &HashResult{
		Path: j.Path,
		Item: it,
		Hash: it.Hash(),
	}
}

// HashResult is the outcome of a HashJob
type HashResult struct {
	Path  string
	Item  *item.Item
	Hash  string
	Error error
}

// GetError returns the error from the hash result
func (r *HashResult) GetError() error {
	return r.Error
}

// BatchHasher hashes many item documents concurrently
type BatchHasher struct {
	loader      Loader
	concurrency int
}

// NewBatchHasher creates a batch hasher using loader for every path
func NewBatchHasher(loader Loader, concurrency int) *BatchHasher {
	return &BatchHasher{
		loader:      loader,
		concurrency: concurrency,
	}
}

// HashFiles hashes paths and returns one result per path, in input order
func (b *BatchHasher) HashFiles(ctx context.Context, paths []string) []*HashResult {
	if len(paths) == 0 {
		return []*HashResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	slots := make([]int, len(paths))
	for i, path := range paths {
		slots[i] = pool.Submit(&HashJob{Path: path, Loader: b.loader})
	}

	results := pool.Wait()

	out := make([]*HashResult, len(paths))
	for i, path := range paths {
		r, ok := resultAt(results, slots[i]).(*HashResult)
		if !ok {
			r = &HashResult{Path: path, Error: skipped(ctx, path)}
		}
		out[i] = r
	}

	failed := 0
	for _, r := range out {
		if r.Error != nil {
			failed++
		}
	}
	logger.Named("worker").Debugw("batch hashed", "documents", len(paths), "failed", failed)
	return out
}

func skipped(ctx context.Context, path string) error {
	if cause := context.Cause(ctx); cause != nil {
		return errors.Wrapf(cause, "hash %s skipped", path)
	}
	return errors.Newf("hash %s skipped", path)
}

func resultAt(results []Result, i int) Result {
	if i >= 0 && i < len(results) {
		return results[i]
	}
	return nil
}

// ReadPathsFromFile reads document paths from a file, one per line.
// Blank lines and # comments are skipped, duplicates dropped.
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "open path list")
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan path list")
	}

	return paths, nil
}
