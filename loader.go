package capgains

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
)

// StatementDecoder reads the transactions of a single statement file.
type StatementDecoder interface {
	// Match returns true if the file name is a statement this decoder can read.
	Match(name string) bool
	// DecodeFile returns the transactions of the statement in chronological order.
	DecodeFile(path string) ([]Transaction, error)
}

// LoadStatements decodes every statement in dir and returns the merged feed.
//
// Files are decoded concurrently, but the feed order only depends on their content.
// Any decoding error aborts the load.
func LoadStatements(ctx context.Context, dir string, dec StatementDecoder) ([]Transaction, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list statements in %q: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !dec.Match(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)

	lists := make([][]Transaction, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			txs, err := dec.DecodeFile(path)
			if err != nil {
				return fmt.Errorf("could not decode statement %q: %w", path, err)
			}
			lists[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return MergeStatements(lists), nil
}

// MergeStatements merges per-statement lists into a single chronological feed.
//
// Lists are first ordered by their last process date and concatenated, then the whole feed is
// stable sorted by process date so that the order of same-day transactions is kept.
// Seq is set to the position in the feed.
func MergeStatements(lists [][]Transaction) []Transaction {
	nonEmpty := make([][]Transaction, 0, len(lists))
	for _, l := range lists {
		if len(l) > 0 {
			nonEmpty = append(nonEmpty, l)
		}
	}
	slices.SortStableFunc(nonEmpty, func(a, b []Transaction) int {
		return a[len(a)-1].ProcessDate.Compare(b[len(b)-1].ProcessDate)
	})

	var feed []Transaction
	for _, l := range nonEmpty {
		feed = append(feed, l...)
	}
	slices.SortStableFunc(feed, func(a, b Transaction) int {
		return a.ProcessDate.Compare(b.ProcessDate)
	})
	for i := range feed {
		feed[i].Seq = i
	}
	return feed
}
