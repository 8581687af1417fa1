package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/emilminas/copycheck/internal/domain/overlap"
	"github.com/emilminas/copycheck/internal/ports"
)

// batchLimit bounds concurrent comparisons: each one is CPU-bound and
// independent, so a small fan-out is enough.
const batchLimit = 4

// BatchItem is the outcome of comparing the sample against one stored
// reference. Result is nil when that reference shares no qualifying run.
type BatchItem struct {
	Name   string
	Result *overlap.Result
}

// Batch compares the session's sample against every given reference.
// Comparisons are pure and independent, so they fan out concurrently.
// Items come back in the order of refs regardless of completion order.
func (s *Session) Batch(ctx context.Context, refs []*ports.Reference) ([]BatchItem, error) {
	items := make([]BatchItem, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := *s
			run.Reference = ref.Text
			res, err := run.Run()
			if err != nil {
				return err
			}
			items[i] = BatchItem{Name: ref.Name, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
