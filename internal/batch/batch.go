// Package batch segments word lists in parallel.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/syllabify/internal/syllable"
	"github.com/jonathan/syllabify/internal/types"
)

// Result segments a single entry.
func Result(seg *syllable.Segmenter, entry types.WordEntry) types.SegmentResult {
	a := seg.Analyze(entry.Word, entry.Phonetic)
	return types.SegmentResult{
		Word:      a.Word,
		Phonetic:  entry.Phonetic,
		Syllables: a.Result,
		Parts:     a.Syllables,
		Segmented: a.Segmented(),
	}
}

// Segment segments entries using at most workers goroutines (GOMAXPROCS when
// workers <= 0). Results are returned in input order. If ctx is cancelled
// before every entry has been processed, Segment returns ctx.Err().
func Segment(ctx context.Context, seg *syllable.Segmenter, entries []types.WordEntry, workers int) ([]types.SegmentResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]types.SegmentResult, len(entries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range entries {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = Result(seg, entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
