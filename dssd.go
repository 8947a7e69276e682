/*
Package dssd implements Diverse Subgroup Set Discovery: a beam search over
conjunctions of boolean attribute conditions that retains the best-scoring
subgroup descriptions under an injected quality measure, then simplifies,
deduplicates and final-selects them into a small diverse result set.

The search is a heuristic: it widens descriptions depth by depth, carrying
a fixed-width beam of the most promising candidates, and makes no claim of
global optimality.
*/
package dssd

import (
	"context"
	"fmt"
	"sync"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

/*
Params holds the search knobs that are not part of the j/k/mincov/maxdepth
quartet. All fields are read-only during a search.
*/
type Params struct {
	// BeamWidth is the number of candidates retained per depth to
	// seed the next depth's refinements. It must be positive.
	BeamWidth int
	// Workers is the number of goroutines scoring candidates within
	// a depth. Zero or one keeps scoring sequential. Any value yields
	// the same result: workers write into disjoint slots and the
	// results are merged in candidate order before any selection.
	Workers int
}

/*
Mine takes a context, a table of boolean attributes, a quality measure and
the search parameters, and runs the DSSD loop:

Starting from the beam [empty description], each depth from 1 to maxdepth
generates every refinement of every beam member meeting mincov, scores
every candidate with the measure, offers each (candidate, quality) pair to
a top-j tracker spanning the whole run, and selects the next beam as the
beamWidth best candidates. A depth producing no candidates yields an empty
beam and the remaining depths no-op; that is a fizzled search, not an
error, and whatever the tracker already holds is still post-processed.

After the depth loop every retained description is dominance-pruned,
duplicates are removed, and a final fresh-scored selection of width k
produces the result: an ordered list of at most k descriptions, best
first. The final scoring is independent of the quality bookkeeping done
during pruning, so their rankings can disagree; the search deliberately
keeps the two evaluations separate.

Mine returns a configuration error if j, k, mincov, maxdepth or
params.BeamWidth is not positive, and propagates any error returned by
the measure or by table queries. It holds no global state: concurrent
Mine calls over the same table are safe.
*/
func Mine(ctx context.Context, t *dataset.Table, m Measure, j, k, mincov, maxdepth int, params *Params) ([]subgroup.Description, error) {
	if err := validate(j, k, mincov, maxdepth, params); err != nil {
		return nil, err
	}
	retained := NewTopK(j)
	beam := []subgroup.Description{subgroup.New()}
	for depth := 1; depth <= maxdepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var candidates []subgroup.Description
		for _, b := range beam {
			refinements, err := Refinements(b, mincov, t)
			if err != nil {
				return nil, fmt.Errorf("mining at depth %d: %v", depth, err)
			}
			candidates = append(candidates, refinements...)
		}
		qualities, err := scoreAll(ctx, candidates, m, t, params.Workers)
		if err != nil {
			return nil, fmt.Errorf("mining at depth %d: %v", depth, err)
		}
		for i, c := range candidates {
			retained.Add(c, qualities[i])
		}
		beam = selectScored(candidates, qualities, params.BeamWidth)
	}
	pruned := make([]subgroup.Description, 0, retained.Len())
	for _, e := range retained.Entries() {
		d, err := Prune(ctx, e.Description, e.Quality, m, t)
		if err != nil {
			return nil, err
		}
		pruned = append(pruned, d)
	}
	pruned = Dedupe(pruned)
	result, err := SelectTop(ctx, pruned, m, t, k)
	if err != nil {
		return nil, fmt.Errorf("mining final selection: %v", err)
	}
	return result, nil
}

func validate(j, k, mincov, maxdepth int, params *Params) error {
	if j <= 0 {
		return fmt.Errorf("invalid configuration: j must be positive, got %d", j)
	}
	if k <= 0 {
		return fmt.Errorf("invalid configuration: k must be positive, got %d", k)
	}
	if mincov <= 0 {
		return fmt.Errorf("invalid configuration: mincov must be positive, got %d", mincov)
	}
	if maxdepth <= 0 {
		return fmt.Errorf("invalid configuration: maxdepth must be positive, got %d", maxdepth)
	}
	if params == nil {
		return fmt.Errorf("invalid configuration: params must not be nil")
	}
	if params.BeamWidth <= 0 {
		return fmt.Errorf("invalid configuration: beam width must be positive, got %d", params.BeamWidth)
	}
	if params.Workers < 0 {
		return fmt.Errorf("invalid configuration: workers must not be negative, got %d", params.Workers)
	}
	return nil
}

// scoreAll computes the quality of every candidate, one slot per
// candidate by index. Candidates are independent of one another, so with
// workers > 1 they are scored by goroutines over contiguous index ranges;
// the per-index layout keeps the merge deterministic regardless of worker
// scheduling, and the first error in candidate order wins.
func scoreAll(ctx context.Context, candidates []subgroup.Description, m Measure, t *dataset.Table, workers int) ([]float64, error) {
	qualities := make([]float64, len(candidates))
	if workers <= 1 || len(candidates) <= 1 {
		for i, c := range candidates {
			q, err := m.Quality(ctx, c, t)
			if err != nil {
				return nil, fmt.Errorf("scoring %s: %v", c, err)
			}
			qualities[i] = q
		}
		return qualities, nil
	}
	errs := make([]error, len(candidates))
	perWorker := (len(candidates) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * perWorker
		if start >= len(candidates) {
			break
		}
		end := start + perWorker
		if end > len(candidates) {
			end = len(candidates)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				q, err := m.Quality(ctx, candidates[i], t)
				if err != nil {
					errs[i] = err
					return
				}
				qualities[i] = q
			}
		}(start, end)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %v", candidates[i], err)
		}
	}
	return qualities, nil
}
