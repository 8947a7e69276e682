package dssd

import (
	"context"
	"fmt"
	"sort"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

/*
SelectTop takes a context, a slice of candidate descriptions, a measure, a
table and a width, scores every candidate with the measure and returns the
min(width, len(candidates)) best candidates in descending quality order.
Ties are broken by candidate input order, so selection is stable with
respect to the order the refinement generator produced.

Scoring is always fresh: SelectTop never reuses qualities cached anywhere
else. The search uses it both to pick the next beam (width = beam width)
and for the final selection (width = k), which is why the width is a
parameter rather than a fixed policy.
*/
func SelectTop(ctx context.Context, candidates []subgroup.Description, m Measure, t *dataset.Table, width int) ([]subgroup.Description, error) {
	qualities := make([]float64, len(candidates))
	for i, c := range candidates {
		q, err := m.Quality(ctx, c, t)
		if err != nil {
			return nil, fmt.Errorf("selecting top %d: scoring %s: %v", width, c, err)
		}
		qualities[i] = q
	}
	return selectScored(candidates, qualities, width), nil
}

// selectScored ranks candidates by the qualities already computed for
// them, one per candidate by index.
func selectScored(candidates []subgroup.Description, qualities []float64, width int) []subgroup.Description {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return qualities[order[a]] > qualities[order[b]]
	})
	if width > len(candidates) {
		width = len(candidates)
	}
	selected := make([]subgroup.Description, 0, width)
	for _, i := range order[:width] {
		selected = append(selected, candidates[i])
	}
	return selected
}
