package dssd

import (
	"context"
	"fmt"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

/*
Prune takes a context, a mined subgroup description, the quality it was
retained at, a measure and a table, and returns a dominance-pruned copy of
the description: a greedy single pass over the description's conditions in
their construction order, tentatively removing each one, rescoring the
reduced description, and keeping the removal whenever the rescored quality
is greater than or equal to the best quality seen so far in the pass.

The greater-than-or-equal acceptance means pruning actively prefers the
shorter of two equally good descriptions; that simplicity bias is the
point of the pass, not an accident. A description is never reduced below
one condition: single-condition inputs are returned unchanged and the pass
stops as soon as one condition remains. Pruning one subgroup never affects
another; each call is independent.
*/
func Prune(ctx context.Context, d subgroup.Description, quality float64, m Measure, t *dataset.Table) (subgroup.Description, error) {
	if d.Len() <= 1 {
		return d, nil
	}
	best := d
	bestQuality := quality
	for _, c := range d.Conditions() {
		reduced := best.Without(c.Attribute)
		q, err := m.Quality(ctx, reduced, t)
		if err != nil {
			return subgroup.Description{}, fmt.Errorf("pruning %s: rescoring %s: %v", d, reduced, err)
		}
		if q >= bestQuality {
			best = reduced
			bestQuality = q
		}
		if best.Len() == 1 {
			break
		}
	}
	return best, nil
}
