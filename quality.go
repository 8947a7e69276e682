package dssd

import (
	"context"
	"fmt"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

/*
Measure is an interface wrapping the Quality method, the capability the
search uses to score subgroup descriptions.

The Quality method takes a context, a subgroup description and the table
the search runs against and returns the description's quality as a
float64. Implementations must be pure functions of their arguments:
deterministic, free of hidden state, and defined for every description the
search can construct, down to single-condition ones. A returned error
aborts the search and is propagated to the caller; it is never treated as
a zero score.
*/
type Measure interface {
	Quality(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error)
}

/*
MeasureFunc wraps a function with the Quality method signature to
implement the Measure interface.
*/
type MeasureFunc func(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error)

/*
Quality takes a context, a subgroup description and a table and invokes
the MeasureFunc with those parameters to return its result.
*/
func (mf MeasureFunc) Quality(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error) {
	return mf(ctx, d, t)
}

/*
Coverage returns a Measure whose quality is the description's coverage
count: the number of rows it matches.
*/
func Coverage() Measure {
	return MeasureFunc(func(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error) {
		count, err := t.CoverageCount(d)
		if err != nil {
			return 0, err
		}
		return float64(count), nil
	})
}

/*
SizeWeightedCoverage takes a slice of interest attribute names and returns
a Measure whose quality is the description's coverage count multiplied by
its number of conditions and by an interest bonus: descriptions
constraining exactly one interest attribute score triple, descriptions
constraining more than one score zero, and descriptions constraining none
keep the plain product. The bonus steers the search towards slices that
involve a single designated target column without stacking several of
them into one description.
*/
func SizeWeightedCoverage(interests []string) Measure {
	interesting := make(map[string]bool, len(interests))
	for _, name := range interests {
		interesting[name] = true
	}
	return MeasureFunc(func(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error) {
		count, err := t.CoverageCount(d)
		if err != nil {
			return 0, err
		}
		bonus := 1.0
		for _, c := range d.Conditions() {
			if interesting[c.Attribute] {
				if bonus == 1.0 {
					bonus = 3.0
				} else {
					bonus = 0.0
				}
			}
		}
		return float64(count) * float64(d.Len()) * bonus, nil
	})
}

/*
Lift takes the name of a boolean target column and returns a Measure
whose quality is the lift of the target within the description's coverage:
the proportion of covered rows with the target set, divided by the
proportion of all rows with the target set. Descriptions covering no rows
score zero, as do tables where the target is never set. An error is
returned if the target column does not exist.
*/
func Lift(target string) Measure {
	return MeasureFunc(func(ctx context.Context, d subgroup.Description, t *dataset.Table) (float64, error) {
		baseTarget, err := t.CoverageCount(subgroup.New(subgroup.Condition{Attribute: target, Value: true}))
		if err != nil {
			return 0, fmt.Errorf("computing lift: %v", err)
		}
		if baseTarget == 0 || t.Count() == 0 {
			return 0, nil
		}
		mask, err := t.Mask(d)
		if err != nil {
			return 0, fmt.Errorf("computing lift: %v", err)
		}
		covered := mask.OnesCount()
		if covered == 0 {
			return 0, nil
		}
		coveredTarget, err := t.RestrictedCount(mask, subgroup.Condition{Attribute: target, Value: true})
		if err != nil {
			return 0, fmt.Errorf("computing lift: %v", err)
		}
		p := float64(coveredTarget) / float64(covered)
		p0 := float64(baseTarget) / float64(t.Count())
		return p / p0, nil
	})
}
