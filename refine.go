package dssd

import (
	"fmt"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

/*
Refinements takes a subgroup description, a minimum coverage and a table
and returns every valid one-condition extension of the description: for
each table column the description does not constrain yet, in the table's
column order, a candidate requiring the column true and a candidate
requiring it false. Candidates covering fewer than mincov rows are
silently discarded; insufficient coverage is an expected pruning outcome,
not a failure.

Every returned description has exactly one more condition than the parent
and the parent's conditions are never altered. The output order is
deterministic given the table's column order.
*/
func Refinements(d subgroup.Description, mincov int, t *dataset.Table) ([]subgroup.Description, error) {
	mask, err := t.Mask(d)
	if err != nil {
		return nil, fmt.Errorf("refining %s: %v", d, err)
	}
	var refinements []subgroup.Description
	for _, column := range t.Columns() {
		if d.Constrains(column) {
			continue
		}
		for _, value := range []bool{true, false} {
			c := subgroup.Condition{Attribute: column, Value: value}
			count, err := t.RestrictedCount(mask, c)
			if err != nil {
				return nil, fmt.Errorf("refining %s: %v", d, err)
			}
			if count >= mincov {
				refinements = append(refinements, d.Extend(c))
			}
		}
	}
	return refinements, nil
}
