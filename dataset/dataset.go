/*
Package dataset provides the boolean attribute matrix the subgroup search
runs against. A Table holds one bit-vector per column, so the coverage of a
conjunction of conditions is computed with bitwise ANDs instead of
re-scanning rows with a predicate per call: the search evaluates coverage
for every candidate at every depth, and this representation is what keeps
that path cheap.

Tables are populated once, by a source (CSV, SQL, MongoDB), and are
read-only for the life of a search.
*/
package dataset

import (
	"fmt"

	"github.com/subgroups/dssd/subgroup"
)

/*
Table is an immutable-by-convention boolean matrix with named columns.
Query methods never modify it, so a single Table can be shared by every
component of a search without locking.
*/
type Table struct {
	columns []string
	index   map[string]int
	vectors []Bitvector
	rows    int
}

/*
NewTable takes a slice of column names and returns an empty table with
those columns, or an error if a name is empty or appears twice.
*/
func NewTable(columns []string) (*Table, error) {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
		vectors: make([]Bitvector, len(columns)),
	}
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("creating table: empty column name at position %d", i)
		}
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("creating table: duplicate column name %q", name)
		}
		t.columns[i] = name
		t.index[name] = i
	}
	return t, nil
}

/*
AddRow takes a mapping from column name to boolean value and appends it as
a new row. Every column of the table must be present in the mapping and no
unknown columns may appear; sources are expected to have resolved missing
values before loading.
*/
func (t *Table) AddRow(values map[string]bool) error {
	if len(values) != len(t.columns) {
		for name := range values {
			if _, ok := t.index[name]; !ok {
				return fmt.Errorf("adding row %d: unknown column %q", t.rows, name)
			}
		}
		for _, name := range t.columns {
			if _, ok := values[name]; !ok {
				return fmt.Errorf("adding row %d: missing value for column %q", t.rows, name)
			}
		}
	}
	for i, name := range t.columns {
		v, ok := values[name]
		if !ok {
			return fmt.Errorf("adding row %d: missing value for column %q", t.rows, name)
		}
		if t.vectors[i].Len() <= t.rows {
			t.vectors[i] = t.vectors[i].grow(t.rows + 1)
		}
		if v {
			t.vectors[i].set(t.rows)
		}
	}
	t.rows++
	return nil
}

/*
Columns returns the table's column names in their declaration order. This
order fixes the order in which refinements are generated.
*/
func (t *Table) Columns() []string {
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

/*
Count returns the number of rows in the table.
*/
func (t *Table) Count() int {
	return t.rows
}

/*
Value returns the boolean held at the given row for the given column, or
an error if the column is unknown or the row is out of range.
*/
func (t *Table) Value(row int, column string) (bool, error) {
	i, ok := t.index[column]
	if !ok {
		return false, fmt.Errorf("reading value: unknown column %q", column)
	}
	if row < 0 || row >= t.rows {
		return false, fmt.Errorf("reading value: row %d out of range", row)
	}
	return t.vectors[i].Get(row), nil
}

/*
Row returns the given row as a mapping from column name to value, or an
error if the row is out of range. It is meant for sinks that write tables
out, not for the search loop.
*/
func (t *Table) Row(row int) (map[string]bool, error) {
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("reading row: row %d out of range", row)
	}
	values := make(map[string]bool, len(t.columns))
	for i, name := range t.columns {
		values[name] = t.vectors[i].Get(row)
	}
	return values, nil
}

/*
Mask takes a subgroup description and returns the bit-vector of rows
satisfying every one of its conditions. The empty description yields a
vector with every row set. An error is returned if a condition references
a column the table does not have.
*/
func (t *Table) Mask(d subgroup.Description) (Bitvector, error) {
	mask := fullBitvector(t.rows)
	for _, c := range d.Conditions() {
		i, ok := t.index[c.Attribute]
		if !ok {
			return Bitvector{}, fmt.Errorf("evaluating description %s: unknown column %q", d, c.Attribute)
		}
		mask.Intersect(t.vectors[i], c.Value)
	}
	return mask, nil
}

/*
CoverageCount takes a subgroup description and returns the number of rows
satisfying it. The empty description covers every row.
*/
func (t *Table) CoverageCount(d subgroup.Description) (int, error) {
	mask, err := t.Mask(d)
	if err != nil {
		return 0, err
	}
	return mask.OnesCount(), nil
}

/*
Matches takes a subgroup description and returns the indices of the rows
satisfying it, in ascending order.
*/
func (t *Table) Matches(d subgroup.Description) ([]int, error) {
	mask, err := t.Mask(d)
	if err != nil {
		return nil, err
	}
	return mask.Indices(), nil
}

/*
RestrictedCount takes a row mask (typically the mask of a parent
description) and a condition, and returns how many rows of the mask also
satisfy the condition, without materializing the refined mask. The
refinement generator uses this to score every one-condition extension of a
beam member against a single parent mask.
*/
func (t *Table) RestrictedCount(mask Bitvector, c subgroup.Condition) (int, error) {
	i, ok := t.index[c.Attribute]
	if !ok {
		return 0, fmt.Errorf("restricting mask: unknown column %q", c.Attribute)
	}
	return mask.IntersectCount(t.vectors[i], c.Value), nil
}
