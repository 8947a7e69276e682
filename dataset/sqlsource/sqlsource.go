/*
Package sqlsource provides loading and dumping of boolean attribute tables
from SQL databases through an Adapter interface; the pgadapter and
sqlite3adapter subpackages implement it for PostgreSQL and SQLite3.

The samples table holds one boolean column per attribute and one row per
sample.
*/
package sqlsource

import (
	"context"
	"fmt"

	"github.com/subgroups/dssd/dataset"
)

/*
Adapter is an interface providing the methods needed to load samples from
and dump samples to a SQL database backend.
*/
type Adapter interface {
	// ColumnName takes an attribute name and returns the column name
	// representing it on the database, or an error if the attribute
	// name cannot be used.
	ColumnName(string) (string, error)

	// CreateSamplesTable takes a slice of column names and ensures a
	// samples table with those boolean columns exists.
	CreateSamplesTable(ctx context.Context, columns []string) error

	// AddSamples takes a slice of column names and a slice of rows,
	// each holding one boolean per column, inserts them into the
	// samples table and returns the number of inserted rows.
	AddSamples(ctx context.Context, columns []string, rows [][]bool) (int, error)

	// IterateOnSamples takes a slice of column names and a lambda on
	// a row index and its boolean values, and calls the lambda for
	// every row of the samples table, stopping when it returns false.
	IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []bool) (bool, error)) error
}

/*
ReadTable takes a context, an adapter and a slice of attribute names and
returns a dataset.Table with those attributes loaded from the adapter's
samples table, or an error.
*/
func ReadTable(ctx context.Context, a Adapter, attributes []string) (*dataset.Table, error) {
	columns := make([]string, len(attributes))
	for i, name := range attributes {
		column, err := a.ColumnName(name)
		if err != nil {
			return nil, fmt.Errorf("reading table: %v", err)
		}
		columns[i] = column
	}
	t, err := dataset.NewTable(attributes)
	if err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}
	err = a.IterateOnSamples(ctx, columns, func(i int, values []bool) (bool, error) {
		row := make(map[string]bool, len(attributes))
		for j, name := range attributes {
			row[name] = values[j]
		}
		if err := t.AddRow(row); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading table: %v", err)
	}
	return t, nil
}

/*
WriteTable takes a context, an adapter and a dataset.Table, ensures the
samples table exists on the adapter's database and inserts every row of
the table into it, returning the number of inserted rows or an error.
*/
func WriteTable(ctx context.Context, a Adapter, t *dataset.Table) (int, error) {
	attributes := t.Columns()
	columns := make([]string, len(attributes))
	for i, name := range attributes {
		column, err := a.ColumnName(name)
		if err != nil {
			return 0, fmt.Errorf("writing table: %v", err)
		}
		columns[i] = column
	}
	if err := a.CreateSamplesTable(ctx, columns); err != nil {
		return 0, fmt.Errorf("writing table: %v", err)
	}
	rows := make([][]bool, t.Count())
	for i := range rows {
		row := make([]bool, len(attributes))
		for j, name := range attributes {
			v, err := t.Value(i, name)
			if err != nil {
				return 0, fmt.Errorf("writing table: %v", err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	n, err := a.AddSamples(ctx, columns, rows)
	if err != nil {
		return n, fmt.Errorf("writing table: %v", err)
	}
	return n, nil
}
