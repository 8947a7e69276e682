package dssd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

func newTestTable(t *testing.T, columns []string, rows [][]bool) *dataset.Table {
	t.Helper()
	table, err := dataset.NewTable(columns)
	require.NoError(t, err)
	for _, row := range rows {
		values := make(map[string]bool, len(columns))
		for i, name := range columns {
			values[name] = row[i]
		}
		require.NoError(t, table.AddRow(values))
	}
	return table
}

// scenarioTable is the 10-row dataset used across the search tests:
// column a is true for rows 0-6 and column b is true for rows 3-9.
func scenarioTable(t *testing.T) *dataset.Table {
	t.Helper()
	rows := make([][]bool, 10)
	for i := range rows {
		rows[i] = []bool{i <= 6, i >= 3}
	}
	return newTestTable(t, []string{"a", "b"}, rows)
}

func cond(attribute string, value bool) subgroup.Condition {
	return subgroup.Condition{Attribute: attribute, Value: value}
}
