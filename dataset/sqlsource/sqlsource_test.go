package sqlsource

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

// fakeAdapter keeps samples in memory, standing in for a SQL backend.
type fakeAdapter struct {
	columns []string
	rows    [][]bool
	created bool
}

func (a *fakeAdapter) ColumnName(attributeName string) (string, error) {
	if strings.Contains(attributeName, `"`) {
		return "", fmt.Errorf("invalid attribute name %q", attributeName)
	}
	return attributeName, nil
}

func (a *fakeAdapter) CreateSamplesTable(ctx context.Context, columns []string) error {
	a.columns = columns
	a.created = true
	return nil
}

func (a *fakeAdapter) AddSamples(ctx context.Context, columns []string, rows [][]bool) (int, error) {
	a.rows = append(a.rows, rows...)
	return len(rows), nil
}

func (a *fakeAdapter) IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []bool) (bool, error)) error {
	for i, row := range a.rows {
		ok, err := lambda(i, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func TestReadTableFromAdapter(t *testing.T) {
	adapter := &fakeAdapter{rows: [][]bool{
		{true, false},
		{false, true},
		{true, true},
	}}

	table, err := ReadTable(context.Background(), adapter, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, table.Count())

	count, err := table.CoverageCount(subgroup.New(subgroup.Condition{Attribute: "a", Value: true}))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReadTableRejectsBadAttributeName(t *testing.T) {
	adapter := &fakeAdapter{}
	_, err := ReadTable(context.Background(), adapter, []string{`bro"ken`})
	assert.Error(t, err)
}

func TestWriteTableToAdapter(t *testing.T) {
	table, err := dataset.NewTable([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, table.AddRow(map[string]bool{"a": true, "b": false}))
	require.NoError(t, table.AddRow(map[string]bool{"a": false, "b": true}))

	adapter := &fakeAdapter{}
	n, err := WriteTable(context.Background(), adapter, table)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, adapter.created)
	assert.Equal(t, [][]bool{{true, false}, {false, true}}, adapter.rows)
}

func TestRoundTripThroughAdapter(t *testing.T) {
	original, err := dataset.NewTable([]string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, original.AddRow(map[string]bool{"x": true, "y": true}))
	require.NoError(t, original.AddRow(map[string]bool{"x": false, "y": false}))

	adapter := &fakeAdapter{}
	_, err = WriteTable(context.Background(), adapter, original)
	require.NoError(t, err)

	reread, err := ReadTable(context.Background(), adapter, []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, original.Count(), reread.Count())
	for i := 0; i < original.Count(); i++ {
		expected, err := original.Row(i)
		require.NoError(t, err)
		actual, err := reread.Row(i)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}
}
