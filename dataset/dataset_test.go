package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subgroups/dssd/subgroup"
)

func newTestTable(t *testing.T, columns []string, rows [][]bool) *Table {
	t.Helper()
	table, err := NewTable(columns)
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

func TestNewTableRejectsBadColumns(t *testing.T) {
	_, err := NewTable([]string{"a", "a"})
	assert.Error(t, err)

	_, err = NewTable([]string{"a", ""})
	assert.Error(t, err)
}

func TestAddRowRejectsMismatchedValues(t *testing.T) {
	table, err := NewTable([]string{"a", "b"})
	require.NoError(t, err)

	assert.Error(t, table.AddRow(map[string]bool{"a": true}))
	assert.Error(t, table.AddRow(map[string]bool{"a": true, "b": false, "c": true}))
	assert.Error(t, table.AddRow(map[string]bool{"a": true, "c": false}))
	assert.Equal(t, 0, table.Count())
}

func TestEmptyDescriptionCoversAllRows(t *testing.T) {
	table := newTestTable(t, []string{"a", "b"}, [][]bool{
		{true, false},
		{false, true},
		{true, true},
	})

	count, err := table.CoverageCount(subgroup.New())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	matches, err := table.Matches(subgroup.New())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, matches)
}

func TestCoverageCountConjunction(t *testing.T) {
	table := newTestTable(t, []string{"a", "b"}, [][]bool{
		{true, false},
		{false, true},
		{true, true},
		{false, false},
	})

	testCases := []struct {
		name     string
		d        subgroup.Description
		expected int
	}{
		{"a true", subgroup.New(subgroup.Condition{Attribute: "a", Value: true}), 2},
		{"a false", subgroup.New(subgroup.Condition{Attribute: "a", Value: false}), 2},
		{"a true and b true", subgroup.New(subgroup.Condition{Attribute: "a", Value: true}, subgroup.Condition{Attribute: "b", Value: true}), 1},
		{"a false and b false", subgroup.New(subgroup.Condition{Attribute: "a", Value: false}, subgroup.Condition{Attribute: "b", Value: false}), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			count, err := table.CoverageCount(tc.d)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, count)
		})
	}
}

func TestCoverageMonotonicity(t *testing.T) {
	table := newTestTable(t, []string{"a", "b", "c"}, [][]bool{
		{true, false, true},
		{false, true, true},
		{true, true, false},
		{true, false, false},
		{false, false, true},
	})

	base := subgroup.New(subgroup.Condition{Attribute: "a", Value: true})
	baseCount, err := table.CoverageCount(base)
	require.NoError(t, err)

	for _, column := range []string{"b", "c"} {
		for _, value := range []bool{true, false} {
			refined := base.Extend(subgroup.Condition{Attribute: column, Value: value})
			count, err := table.CoverageCount(refined)
			require.NoError(t, err)
			assert.LessOrEqual(t, count, baseCount, "adding %s=%t must not increase coverage", column, value)
		}
	}
}

func TestUnknownColumnErrors(t *testing.T) {
	table := newTestTable(t, []string{"a"}, [][]bool{{true}})

	_, err := table.CoverageCount(subgroup.New(subgroup.Condition{Attribute: "nope", Value: true}))
	assert.Error(t, err)

	_, err = table.Matches(subgroup.New(subgroup.Condition{Attribute: "nope", Value: true}))
	assert.Error(t, err)
}

func TestMatchesNegatedCondition(t *testing.T) {
	table := newTestTable(t, []string{"a"}, [][]bool{
		{true}, {false}, {true}, {false}, {false},
	})

	matches, err := table.Matches(subgroup.New(subgroup.Condition{Attribute: "a", Value: false}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, matches)
}

func TestRestrictedCountAgainstFullEvaluation(t *testing.T) {
	table := newTestTable(t, []string{"a", "b"}, [][]bool{
		{true, false},
		{true, true},
		{false, true},
		{true, false},
	})

	parent := subgroup.New(subgroup.Condition{Attribute: "a", Value: true})
	mask, err := table.Mask(parent)
	require.NoError(t, err)

	for _, value := range []bool{true, false} {
		c := subgroup.Condition{Attribute: "b", Value: value}
		restricted, err := table.RestrictedCount(mask, c)
		require.NoError(t, err)
		full, err := table.CoverageCount(parent.Extend(c))
		require.NoError(t, err)
		assert.Equal(t, full, restricted)
	}
}

func TestRowAndValue(t *testing.T) {
	table := newTestTable(t, []string{"a", "b"}, [][]bool{
		{true, false},
		{false, true},
	})

	row, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": false, "b": true}, row)

	v, err := table.Value(0, "a")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = table.Row(2)
	assert.Error(t, err)
	_, err = table.Value(0, "nope")
	assert.Error(t, err)
}

// Tables wider than 64 rows cross bit-vector word boundaries; coverage
// counts must stay exact there.
func TestLargeTableWordBoundaries(t *testing.T) {
	table, err := NewTable([]string{"a"})
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		require.NoError(t, table.AddRow(map[string]bool{"a": i%3 == 0}))
	}

	count, err := table.CoverageCount(subgroup.New(subgroup.Condition{Attribute: "a", Value: true}))
	require.NoError(t, err)
	assert.Equal(t, 67, count)

	count, err = table.CoverageCount(subgroup.New(subgroup.Condition{Attribute: "a", Value: false}))
	require.NoError(t, err)
	assert.Equal(t, 133, count)

	mask, err := table.Mask(subgroup.New())
	require.NoError(t, err)
	count, err = table.RestrictedCount(mask, subgroup.Condition{Attribute: "a", Value: false})
	require.NoError(t, err)
	assert.Equal(t, 133, count)
}
