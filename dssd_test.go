package dssd

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/subgroup"
)

func TestMineValidatesConfiguration(t *testing.T) {
	table := scenarioTable(t)
	m := Coverage()
	valid := &Params{BeamWidth: 2}

	testCases := []struct {
		name                   string
		j, k, mincov, maxdepth int
		params                 *Params
	}{
		{"zero j", 0, 2, 3, 2, valid},
		{"negative j", -1, 2, 3, 2, valid},
		{"zero k", 4, 0, 3, 2, valid},
		{"zero mincov", 4, 2, 0, 2, valid},
		{"zero maxdepth", 4, 2, 3, 0, valid},
		{"nil params", 4, 2, 3, 2, nil},
		{"zero beam width", 4, 2, 3, 2, &Params{}},
		{"negative beam width", 4, 2, 3, 2, &Params{BeamWidth: -1}},
		{"negative workers", 4, 2, 3, 2, &Params{BeamWidth: 2, Workers: -1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Mine(context.Background(), table, m, tc.j, tc.k, tc.mincov, tc.maxdepth, tc.params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

// The 10-row scenario under pure coverage: dominance pruning collapses
// every two-condition description, so the final set holds the two
// single-condition slices covering 7 rows each.
func TestMineScenarioWithCoverageMeasure(t *testing.T) {
	table := scenarioTable(t)

	result, err := Mine(context.Background(), table, Coverage(), 4, 2, 3, 2, &Params{BeamWidth: 2})
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.True(t, result[0].Equal(subgroup.New(cond("a", true))))
	assert.True(t, result[1].Equal(subgroup.New(cond("b", true))))
	for _, d := range result {
		count, err := table.CoverageCount(d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 3)
	}
}

// Under size-weighted coverage the two-condition description a=true &&
// b=true (coverage 4, quality 8) survives pruning and outranks every
// single condition (quality at most 7).
func TestMineScenarioWithSizeWeightedMeasure(t *testing.T) {
	table := scenarioTable(t)

	result, err := Mine(context.Background(), table, SizeWeightedCoverage(nil), 4, 2, 3, 2, &Params{BeamWidth: 2})
	require.NoError(t, err)

	require.NotEmpty(t, result)
	assert.True(t, result[0].Equal(subgroup.New(cond("a", true), cond("b", true))))
	assert.LessOrEqual(t, len(result), 2)
}

func TestMineAllZeroQualityMeasure(t *testing.T) {
	table := scenarioTable(t)
	zero := MeasureFunc(func(ctx context.Context, d subgroup.Description, tb *dataset.Table) (float64, error) {
		return 0, nil
	})

	result, err := Mine(context.Background(), table, zero, 4, 2, 3, 2, &Params{BeamWidth: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result), 2)
	assert.NotEmpty(t, result)
}

func TestMineFizzlesGracefully(t *testing.T) {
	// mincov above the row count: no refinement ever qualifies and the
	// search returns empty without erroring.
	table := scenarioTable(t)

	result, err := Mine(context.Background(), table, Coverage(), 4, 2, 11, 3, &Params{BeamWidth: 2})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestMineOutputBound(t *testing.T) {
	table := newTestTable(t, []string{"p", "q", "r"}, [][]bool{
		{true, false, true},
		{true, true, true},
		{false, true, false},
		{true, false, false},
		{false, false, true},
		{true, true, false},
	})

	for _, k := range []int{1, 2, 5, 50} {
		result, err := Mine(context.Background(), table, Coverage(), 10, k, 1, 3, &Params{BeamWidth: 3})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result), k)
		for i := range result {
			for j := i + 1; j < len(result); j++ {
				assert.False(t, result[i].Equal(result[j]), "final result contains duplicates")
			}
		}
	}
}

func TestMinePropagatesMeasureErrors(t *testing.T) {
	table := scenarioTable(t)
	failing := MeasureFunc(func(ctx context.Context, d subgroup.Description, tb *dataset.Table) (float64, error) {
		return 0, fmt.Errorf("measure exploded")
	})

	_, err := Mine(context.Background(), table, failing, 4, 2, 3, 2, &Params{BeamWidth: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "measure exploded")
}

func TestMineRespectsContextCancellation(t *testing.T) {
	table := scenarioTable(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Mine(ctx, table, Coverage(), 4, 2, 3, 2, &Params{BeamWidth: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

// Parallel scoring must produce exactly the sequential result: workers
// write disjoint slots and the merge is index-ordered.
func TestMineParallelScoringIsDeterministic(t *testing.T) {
	table := newTestTable(t, []string{"p", "q", "r", "s"}, [][]bool{
		{true, false, true, false},
		{true, true, true, true},
		{false, true, false, true},
		{true, false, false, false},
		{false, false, true, true},
		{true, true, false, false},
		{false, true, true, false},
		{true, false, true, true},
	})

	sequential, err := Mine(context.Background(), table, SizeWeightedCoverage([]string{"s"}), 6, 3, 2, 3, &Params{BeamWidth: 3})
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 4, 16} {
		parallel, err := Mine(context.Background(), table, SizeWeightedCoverage([]string{"s"}), 6, 3, 2, 3, &Params{BeamWidth: 3, Workers: workers})
		require.NoError(t, err)
		require.Equal(t, len(sequential), len(parallel), "workers=%d", workers)
		for i := range sequential {
			assert.True(t, sequential[i].Equal(parallel[i]), "workers=%d result %d differs", workers, i)
		}
	}
}
