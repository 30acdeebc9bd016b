package pert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/pert"
)

func buildLinearCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	rows := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "A", ID: 1},
		{RowIndex: 1, Name: "B", ID: 2},
		{RowIndex: 2, Name: "C", ID: 3},
	}
	cat, err := catalog.Fuse("plan-A", rows, nil, nil)
	require.NoError(t, err)
	cat.ApplyPrerequisites(map[int]map[int]struct{}{
		1: {},
		2: {1: {}},
		3: {2: {}},
	})
	return cat
}

func TestAnalyze_LinearChainAllCritical(t *testing.T) {
	cat := buildLinearCatalog(t)
	res := pert.Analyze(cat)
	require.False(t, res.Cyclic)

	assert.Equal(t, 0, res.Nodes[1].ES)
	assert.Equal(t, 1, res.Nodes[2].ES)
	assert.Equal(t, 2, res.Nodes[3].ES)
	assert.Equal(t, 3, res.ProjectSpan)

	for _, id := range []int{1, 2, 3} {
		assert.True(t, res.Nodes[id].Critical, "course %d should be on the critical path", id)
		assert.Equal(t, 0, res.Nodes[id].Slack)
	}
}

func TestAnalyze_ParallelBranchHasSlack(t *testing.T) {
	rows := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "Root", ID: 1},
		{RowIndex: 1, Name: "LongBranch", ID: 2},
		{RowIndex: 2, Name: "LongBranchEnd", ID: 3},
		{RowIndex: 3, Name: "ShortBranch", ID: 4},
		{RowIndex: 4, Name: "Join", ID: 5},
	}
	cat, err := catalog.Fuse("plan-A", rows, nil, nil)
	require.NoError(t, err)
	cat.ApplyPrerequisites(map[int]map[int]struct{}{
		1: {},
		2: {1: {}},
		3: {2: {}},
		4: {1: {}},
		5: {3: {}, 4: {}},
	})

	res := pert.Analyze(cat)
	require.False(t, res.Cyclic)

	assert.True(t, res.Nodes[1].Critical)
	assert.True(t, res.Nodes[2].Critical)
	assert.True(t, res.Nodes[3].Critical)
	assert.True(t, res.Nodes[5].Critical)

	assert.False(t, res.Nodes[4].Critical)
	assert.Greater(t, res.Nodes[4].Slack, 0)
}

func TestAnalyze_SequenceNumberOrdersUnlinkedCourses(t *testing.T) {
	rows := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "First", ID: 1, SequenceNumber: 1},
		{RowIndex: 1, Name: "Second", ID: 2, SequenceNumber: 2},
	}
	cat, err := catalog.Fuse("plan-A", rows, nil, nil)
	require.NoError(t, err)
	cat.ApplyPrerequisites(map[int]map[int]struct{}{1: {}, 2: {}})

	res := pert.Analyze(cat)
	require.False(t, res.Cyclic)
	assert.Less(t, res.Nodes[1].ES, res.Nodes[2].ES)
}

func TestAnalyze_CyclicFallbackDoesNotPanic(t *testing.T) {
	rows := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "A", ID: 1},
		{RowIndex: 1, Name: "B", ID: 2},
	}
	cat, err := catalog.Fuse("plan-A", rows, nil, nil)
	require.NoError(t, err)
	cat.ApplyPrerequisites(map[int]map[int]struct{}{
		1: {2: {}},
		2: {1: {}},
	})

	res := pert.Analyze(cat)
	assert.True(t, res.Cyclic)
	assert.Len(t, res.Nodes, 2)
}

func TestResult_WriteBack(t *testing.T) {
	cat := buildLinearCatalog(t)
	res := pert.Analyze(cat)
	res.WriteBack(cat)

	crs, ok := cat.ByID(1)
	require.True(t, ok)
	assert.True(t, crs.IsCritical)
	assert.Equal(t, 0, crs.Slack)
}
