package clique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickshift/plannercore/catalog"
)

func buildTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	rows := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "Algebra", ID: 1, Semester: intp(1)},
		{RowIndex: 1, Name: "Calculo", ID: 2, Semester: intp(1)},
	}
	offerings := []catalog.OfferingRow{
		{Name: "Algebra", Code: "MAT101"},
		{Name: "Calculo", Code: "MAT102"},
	}
	cat, err := catalog.Fuse("plan-A", rows, offerings, nil)
	require.NoError(t, err)
	cat.ApplyPrerequisites(map[int]map[int]struct{}{1: {}, 2: {}})
	return cat
}

func intp(n int) *int { return &n }

func TestBuildGraph_CompatibleSectionsAreConnected(t *testing.T) {
	cat := buildTestCatalog(t)
	eligible := map[int]struct{}{1: {}, 2: {}}
	sections := []*catalog.Section{
		{Code: "MAT101_01", SectionID: "1", Schedule: []catalog.Block{{Day: "LU", StartMinute: 480, EndMinute: 600}}},
		{Code: "MAT102_01", SectionID: "1", Schedule: []catalog.Block{{Day: "MA", StartMinute: 480, EndMinute: 600}}},
	}

	g := BuildGraph(cat, eligible, sections, nil)
	require.Len(t, g.Nodes, 2)
	assert.True(t, g.Adj[0].Test(1))
	assert.True(t, g.Adj[1].Test(0))
}

func TestBuildGraph_ConflictingSectionsAreNotConnected(t *testing.T) {
	cat := buildTestCatalog(t)
	eligible := map[int]struct{}{1: {}, 2: {}}
	sections := []*catalog.Section{
		{Code: "MAT101_01", SectionID: "1", Schedule: []catalog.Block{{Day: "LU", StartMinute: 480, EndMinute: 600}}},
		{Code: "MAT102_01", SectionID: "1", Schedule: []catalog.Block{{Day: "LU", StartMinute: 500, EndMinute: 620}}},
	}

	g := BuildGraph(cat, eligible, sections, nil)
	assert.False(t, g.Adj[0].Test(1))
}

func TestBuildGraph_IneligibleSectionExcluded(t *testing.T) {
	cat := buildTestCatalog(t)
	eligible := map[int]struct{}{1: {}} // course 2 not eligible
	sections := []*catalog.Section{
		{Code: "MAT101_01", SectionID: "1"},
		{Code: "MAT102_01", SectionID: "1"},
	}
	g := BuildGraph(cat, eligible, sections, nil)
	assert.Len(t, g.Nodes, 1)
}

func TestBuildGraph_IneligibleCFGSectionExcluded(t *testing.T) {
	// A CFG-tagged section whose course is over its cap (absent from
	// eligible) must not bypass the cap just because IsCFG is set.
	cat := buildTestCatalog(t)
	eligible := map[int]struct{}{1: {}} // course 2 not eligible
	sections := []*catalog.Section{
		{Code: "MAT101_01", SectionID: "1"},
		{Code: "MAT102_01", SectionID: "1", IsCFG: true},
	}
	g := BuildGraph(cat, eligible, sections, nil)
	assert.Len(t, g.Nodes, 1)
	assert.Equal(t, "MAT101_01", g.Nodes[0].Section.Code)
}

func TestBuildGraph_ExcludedSectionDropped(t *testing.T) {
	cat := buildTestCatalog(t)
	eligible := map[int]struct{}{1: {}}
	sections := []*catalog.Section{
		{Code: "MAT101_01", SectionID: "1", Schedule: []catalog.Block{{Day: "VI", StartMinute: 480, EndMinute: 600}}},
	}
	ctx := &Context{FreeDays: map[string]struct{}{"VI": {}}}
	g := BuildGraph(cat, eligible, sections, ctx)
	assert.Empty(t, g.Nodes)
}

func TestGraph_HalvePriorities(t *testing.T) {
	g := &Graph{Nodes: []Node{{Priority: 1000}, {Priority: 150}}}
	g.HalvePriorities([]int{0, 1})
	assert.Equal(t, 500, g.Nodes[0].Priority)
	assert.Equal(t, minHalvedPriority, g.Nodes[1].Priority)
}
