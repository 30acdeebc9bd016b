package planner_test

// End-to-end scenario tests mirroring the planner's behavioral contract:
// new-student baseline, prerequisite gating, time-block conflict,
// equivalence mapping, CFG cap enforcement, and run-to-run determinism.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/planner"
)

var fastBudget = planner.WithTotalTimeBudget(100 * 1000 * 1000) // 100ms, keeps duplicate-saturated test fixtures fast

func sem(n int) *int { return &n }

func block(day string, start, end int) catalog.Block {
	return catalog.Block{Day: day, StartMinute: start, EndMinute: end}
}

func section(code string, b catalog.Block) *catalog.Section {
	return &catalog.Section{Code: code, SectionID: "1", Schedule: []catalog.Block{b}}
}

// altSection builds one of several alternate sections offered for the same
// course; sections sharing a course code prefix are mutually exclusive
// regardless of their schedules, which is what gives a fixture with
// multiple alternates per course the clique diversity a single-section-per-
// course fixture cannot have.
func altSection(code, sectionID string, b catalog.Block) *catalog.Section {
	return &catalog.Section{Code: code + "_" + sectionID, SectionID: sectionID, Schedule: []catalog.Block{b}}
}

func containsSectionCode(sections []planner.SectionResult, code string) bool {
	for _, s := range sections {
		if s.Section.BaseCode() == code {
			return true
		}
	}
	return false
}

func countCFG(sections []planner.SectionResult) int {
	n := 0
	for _, s := range sections {
		if s.Section.IsCFG {
			n++
		}
	}
	return n
}

// Scenario A: new student, no constraints. Six semester-1 courses, each
// with two alternate sections on its own weekday (so no two courses ever
// conflict, but each course's own alternates are mutually exclusive), must
// yield at least 3 diverse schedules, every one using all 6 courses.
func TestScenario_A_NewStudentBaseline(t *testing.T) {
	days := []string{"LU", "MA", "MI", "JU", "VI", "SA"}
	codes := []string{"AAA101", "BBB101", "CCC101", "DDD101", "EEE101", "FFF101"}

	var curriculum []catalog.CurriculumRow
	var offerings []catalog.OfferingRow
	var sections []*catalog.Section
	for i, code := range codes {
		curriculum = append(curriculum, catalog.CurriculumRow{RowIndex: i, Name: code, ID: i + 1, Semester: sem(1)})
		offerings = append(offerings, catalog.OfferingRow{Name: code, Code: code})
		sections = append(sections, altSection(code, "1", block(days[i], 480, 600)))
		sections = append(sections, altSection(code, "2", block(days[i], 480, 600)))
	}

	rows := planner.SourceRows{Curriculum: curriculum, Offerings: offerings, Sections: sections}
	resp, err := planner.Plan(planner.Request{PlanID: "scenario-a"}, rows, fastBudget)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(resp.Schedules), 3)
	for _, sched := range resp.Schedules {
		assert.Len(t, sched.Sections, 6)
	}
}

// Scenario B: prerequisite gating. Course X (semester 3) requires Y
// (semester 1). With no approved courses X must never appear (a brand
// new student's horizon is semesters 1-2 only); once Y is approved, X
// becomes reachable.
func TestScenario_B_PrerequisiteGating(t *testing.T) {
	curriculum := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "Y", ID: 1, Semester: sem(1)},
		{RowIndex: 1, Name: "X", ID: 2, Semester: sem(3), PrerequisiteSpec: "1"},
		{RowIndex: 2, Name: "F1", ID: 3, Semester: sem(1)},
		{RowIndex: 3, Name: "F2", ID: 4, Semester: sem(1)},
		{RowIndex: 4, Name: "F3", ID: 5, Semester: sem(1)},
	}
	offerings := []catalog.OfferingRow{
		{Name: "Y", Code: "YYY101"},
		{Name: "X", Code: "XXX301"},
		{Name: "F1", Code: "FIL101"},
		{Name: "F2", Code: "FIL102"},
		{Name: "F3", Code: "FIL103"},
	}
	sections := []*catalog.Section{
		section("YYY101", block("LU", 480, 600)),
		section("XXX301", block("MA", 480, 600)),
		section("FIL101", block("MI", 480, 600)),
		section("FIL102", block("JU", 480, 600)),
		section("FIL103", block("VI", 480, 600)),
	}
	rows := planner.SourceRows{Curriculum: curriculum, Offerings: offerings, Sections: sections}

	respNoApproval, err := planner.Plan(planner.Request{PlanID: "scenario-b-1"}, rows, fastBudget)
	require.NoError(t, err)
	for _, sched := range respNoApproval.Schedules {
		assert.False(t, containsSectionCode(sched.Sections, "XXX301"), "X must not appear without Y approved")
	}

	respApprovedY, err := planner.Plan(planner.Request{PlanID: "scenario-b-2", ApprovedCourses: []string{"Y"}}, rows, fastBudget)
	require.NoError(t, err)
	foundX := false
	for _, sched := range respApprovedY.Schedules {
		if containsSectionCode(sched.Sections, "XXX301") {
			foundX = true
			break
		}
	}
	assert.True(t, foundX, "X must appear in at least one schedule once Y is approved")
}

// Scenario C: time-block conflict. Two sections meeting at the exact same
// time must never co-occur in an emitted schedule.
func TestScenario_C_TimeBlockConflict(t *testing.T) {
	curriculum := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "A", ID: 1, Semester: sem(1)},
		{RowIndex: 1, Name: "B", ID: 2, Semester: sem(1)},
		{RowIndex: 2, Name: "F1", ID: 3, Semester: sem(1)},
		{RowIndex: 3, Name: "F2", ID: 4, Semester: sem(1)},
		{RowIndex: 4, Name: "F3", ID: 5, Semester: sem(1)},
	}
	offerings := []catalog.OfferingRow{
		{Name: "A", Code: "AAA101"},
		{Name: "B", Code: "BBB101"},
		{Name: "F1", Code: "FIL101"},
		{Name: "F2", Code: "FIL102"},
		{Name: "F3", Code: "FIL103"},
	}
	sections := []*catalog.Section{
		section("AAA101", block("LU", 480, 600)),
		section("BBB101", block("LU", 480, 600)),
		section("FIL101", block("MA", 480, 600)),
		section("FIL102", block("MI", 480, 600)),
		section("FIL103", block("JU", 480, 600)),
	}
	rows := planner.SourceRows{Curriculum: curriculum, Offerings: offerings, Sections: sections}
	resp, err := planner.Plan(planner.Request{PlanID: "scenario-c"}, rows, fastBudget)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Schedules)

	for _, sched := range resp.Schedules {
		hasA := containsSectionCode(sched.Sections, "AAA101")
		hasB := containsSectionCode(sched.Sections, "BBB101")
		assert.False(t, hasA && hasB, "A and B conflict and must never co-occur")
	}
}

// Scenario D: equivalence mapping. An old course code submitted as
// approved must exclude the new code it maps to from every schedule.
func TestScenario_D_Equivalence(t *testing.T) {
	curriculum := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "Base", ID: 1, Semester: sem(1)},
		{RowIndex: 1, Name: "F1", ID: 2, Semester: sem(1)},
		{RowIndex: 2, Name: "F2", ID: 3, Semester: sem(1)},
		{RowIndex: 3, Name: "F3", ID: 4, Semester: sem(1)},
	}
	offerings := []catalog.OfferingRow{
		{Name: "Base", Code: "CIG1003"},
		{Name: "F1", Code: "FIL101"},
		{Name: "F2", Code: "FIL102"},
		{Name: "F3", Code: "FIL103"},
	}
	sections := []*catalog.Section{
		section("CIG1003", block("LU", 480, 600)),
		section("FIL101", block("MA", 480, 600)),
		section("FIL102", block("MI", 480, 600)),
		section("FIL103", block("JU", 480, 600)),
	}
	rows := planner.SourceRows{
		Curriculum:   curriculum,
		Offerings:    offerings,
		Sections:     sections,
		Equivalences: map[string]string{"CIG1014": "CIG1003"},
	}

	req := planner.Request{PlanID: "scenario-d", ApprovedCourses: []string{"CIG1014"}}
	resp, err := planner.Plan(req, rows, fastBudget)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Schedules)

	for _, sched := range resp.Schedules {
		assert.False(t, containsSectionCode(sched.Sections, "CIG1003"), "the equivalent new code must be excluded as already approved")
	}
}

// Scenario E: CFG cap. With 4 CFGs already approved, no CFG section may
// appear in any schedule; with only 3 approved, at most 1 CFG section may
// appear.
func TestScenario_E_CFGCap(t *testing.T) {
	curriculum := []catalog.CurriculumRow{
		{RowIndex: 0, Name: "CFG1", ID: 1, Semester: sem(1)},
		{RowIndex: 1, Name: "CFG2", ID: 2, Semester: sem(1)},
		{RowIndex: 2, Name: "CFG3", ID: 3, Semester: sem(1)},
		{RowIndex: 3, Name: "CFG4", ID: 4, Semester: sem(1)},
		{RowIndex: 4, Name: "CFG5", ID: 5, Semester: sem(1)},
		{RowIndex: 5, Name: "GEN1", ID: 6, Semester: sem(1)},
		{RowIndex: 6, Name: "GEN2", ID: 7, Semester: sem(1)},
		{RowIndex: 7, Name: "GEN3", ID: 8, Semester: sem(1)},
	}
	offerings := []catalog.OfferingRow{
		{Name: "CFG1", Code: "CFG101"},
		{Name: "CFG2", Code: "CFG102"},
		{Name: "CFG3", Code: "CFG103"},
		{Name: "CFG4", Code: "CFG104"},
		{Name: "CFG5", Code: "CFG105"},
		{Name: "GEN1", Code: "GEN101"},
		{Name: "GEN2", Code: "GEN102"},
		{Name: "GEN3", Code: "GEN103"},
	}
	cfgSection := func(code, day string) *catalog.Section {
		s := section(code, block(day, 480, 600))
		s.IsCFG = true
		return s
	}
	baseSections := []*catalog.Section{
		cfgSection("CFG101", "LU"),
		cfgSection("CFG102", "MA"),
		cfgSection("CFG103", "MI"),
		cfgSection("CFG104", "JU"),
		cfgSection("CFG105", "VI"),
		section("GEN101", block("SA", 480, 600)),
		section("GEN102", block("DO", 480, 600)),
		section("GEN103", block("LU", 620, 740)),
	}

	rows4 := planner.SourceRows{
		Curriculum: curriculum, Offerings: offerings, Sections: baseSections,
	}
	resp4, err := planner.Plan(planner.Request{
		PlanID:          "scenario-e-4",
		ApprovedCourses: []string{"CFG1", "CFG2", "CFG3", "CFG4"},
	}, rows4, fastBudget)
	require.NoError(t, err)
	require.NotEmpty(t, resp4.Schedules)
	for _, sched := range resp4.Schedules {
		assert.Equal(t, 0, countCFG(sched.Sections), "4 approved CFGs must exhaust the cap entirely")
	}

	rows3 := planner.SourceRows{
		Curriculum: curriculum, Offerings: offerings, Sections: baseSections,
	}
	resp3, err := planner.Plan(planner.Request{
		PlanID:          "scenario-e-3",
		ApprovedCourses: []string{"CFG1", "CFG2", "CFG3"},
	}, rows3, fastBudget)
	require.NoError(t, err)
	require.NotEmpty(t, resp3.Schedules)
	for _, sched := range resp3.Schedules {
		assert.LessOrEqual(t, countCFG(sched.Sections), 1, "with 1 remaining cap slot, at most 1 CFG section may appear")
	}
}

// Scenario F: determinism. Running the planner repeatedly on identical
// input must produce bit-equal (same score, same section set, in the
// same order) top schedules every time.
func TestScenario_F_Determinism(t *testing.T) {
	days := []string{"LU", "MA", "MI", "JU", "VI", "SA"}
	codes := []string{"AAA101", "BBB101", "CCC101", "DDD101", "EEE101", "FFF101"}

	var curriculum []catalog.CurriculumRow
	var offerings []catalog.OfferingRow
	var sections []*catalog.Section
	for i, code := range codes {
		curriculum = append(curriculum, catalog.CurriculumRow{RowIndex: i, Name: code, ID: i + 1, Semester: sem(1)})
		offerings = append(offerings, catalog.OfferingRow{Name: code, Code: code})
		sections = append(sections, altSection(code, "1", block(days[i], 480, 600)))
		sections = append(sections, altSection(code, "2", block(days[i], 480, 600)))
	}
	rows := planner.SourceRows{Curriculum: curriculum, Offerings: offerings, Sections: sections}

	const runs = 10
	var baseline []planner.ScheduleResult
	for i := 0; i < runs; i++ {
		resp, err := planner.Plan(planner.Request{PlanID: "scenario-f"}, rows, fastBudget)
		require.NoError(t, err)
		if i == 0 {
			baseline = resp.Schedules
			continue
		}
		require.Equal(t, len(baseline), len(resp.Schedules))
		for j, sched := range resp.Schedules {
			assert.Equal(t, baseline[j].TotalScore, sched.TotalScore, "run %d schedule %d score mismatch", i, j)
			require.Len(t, sched.Sections, len(baseline[j].Sections))
			for k, sec := range sched.Sections {
				assert.Equal(t, baseline[j].Sections[k].Section.Code, sec.Section.Code, "run %d schedule %d section %d mismatch", i, j, k)
				assert.Equal(t, baseline[j].Sections[k].Priority, sec.Priority, "run %d schedule %d section %d priority mismatch", i, j, k)
			}
		}
	}
}
