package planner

import "github.com/quickshift/plannercore/catalog"

// Request is a single planner invocation's input ("Input (planner
// invocation)"). ApprovedCourses and PriorityCourses are codes or names;
// Plan equivalence-maps them through SourceRows.Equivalences before use.
type Request struct {
	PlanID string `validate:"required"`
	Sheet  *string

	ApprovedCourses     []string
	PriorityCourses     []string
	PreferredTimeRanges []string
	ForbiddenTimeRanges []string

	StudentRanking *float64 `validate:"omitempty,min=0,max=1"`

	Filters       Filters
	Optimizations []string
}

// Filters mirrors `filters: { free_days?, min_gap_minutes?,
// instructor_prefs?, line_balance? }`; each carries its own Enabled flag,
// and a disabled filter is ignored regardless of its other fields.
type Filters struct {
	FreeDays        FreeDaysFilter
	MinGap          MinGapFilter
	InstructorPrefs InstructorPrefsFilter
	LineBalance     LineBalanceFilter
}

type FreeDaysFilter struct {
	Enabled bool
	Days    []string
}

type MinGapFilter struct {
	Enabled bool
	Minutes int
}

type InstructorPrefsFilter struct {
	Enabled   bool
	Preferred []string
	Avoided   []string
}

type LineBalanceFilter struct {
	Enabled bool
	Targets map[string]float64
}

// SourceRows supplies the raw parsed rows Catalog Fusion needs when a plan
// signature is not already cached, plus the offered sections the clique
// scheduler searches over and an equivalence table for approved-course
// codes. When the plan signature is already cached, Curriculum/Offerings/
// Historical may be left empty. Sections and Equivalences are read on
// every invocation and are not part of the cached catalog; an empty
// Equivalences table means no approved code is remapped.
type SourceRows struct {
	Curriculum   []catalog.CurriculumRow
	Offerings    []catalog.OfferingRow
	Historical   []catalog.HistoricalRow
	Equivalences map[string]string
	Sections     []*catalog.Section
}
