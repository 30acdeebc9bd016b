package planner

import "github.com/quickshift/plannercore/catalog"

// Response is Plan's successful output: the correlation ID assigned to
// this invocation, plus up to topK (see WithTopK) schedules sorted by descending
// total score.
type Response struct {
	RequestID string
	Schedules []ScheduleResult
}

// ScheduleResult is one emitted schedule ("{total_score, sections}").
type ScheduleResult struct {
	TotalScore int
	Sections   []SectionResult
}

// SectionResult pairs an offered section with the priority it was scored
// at when this schedule was assembled.
type SectionResult struct {
	Section  catalog.Section
	Priority int
}
