package catalog

// CurriculumRow is one row of the authoritative-for-structure curriculum
// table. Credits, Semester and PrerequisiteSpec are optional; the zero
// value means "absent" for Credits/Semester and "" for PrerequisiteSpec.
// RowIndex is the row's position in the source sheet and is the
// deterministic tie-break for elective-slot assignment.
type CurriculumRow struct {
	RowIndex         int
	Name             string
	ID               int
	Credits          *int
	PrerequisiteSpec string
	Semester         *int
	IsElective       bool
	SequenceNumber   int
}

// OfferingRow is one row of the authoritative-for-codes offering table.
type OfferingRow struct {
	Name string
	Code string
}

// HistoricalRow is one row of the authoritative-for-difficulty historical
// pass-rate table.
type HistoricalRow struct {
	Code           string
	Name           string
	PassPercentage float64
	IsElective     bool
}
