// Package eligibility implements the Eligibility Filter (C3): computing
// the set of courses a student may take next, given their approved
// courses and the two-semester planning horizon.
//
// Complexity: O(C) where C is the catalog size; each course is evaluated
// once against the approved-ID set and the semester horizon.
package eligibility

import (
	"strings"

	"github.com/quickshift/plannercore/catalog"
)

// Logger is the narrow logging surface Filter uses for its unknown-
// approved-identifier policy point. It mirrors planner.Logger's shape
// structurally so a planner.Logger value can be passed straight through
// without eligibility importing planner (which would cycle back).
type Logger interface {
	Debug(event string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}

func pickLogger(loggers []Logger) Logger {
	for _, l := range loggers {
		if l != nil {
			return l
		}
	}
	return noopLogger{}
}

// levelMarkers are course-name suffixes indicating a follow-on level of an
// existing course (the heuristic "level check").
var levelMarkers = []string{" ii", " iii", " avanzada", " avanzado"}

// Caps bounds how many more CFG and free-elective courses a student may
// still take. Zero values mean "no cap" is NOT the
// default — Filter always applies the built-in caps (4 CFGs, 3 free
// electives total) minus what is already approved; Caps communicates how
// many of each the student has already approved.
type Caps struct {
	ApprovedCFGs          int
	ApprovedFreeElectives int
}

const (
	maxCFGs          = 4
	maxFreeElectives = 3
)

// IsCFG and IsFreeElective let the host classify catalog/offering entries;
// Filter needs this per-course classification to enforce caps, but Course
// itself only carries IsElective. The Section-level IsCFG flag belongs to
// offerings, not courses, so Filter takes classifier functions instead of
// assuming catalog.Course carries them.
type Classifier struct {
	IsCFG          func(c *catalog.Course) bool
	IsFreeElective func(c *catalog.Course) bool
}

// Filter computes eligible course IDs.
//
// approvedIdentifiers are already equivalence-mapped codes or names (see
// package prereq's Equivalences.Apply). cat must have had
// ApplyPrerequisites called already (absent/unknown prerequisite data
// excludes a course). An identifier that matches no course is ignored
// (treated as if never approved) and logged to logger, if given.
func Filter(cat *catalog.Catalog, approvedIdentifiers []string, caps Caps, cls Classifier, logger ...Logger) map[int]struct{} {
	approvedIDs, maxApprovedSemester := approvedSet(cat, approvedIdentifiers, pickLogger(logger))
	newStudent := len(approvedIDs) == 0

	eligible := make(map[int]struct{})
	remainingCFGs := maxCFGs - caps.ApprovedCFGs
	remainingFreeElectives := maxFreeElectives - caps.ApprovedFreeElectives

	usedCFGs, usedFreeElectives := 0, 0

	for _, crs := range cat.AllCourses() {
		if _, approved := approvedIDs[crs.ID]; approved {
			continue
		}
		if crs.Semester > 0 && crs.Semester > maxApprovedSemester+2 {
			continue
		}

		if !crs.PrereqsKnown {
			continue
		}

		if newStudent {
			if crs.Semester != 1 && crs.Semester != 2 {
				continue
			}
		} else {
			if !allApproved(crs.Prerequisites, approvedIDs) {
				continue
			}
		}

		if !levelCheckPasses(cat, crs, approvedIDs) {
			continue
		}

		if cls.IsCFG != nil && cls.IsCFG(crs) {
			if usedCFGs >= remainingCFGs {
				continue
			}
			usedCFGs++
		}
		if cls.IsFreeElective != nil && cls.IsFreeElective(crs) {
			if usedFreeElectives >= remainingFreeElectives {
				continue
			}
			usedFreeElectives++
		}

		eligible[crs.ID] = struct{}{}
	}

	return eligible
}

// ApprovedIDs resolves approvedIdentifiers (equivalence-mapped codes or
// names) to catalog course IDs, the same matching Filter uses internally.
// Exported so callers can classify the approved set (e.g. counting CFGs
// and free electives) without duplicating the matching logic.
func ApprovedIDs(cat *catalog.Catalog, approvedIdentifiers []string) map[int]struct{} {
	ids, _ := approvedSet(cat, approvedIdentifiers, noopLogger{})
	return ids
}

// approvedSet builds the set of approved course IDs (matched by uppercase
// code or normalized name) and the max semester among them. Every
// identifier that matches no course in cat is logged as a Debug event and
// otherwise ignored.
func approvedSet(cat *catalog.Catalog, approvedIdentifiers []string, logger Logger) (map[int]struct{}, int) {
	approvedIDs := make(map[int]struct{}, len(approvedIdentifiers))
	maxSemester := 0

	normalizedIdentifiers := make(map[string]struct{}, len(approvedIdentifiers))
	upperIdentifiers := make(map[string]struct{}, len(approvedIdentifiers))
	for _, id := range approvedIdentifiers {
		normalizedIdentifiers[catalog.NormalizedKey(id)] = struct{}{}
		upperIdentifiers[strings.ToUpper(strings.TrimSpace(id))] = struct{}{}
	}

	matchedNormalized := make(map[string]struct{}, len(approvedIdentifiers))
	matchedUpper := make(map[string]struct{}, len(approvedIdentifiers))

	for _, crs := range cat.AllCourses() {
		upperCode := strings.ToUpper(crs.Code)
		normalizedName := catalog.NormalizedKey(crs.Name)
		_, byCode := upperIdentifiers[upperCode]
		_, byName := normalizedIdentifiers[normalizedName]
		if (crs.Code != "" && byCode) || byName {
			approvedIDs[crs.ID] = struct{}{}
			if crs.Semester > maxSemester {
				maxSemester = crs.Semester
			}
			if byCode {
				matchedUpper[upperCode] = struct{}{}
			}
			if byName {
				matchedNormalized[normalizedName] = struct{}{}
			}
		}
	}

	for _, id := range approvedIdentifiers {
		upper := strings.ToUpper(strings.TrimSpace(id))
		normalized := catalog.NormalizedKey(id)
		if _, ok := matchedUpper[upper]; ok {
			continue
		}
		if _, ok := matchedNormalized[normalized]; ok {
			continue
		}
		logger.Debug("eligibility.unknown_approved_identifier", map[string]any{"identifier": id})
	}

	return approvedIDs, maxSemester
}

func allApproved(prereqs map[int]struct{}, approvedIDs map[int]struct{}) bool {
	for id := range prereqs {
		if _, ok := approvedIDs[id]; !ok {
			return false
		}
	}
	return true
}

// levelCheckPasses implements the heuristic level check: if crs.Name
// ends with a level marker ("II", "III", "avanzada", ...), the base course
// (name with the marker stripped) must also be approved.
func levelCheckPasses(cat *catalog.Catalog, crs *catalog.Course, approvedIDs map[int]struct{}) bool {
	lower := " " + strings.ToLower(crs.Name)
	for _, marker := range levelMarkers {
		if strings.HasSuffix(lower, marker) {
			baseName := strings.TrimSpace(lower[:len(lower)-len(marker)])
			base, ok := cat.ByNormalizedName(baseName)
			if !ok {
				// Base course unknown to the catalog: cannot verify, so
				// conservatively allow (only the approved check on the
				// level course's own declared prerequisites applies).
				return true
			}
			if _, approved := approvedIDs[base.ID]; !approved {
				return false
			}
		}
	}
	return true
}

