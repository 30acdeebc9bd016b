package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/quickshift/plannercore/normalize"
)

func normalizedName(s string) string { return normalize.Name(s) }

// Logger is the narrow logging surface Fuse uses for its "log, continue"
// policy points (duplicate historical row, ambiguous offering, elective
// slot with no historical instance). It mirrors planner.Logger's shape
// structurally so a planner.Logger value can be passed straight through
// without catalog importing planner (which would cycle back). A nil
// Logger is silent.
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

// historicalEntry is the per-name index built from HistoricalRow in Fuse
// step 1.
type historicalEntry struct {
	code           string
	passPercentage float64
	isElective     bool
}

// Fuse merges curriculum, offering and historical rows into a Catalog.
// Fuse never fails on ambiguous or missing cross-references; unresolved
// cells are left unset and logged to the optional logger (silent if
// omitted). It fails only when planID is empty (ErrEmptyPlanID) or two
// curriculum rows in the plan share an ID (ErrDuplicateCourseID).
func Fuse(planID string, curriculum []CurriculumRow, offerings []OfferingRow, historical []HistoricalRow, logger ...Logger) (*Catalog, error) {
	if planID == "" {
		return nil, ErrEmptyPlanID
	}
	log := pickLogger(logger)

	// Step 1: index historical rows by normalized name.
	histByName := make(map[string]historicalEntry, len(historical))
	for _, h := range historical {
		key := normalizedName(h.Name)
		if key == "" {
			continue
		}
		if _, exists := histByName[key]; exists {
			log.Debug("catalog.duplicate_historical_row", map[string]any{"plan": planID, "name": h.Name})
			continue
		}
		histByName[key] = historicalEntry{code: h.Code, passPercentage: h.PassPercentage, isElective: h.IsElective}
	}

	// Electives sorted by pass-percentage descending, for deterministic
	// slot assignment (step 3). Ties keep historical input order.
	electiveHist := make([]historicalEntry, 0)
	electiveHistName := make([]string, 0)
	addedElective := make(map[string]bool)
	for _, row := range historical {
		name := normalizedName(row.Name)
		h, ok := histByName[name]
		if !ok || !h.isElective || addedElective[name] {
			continue
		}
		addedElective[name] = true
		electiveHist = append(electiveHist, h)
		electiveHistName = append(electiveHistName, name)
	}
	sort.SliceStable(electiveHist, func(i, j int) bool {
		return electiveHist[i].passPercentage > electiveHist[j].passPercentage
	})

	// Step 2: apply offering codes on top of the historical index, keyed
	// by normalized name. Only accept codes containing at least one digit.
	codeByName := make(map[string]string, len(histByName))
	for key, h := range histByName {
		codeByName[key] = h.code
	}
	seenOfferingName := make(map[string]bool, len(offerings))
	codeToNormalizedName := make(map[string]string, len(offerings)) // for elective code_to_key lookup
	for _, o := range offerings {
		key := normalizedName(o.Name)
		if key == "" {
			continue
		}
		if !codeHasDigit(o.Code) {
			continue
		}
		if seenOfferingName[key] {
			log.Debug("catalog.ambiguous_offering", map[string]any{"plan": planID, "name": o.Name, "code": o.Code})
			continue
		}
		seenOfferingName[key] = true
		codeByName[key] = o.Code
		codeToNormalizedName[o.Code] = key
	}

	courses := make(map[string]*Course, len(curriculum))
	byID := make(map[int]*Course, len(curriculum))

	// Step 3: walk curriculum rows in row order (deterministic, per the
	// Design Notes' resolved open question on elective-slot ordering).
	ordered := make([]CurriculumRow, len(curriculum))
	copy(ordered, curriculum)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].RowIndex < ordered[j].RowIndex })

	electiveSlotCounter := 0
	for _, row := range ordered {
		if _, dup := byID[row.ID]; dup {
			return nil, ErrDuplicateCourseID
		}

		course := &Course{
			ID:             row.ID,
			Name:           row.Name,
			IsElective:     row.IsElective,
			SequenceNumber: row.SequenceNumber,
		}
		if row.Semester != nil {
			course.Semester = *row.Semester
		}

		if row.IsElective {
			key := electiveKey(row.ID)
			if electiveSlotCounter < len(electiveHist) {
				h := electiveHist[electiveSlotCounter]
				course.Code = h.code
				pct := h.passPercentage
				course.Difficulty = &pct
			} else {
				log.Debug("catalog.elective_slot_unassigned", map[string]any{"plan": planID, "course_id": row.ID})
			}
			electiveSlotCounter++
			courses[key] = course
			byID[row.ID] = course
			continue
		}

		key := normalizedName(row.Name)
		if code, ok := codeByName[key]; ok {
			course.Code = code
		}
		if h, ok := histByName[key]; ok {
			pct := h.passPercentage
			course.Difficulty = &pct
		}
		courses[key] = course
		byID[row.ID] = course
	}

	return &Catalog{PlanID: planID, Courses: courses, byID: byID, CodeToNormalizedName: codeToNormalizedName}, nil
}

// electiveKey builds the synthetic catalog key for an elective slot.
func electiveKey(slotID int) string {
	return "elective_" + strconv.Itoa(slotID)
}

func codeHasDigit(code string) bool {
	return strings.IndexFunc(code, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}
