// Package prereq implements the Prerequisite Resolver (C2): parsing
// free-text prerequisite-spec cells and the implicit sequence-number
// fallback into a CourseID -> set(CourseID) dependency map, plus the
// equivalence table used to translate an older curriculum's course codes
// onto the current plan.
//
// Resolution order for each token:
//  1. Whitespace/dash-only -> skip (no explicit prerequisite).
//  2. Digit runs that parse to a known course ID -> prerequisite by ID.
//  3. Else normalize and look up as a course name.
//  4. Else compare to each course's Code field (case-sensitive).
//  5. Unresolved tokens are logged and dropped, unless Strict is set, in
//     which case Resolve returns ErrUnresolvableToken.
//
// Complexity: O(C*T) where C is course count and T is average token count
// per prerequisite-spec cell (course-by-code lookup is a linear scan, but
// T and course-per-plan counts are small in practice).
package prereq

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quickshift/plannercore/catalog"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Logger is the narrow logging surface Resolve uses for its unresolved-
// token policy point. It mirrors planner.Logger's shape structurally so a
// planner.Logger value can be passed straight through without prereq
// importing planner (which would cycle back).
type Logger interface {
	Debug(event string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}

// Options configures Resolve.
type Options struct {
	// Strict, when true, makes Resolve fail with ErrUnresolvableToken on
	// the first token it cannot resolve. Default (false) drops and logs.
	Strict bool

	// Logger receives one Debug event per dropped, unresolved token. Nil
	// (the zero value) is silent.
	Logger Logger
}

// Resolve builds the prerequisite map for every course in cat, given the
// curriculum rows that carry the free-text PrerequisiteSpec and
// SequenceNumber columns (catalog.Course does not retain these; they are
// sourced from the same rows Fuse consumed).
//
// Returns CourseID -> set(CourseID). Rows whose course is not present in
// cat (e.g. dropped during fusion) are skipped.
func Resolve(cat *catalog.Catalog, rows []catalog.CurriculumRow, opts Options) (map[int]map[int]struct{}, error) {
	result := make(map[int]map[int]struct{}, len(rows))

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	// Index for the sequence-number fallback.
	bySeq := make(map[int][]int) // sequence number -> course IDs
	for _, crs := range cat.AllCourses() {
		bySeq[crs.SequenceNumber] = append(bySeq[crs.SequenceNumber], crs.ID)
	}

	for _, row := range rows {
		crs, ok := cat.ByID(row.ID)
		if !ok {
			continue
		}

		set, err := resolveSpec(cat, row.PrerequisiteSpec, opts.Strict, logger)
		if err != nil {
			return nil, err
		}

		if len(set) == 0 && row.PrerequisiteSpec == "" {
			// Fallback: sequence_number k implies a prerequisite on any
			// course at sequence_number k-1, only if no explicit
			// prerequisite resolved.
			if prevIDs, ok := bySeq[crs.SequenceNumber-1]; ok {
				for _, prevID := range prevIDs {
					if prevID == crs.ID {
						continue
					}
					if set == nil {
						set = make(map[int]struct{})
					}
					set[prevID] = struct{}{}
				}
			}
		}

		result[row.ID] = set
	}

	return result, nil
}

// resolveSpec parses one prerequisite-spec cell into a set of course IDs.
func resolveSpec(cat *catalog.Catalog, spec string, strict bool, logger Logger) (map[int]struct{}, error) {
	if spec == "" {
		return nil, nil
	}

	tokens := splitTokens(spec)
	var set map[int]struct{}

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || isDashOnly(tok) {
			continue
		}

		if ids := resolveByDigits(cat, tok); len(ids) > 0 {
			set = mergeIDs(set, ids)
			continue
		}

		if crs, ok := cat.ByNormalizedName(tok); ok {
			set = mergeIDs(set, []int{crs.ID})
			continue
		}

		if id, ok := resolveByCode(cat, tok); ok {
			set = mergeIDs(set, []int{id})
			continue
		}

		if strict {
			return nil, ErrUnresolvableToken
		}
		logger.Debug("prereq.unresolved_token_dropped", map[string]any{"token": tok})
	}

	return set, nil
}

func splitTokens(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ';' })
}

func isDashOnly(tok string) bool {
	for _, r := range tok {
		if r != '-' && r != '—' && r != '–' && !isSpace(r) {
			return false
		}
	}
	return true
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// resolveByDigits extracts decimal digit runs from tok and returns the
// subset that parse to known course IDs in cat.
func resolveByDigits(cat *catalog.Catalog, tok string) []int {
	matches := digitRun.FindAllString(tok, -1)
	if len(matches) == 0 {
		return nil
	}
	var ids []int
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if _, ok := cat.ByID(n); ok {
			ids = append(ids, n)
		}
	}
	return ids
}

// resolveByCode compares tok, case-sensitively, against every course's
// Code field.
func resolveByCode(cat *catalog.Catalog, tok string) (int, bool) {
	for _, crs := range cat.AllCourses() {
		if crs.Code != "" && crs.Code == tok {
			return crs.ID, true
		}
	}
	return 0, false
}

func mergeIDs(set map[int]struct{}, ids []int) map[int]struct{} {
	if set == nil {
		set = make(map[int]struct{}, len(ids))
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
