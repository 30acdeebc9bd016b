package clique

import (
	"strconv"
	"strings"

	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/normalize"
)

const (
	criticalWeight   = 10000
	criticalBonus    = 10
	slackWeight      = 1000
	slackBaseline    = 10
	sequenceWeight   = 100
	sequenceBaseline = 60
	sectionIDWeight  = 10

	namedSequenceOverride = 53
	namedSectionOverride  = 20

	defaultDifficultyBonus = 5

	preferredRangeBonus  = 2000
	minimizeGapsPenalty  = 500
	minimizeGapsBaseline = 2
	instructorBonus      = 3000
)

// Context carries the request-derived data the priority formula and the
// hard-exclusion checks need: manual boosts, preferred/forbidden ranges,
// free-day preferences and instructor preferences.
type Context struct {
	// ManualBoosts maps a normalized course name or uppercased code (as
	// supplied in priority_courses) to the extra boost added on top of the
	// named-course override constants.
	ManualBoosts map[string]int

	PreferredRanges []TimeRange
	ForbiddenRanges []TimeRange
	FreeDays        map[string]struct{}

	MinimizeGaps bool

	PreferredInstructors map[string]struct{}
	AvoidedInstructors   map[string]struct{}

	NoTBA bool

	MinGapMinutes int

	// LineBalance maps a curricular line name to its target fraction of
	// the schedule's slots (the line-balance post-filter). LineOf
	// classifies a course into its line name; both must be set for the
	// filter to apply.
	LineBalance map[string]float64
	LineOf      func(crs *catalog.Course) string
}

// namedBoost returns the manual boost for crs and whether crs was named in
// priority_courses at all (by code or by normalized name).
func (ctx *Context) namedBoost(crs *catalog.Course) (int, bool) {
	if ctx == nil || ctx.ManualBoosts == nil {
		return 0, false
	}
	if crs.Code != "" {
		if boost, ok := ctx.ManualBoosts[strings.ToUpper(crs.Code)]; ok {
			return boost, true
		}
	}
	if boost, ok := ctx.ManualBoosts[normalize.Name(crs.Name)]; ok {
		return boost, true
	}
	return 0, false
}

// minGapMinutes returns ctx's configured minimum gap, or 0 (disabled) for
// a nil Context.
func (ctx *Context) minGapMinutes() int {
	if ctx == nil {
		return 0
	}
	return ctx.MinGapMinutes
}

// IsExcluded reports the "unconditional hard exclusion" clause of the
// priority formula: sections violating free-day preferences, forbidden
// time ranges, or the no-TBA flag never enter the compatibility graph.
func (ctx *Context) IsExcluded(sec *catalog.Section) bool {
	if ctx == nil {
		return false
	}
	if ctx.NoTBA && isTBA(sec) {
		return true
	}
	for _, b := range sec.Schedule {
		if _, free := ctx.FreeDays[b.Day]; free {
			return true
		}
		for _, r := range ctx.ForbiddenRanges {
			if r.HasDay(b.Day) && overlaps(b.StartMinute, b.EndMinute, r.StartMinute, r.EndMinute) {
				return true
			}
		}
	}
	return false
}

// Priority computes the integer priority of offering section sec for
// course crs, per the weighted formula combining criticality, slack,
// sequence position, section ordinal, historical difficulty and
// schedule-preference bonuses.
func Priority(ctx *Context, crs *catalog.Course, sec *catalog.Section) int {
	p := 0
	if crs.IsCritical {
		p += criticalWeight * criticalBonus
	}
	p += slackWeight * (slackBaseline - crs.Slack)

	boost, named := ctx.namedBoost(crs)
	if named {
		p += namedSequenceOverride + boost
	} else {
		p += sequenceWeight * (sequenceBaseline - crs.SequenceNumber)
	}

	secID, err := strconv.Atoi(sec.SectionID)
	if err != nil {
		secID = 0
	}
	if named {
		p += namedSectionOverride + boost
	} else {
		p += sectionIDWeight * secID
	}

	if crs.Difficulty != nil {
		p += int((100 - *crs.Difficulty) / 10)
	} else {
		p += defaultDifficultyBonus
	}

	p += scheduleBonus(ctx, sec)

	return p
}

func scheduleBonus(ctx *Context, sec *catalog.Section) int {
	if ctx == nil {
		return 0
	}

	bonus := 0

	for _, r := range ctx.PreferredRanges {
		for _, b := range sec.Schedule {
			if r.HasDay(b.Day) && contains(r.StartMinute, r.EndMinute, b.StartMinute, b.EndMinute) {
				bonus += preferredRangeBonus
			}
		}
	}

	if ctx.MinimizeGaps {
		daysUsed := sectionDayCount(sec)
		bonus -= minimizeGapsPenalty * (daysUsed - minimizeGapsBaseline)
	}

	instructor := strings.ToUpper(strings.TrimSpace(sec.Instructor))
	if instructor != "" {
		if _, preferred := ctx.PreferredInstructors[instructor]; preferred {
			bonus += instructorBonus
		}
		if _, avoided := ctx.AvoidedInstructors[instructor]; avoided {
			bonus -= instructorBonus
		}
	}

	return bonus
}

func sectionDayCount(sec *catalog.Section) int {
	seen := make(map[string]struct{})
	for _, b := range sec.Schedule {
		seen[b.Day] = struct{}{}
	}
	return len(seen)
}
