package planner

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/clique"
	"github.com/quickshift/plannercore/eligibility"
	"github.com/quickshift/plannercore/pert"
	"github.com/quickshift/plannercore/prereq"
)

var validate = validator.New()

// priorityCourseBoost is the manual boost added on top of the named-
// course override constants for every course listed in
// Request.PriorityCourses. A single shared value is used for all named
// courses; it is not configurable per request.
const priorityCourseBoost = 10

// Plan is the scheduling engine's single entry point: it fuses the
// supplied rows (or reuses a cached catalog), resolves prerequisites,
// filters to eligible courses, runs the PERT analyzer, builds the
// compatibility graph over offered sections, and searches for up to topK
// (see WithTopK) diverse schedules.
func Plan(req Request, rows SourceRows, opts ...Option) (*Response, error) {
	cfg := newConfig(opts...)
	requestID := uuid.NewString()

	if err := validateRequest(req); err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidRequest, err.Error())
	}

	preferredRanges, forbiddenRanges, err := parseTimeRanges(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrInvalidRequest, "planner.Plan: parsing time ranges: %s", err.Error())
	}

	signature := planSignature(req.PlanID, req.Sheet)
	entry, err := globalCache.getOrBuild(signature, func() (*cachedPlan, error) {
		return buildCachedPlan(req.PlanID, rows, cfg.logger)
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "planner.Plan: loading plan %q", req.PlanID)
	}

	equivalences := prereq.NewEquivalences(rows.Equivalences)
	approved := equivalences.Apply(req.ApprovedCourses)
	priorityNamed := equivalences.Apply(req.PriorityCourses)

	classifier := classifyFromSections(entry.catalog, rows.Sections)
	caps := approvedCaps(entry.catalog, approved, classifier)

	eligible := eligibility.Filter(entry.catalog, approved, caps, classifier, cfg.logger)

	ctx := buildContext(req, priorityNamed, preferredRanges, forbiddenRanges)

	g := clique.BuildGraph(entry.catalog, eligible, rows.Sections, ctx)
	schedules := clique.FindTopKWithSeeds(g, ctx, cfg.topK, cfg.totalTimeBudget, cfg.cliqueTimeBudget, cfg.seedAttempts, cfg.heuristicThreshold)

	// An empty eligibility set, an exhausted clique search budget, or an
	// infeasible line-balance target all collapse to the same outcome: a
	// well-formed response with zero schedules, not an error. Plan only
	// errors on a malformed request or an unknown, unbuildable plan.
	return &Response{RequestID: requestID, Schedules: toResponseSchedules(schedules)}, nil
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.PlanID) == "" {
		return ErrInvalidRequest
	}
	return validate.Struct(req)
}

func parseTimeRanges(req Request) ([]clique.TimeRange, []clique.TimeRange, error) {
	preferred := make([]clique.TimeRange, 0, len(req.PreferredTimeRanges))
	for _, token := range req.PreferredTimeRanges {
		r, err := clique.ParseTimeRange(token)
		if err != nil {
			return nil, nil, err
		}
		preferred = append(preferred, r)
	}

	forbidden := make([]clique.TimeRange, 0, len(req.ForbiddenTimeRanges))
	for _, token := range req.ForbiddenTimeRanges {
		r, err := clique.ParseTimeRange(token)
		if err != nil {
			return nil, nil, err
		}
		forbidden = append(forbidden, r)
	}

	return preferred, forbidden, nil
}

func buildCachedPlan(planID string, rows SourceRows, log Logger) (*cachedPlan, error) {
	if len(rows.Curriculum) == 0 {
		return nil, ErrPlanNotFound
	}

	cat, err := catalog.Fuse(planID, rows.Curriculum, rows.Offerings, rows.Historical, log)
	if err != nil {
		return nil, err
	}

	resolved, err := prereq.Resolve(cat, rows.Curriculum, prereq.Options{Strict: false, Logger: log})
	if err != nil {
		return nil, err
	}
	cat.ApplyPrerequisites(resolved)

	result := pert.Analyze(cat)
	if result.Cyclic {
		log.Warn("pert.cyclic_fallback", map[string]any{"plan_id": planID})
	}
	result.WriteBack(cat)

	return &cachedPlan{catalog: cat, pert: result}, nil
}

func buildContext(req Request, priorityNamed []string, preferred, forbidden []clique.TimeRange) *clique.Context {
	ctx := &clique.Context{
		ManualBoosts:    make(map[string]int, len(priorityNamed)),
		PreferredRanges: preferred,
		ForbiddenRanges: forbidden,
	}

	for _, name := range priorityNamed {
		ctx.ManualBoosts[strings.ToUpper(strings.TrimSpace(name))] = priorityCourseBoost
		ctx.ManualBoosts[catalog.NormalizedKey(name)] = priorityCourseBoost
	}

	if req.Filters.FreeDays.Enabled {
		ctx.FreeDays = make(map[string]struct{}, len(req.Filters.FreeDays.Days))
		for _, d := range req.Filters.FreeDays.Days {
			ctx.FreeDays[strings.ToUpper(d)] = struct{}{}
		}
		ctx.NoTBA = true
	}

	if req.Filters.MinGap.Enabled {
		ctx.MinGapMinutes = req.Filters.MinGap.Minutes
	}

	if req.Filters.InstructorPrefs.Enabled {
		ctx.PreferredInstructors = toUpperSet(req.Filters.InstructorPrefs.Preferred)
		ctx.AvoidedInstructors = toUpperSet(req.Filters.InstructorPrefs.Avoided)
	}

	if req.Filters.LineBalance.Enabled {
		ctx.LineBalance = req.Filters.LineBalance.Targets
		ctx.LineOf = courseLine
	}

	for _, tag := range req.Optimizations {
		if strings.EqualFold(tag, "minimize-gaps") {
			ctx.MinimizeGaps = true
		}
	}

	return ctx
}

func toUpperSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToUpper(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

// courseLine derives a curricular line name from a course's code prefix,
// the closest stand-in the catalog offers for a line_name classification
// (the request only supplies target fractions, not a line taxonomy).
func courseLine(crs *catalog.Course) string {
	if crs.Code != "" {
		for i, r := range crs.Code {
			if r >= '0' && r <= '9' {
				return crs.Code[:i]
			}
		}
		return crs.Code
	}
	return crs.Name
}

func toResponseSchedules(schedules []clique.Schedule) []ScheduleResult {
	out := make([]ScheduleResult, len(schedules))
	for i, s := range schedules {
		sections := make([]SectionResult, len(s.Nodes))
		for j, n := range s.Nodes {
			sections[j] = SectionResult{Section: *n.Section, Priority: n.Priority}
		}
		out[i] = ScheduleResult{TotalScore: s.TotalScore, Sections: sections}
	}
	return out
}
