package clique

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultTopK is the number of diverse schedules the planner produces
// when the request does not override it.
const DefaultTopK = 10

// minViableCliqueSize: the search loop terminates once the best clique it
// can still find has at most this many nodes.
const minViableCliqueSize = 2

// Schedule is one emitted result: the selected sections (with their
// priorities at emission time) and the total score.
type Schedule struct {
	Nodes      []Node
	TotalScore int
}

// FindTopK runs the top-K diversified clique search loop: search the best
// clique, evaluate it against the deduplication and line-balance filters,
// emit or penalize, and repeat until k schedules are collected, the best
// remaining clique has size <= minViableCliqueSize, or totalBudget is
// exhausted (zero means unbounded).
func FindTopK(g *Graph, ctx *Context, k int, totalBudget time.Duration) []Schedule {
	return FindTopKWithSeeds(g, ctx, k, totalBudget, 0, SeedCount, 0)
}

// FindTopKWithSeeds is FindTopK with explicit per-search and total
// budgets, an explicit seed count, and a heuristic fast-path threshold
// (0 disables it), letting package planner's tunables override the
// defaults.
func FindTopKWithSeeds(g *Graph, ctx *Context, k int, totalBudget, perSearchCap time.Duration, seedCount, heuristicThreshold int) []Schedule {
	if k <= 0 {
		k = DefaultTopK
	}

	var deadline time.Time
	if totalBudget > 0 {
		deadline = time.Now().Add(totalBudget)
	}

	seen := make(map[string]struct{})
	var schedules []Schedule

	available := g.All()

	for len(schedules) < k {
		var perSearchBudget time.Duration
		if !deadline.IsZero() {
			perSearchBudget = time.Until(deadline)
			if perSearchBudget <= 0 {
				break
			}
		}
		if perSearchCap > 0 && (perSearchBudget <= 0 || perSearchCap < perSearchBudget) {
			perSearchBudget = perSearchCap
		}

		found := SearchBestMultiSeedAuto(g, available, perSearchBudget, seedCount, heuristicThreshold)
		if len(found.Nodes) <= minViableCliqueSize {
			break
		}

		sorted := append([]int(nil), found.Nodes...)
		sort.Ints(sorted)
		key := canonicalKey(sorted)

		if _, dup := seen[key]; dup {
			g.HalvePriorities(found.Nodes)
			continue
		}

		if !MatchesLineBalance(ctx, g, found.Nodes) {
			g.HalvePriorities(found.Nodes)
			continue
		}

		seen[key] = struct{}{}
		schedules = append(schedules, toSchedule(g, found))
		g.HalvePriorities(found.Nodes)
	}

	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].TotalScore > schedules[j].TotalScore
	})

	return schedules
}

func canonicalKey(sortedIndices []int) string {
	parts := make([]string, len(sortedIndices))
	for i, v := range sortedIndices {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func toSchedule(g *Graph, found Found) Schedule {
	nodes := make([]Node, len(found.Nodes))
	for i, idx := range found.Nodes {
		nodes[i] = g.Nodes[idx]
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Section.Code != nodes[j].Section.Code {
			return nodes[i].Section.Code < nodes[j].Section.Code
		}
		return nodes[i].Section.SectionID < nodes[j].Section.SectionID
	})
	return Schedule{Nodes: nodes, TotalScore: found.Sum}
}
