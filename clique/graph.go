package clique

import (
	"sort"

	"github.com/quickshift/plannercore/catalog"
)

// Node is one vertex of the compatibility graph: an offered section paired
// with the course it fulfills and its computed priority.
type Node struct {
	Index    int
	Section  *catalog.Section
	Course   *catalog.Course
	Priority int
}

// Graph is the compatibility graph G = (V, E): nodes are sections of
// eligible courses — CFGs and electives included, since package
// eligibility already admits them subject to their caps — and an edge
// exists between two nodes iff they are neither mutually exclusive nor
// time-conflicting.
type Graph struct {
	Nodes []Node
	Adj   []Bitset
}

// BuildGraph selects the candidate sections, computes their priorities,
// and builds the compatibility graph. Sections are ordered by
// (course_code, section_id) ascending before assigning node indices, the
// deterministic order the clique search and output depend on.
func BuildGraph(cat *catalog.Catalog, eligible map[int]struct{}, sections []*catalog.Section, ctx *Context) *Graph {
	idx := buildCourseIndex(cat)

	type candidate struct {
		sec *catalog.Section
		crs *catalog.Course
	}
	var candidates []candidate

	for _, sec := range sections {
		crs, found := idx.resolve(sec)
		if !found {
			continue
		}

		// V = sections of eligible courses, where "eligible" already
		// accounts for CFG/free-elective caps (package eligibility
		// excludes a CFG or elective course once its cap is spent); a
		// section's IsCFG/IsElective flags classify it, they do not grant
		// a bypass around that cap.
		if _, isEligible := eligible[crs.ID]; !isEligible {
			continue
		}

		if ctx.IsExcluded(sec) {
			continue
		}

		candidates = append(candidates, candidate{sec: sec, crs: crs})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].sec.Code != candidates[j].sec.Code {
			return candidates[i].sec.Code < candidates[j].sec.Code
		}
		return candidates[i].sec.SectionID < candidates[j].sec.SectionID
	})

	g := &Graph{Nodes: make([]Node, len(candidates))}
	for i, c := range candidates {
		g.Nodes[i] = Node{
			Index:    i,
			Section:  c.sec,
			Course:   c.crs,
			Priority: Priority(ctx, c.crs, c.sec),
		}
	}

	minGap := ctx.minGapMinutes()

	n := len(g.Nodes)
	g.Adj = make([]Bitset, n)
	for i := range g.Adj {
		g.Adj[i] = NewBitset(n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if compatible(g.Nodes[i].Section, g.Nodes[j].Section) &&
				minGapSatisfied(g.Nodes[i].Section, g.Nodes[j].Section, minGap) {
				g.Adj[i].Set(j)
				g.Adj[j].Set(i)
			}
		}
	}

	return g
}

// All returns the full-graph bitset (every node index set).
func (g *Graph) All() Bitset {
	b := NewBitset(len(g.Nodes))
	for i := range g.Nodes {
		b.Set(i)
	}
	return b
}

// minHalvedPriority is the floor the diversification pass clamps
// halved priorities to, so a repeatedly-emitted node still stays a viable
// (if unattractive) candidate rather than dropping to zero or negative.
const minHalvedPriority = 100

// HalvePriorities halves the priority of every node in indices (floor
// minHalvedPriority), the diversification step the top-K loop applies to
// an emitted or rejected clique before searching again.
func (g *Graph) HalvePriorities(indices []int) {
	for _, i := range indices {
		p := g.Nodes[i].Priority / 2
		if p < minHalvedPriority {
			p = minHalvedPriority
		}
		g.Nodes[i].Priority = p
	}
}
