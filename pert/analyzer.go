// Package pert implements the PERT Analyzer (C4): a forward/backward pass
// over the prerequisite dependency graph that assigns every course an
// earliest/latest start and finish, a slack, and a critical-path flag.
//
// Every course is modeled as a unit-duration PERT activity (one semester).
// Edges are added for two relations: an explicit prerequisite (u must
// finish before v starts) and a curriculum sequence number (course at
// sequence n is assumed to precede sequence n+1 in the same plan unless a
// direct prerequisite edge already runs the other way, keeping
// otherwise-unconnected courses anchored to their intended teaching
// order). Longer reverse prerequisite paths are not checked, so a sequence
// edge can still close a cycle.
//
// If the graph is cyclic (malformed input data), Analyze does not fail:
// it falls back to a fixed 3-pass relaxation that approximates ES/EF/LS/LF,
// and reports Result.Cyclic = true so callers can log the degradation.
package pert

import (
	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/dag"
)

const unitDuration = 1

// Node carries the PERT timing data computed for one course.
type Node struct {
	CourseID int
	ES, EF   int // earliest start / finish
	LS, LF   int // latest start / finish
	Slack    int
	Critical bool
}

// Result is the outcome of one Analyze call.
type Result struct {
	Nodes       map[int]*Node
	Order       []int // topological order; when Cyclic, only the vertices Kahn's algorithm could order
	Cyclic      bool
	ProjectSpan int // EF of the overall plan (max EF across all nodes)
}

// Analyze builds the dependency graph for cat's courses and runs the PERT
// forward/backward pass. The returned Result.Nodes are not written back
// onto cat; call WriteBack to do that.
func Analyze(cat *catalog.Catalog) *Result {
	g := buildGraph(cat)

	order, acyclic := g.TopologicalSort()

	res := &Result{
		Nodes:  make(map[int]*Node, len(order)),
		Cyclic: !acyclic,
	}
	for _, id := range g.Vertices() {
		res.Nodes[id] = &Node{CourseID: id}
	}

	if acyclic {
		res.Order = order
		forwardPass(g, order, res.Nodes)
	} else {
		res.Order = order
		relaxForward(g, res.Nodes)
	}

	span := 0
	for _, n := range res.Nodes {
		if n.EF > span {
			span = n.EF
		}
	}
	res.ProjectSpan = span

	if acyclic {
		backwardPass(g, order, res.Nodes, span)
	} else {
		relaxBackward(g, res.Nodes, span)
	}

	for _, n := range res.Nodes {
		n.Slack = n.LS - n.ES
		n.Critical = n.Slack == 0
	}

	return res
}

// WriteBack stores each node's IsCritical/Slack onto the matching
// catalog.Course. Courses absent from the result (should not happen for a
// catalog produced by Analyze's own cat) are left untouched.
func (r *Result) WriteBack(cat *catalog.Catalog) {
	for id, n := range r.Nodes {
		if crs, ok := cat.ByID(id); ok {
			crs.IsCritical = n.Critical
			crs.Slack = n.Slack
		}
	}
}

func buildGraph(cat *catalog.Catalog) *dag.Graph {
	g := dag.New()

	courses := cat.AllCourses()
	for _, crs := range courses {
		g.AddVertex(crs.ID)
	}

	for _, crs := range courses {
		for prereqID := range crs.Prerequisites {
			g.AddEdge(prereqID, crs.ID)
		}
	}

	bySeq := make(map[int][]int) // sequence number -> course IDs at that sequence
	for _, crs := range courses {
		if crs.SequenceNumber > 0 {
			bySeq[crs.SequenceNumber] = append(bySeq[crs.SequenceNumber], crs.ID)
		}
	}
	for seq, ids := range bySeq {
		nextIDs, ok := bySeq[seq+1]
		if !ok {
			continue
		}
		for _, u := range ids {
			for _, v := range nextIDs {
				if !g.HasEdge(v, u) { // don't introduce a cycle against an existing reverse prereq edge
					g.AddEdge(u, v)
				}
			}
		}
	}

	return g
}

func forwardPass(g *dag.Graph, order []int, nodes map[int]*Node) {
	for _, id := range order {
		es := 0
		for _, pred := range g.Predecessors(id) {
			if ef := nodes[pred].EF; ef > es {
				es = ef
			}
		}
		nodes[id].ES = es
		nodes[id].EF = es + unitDuration
	}
}

func backwardPass(g *dag.Graph, order []int, nodes map[int]*Node, span int) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		lf := span
		succs := g.Successors(id)
		if len(succs) > 0 {
			lf = nodes[succs[0]].LS
			for _, succ := range succs[1:] {
				if ls := nodes[succ].LS; ls < lf {
					lf = ls
				}
			}
		}
		nodes[id].LF = lf
		nodes[id].LS = lf - unitDuration
	}
}

// relaxForward approximates ES/EF on a cyclic graph by relaxing every edge
// a fixed number of times, the same pragmatic fallback the original
// PERT implementation used instead of refusing to produce a schedule.
func relaxForward(g *dag.Graph, nodes map[int]*Node) {
	const passes = 3
	vertices := g.Vertices()
	for i := 0; i < passes; i++ {
		for _, id := range vertices {
			es := nodes[id].ES
			for _, pred := range g.Predecessors(id) {
				if ef := nodes[pred].EF; ef > es {
					es = ef
				}
			}
			nodes[id].ES = es
			nodes[id].EF = es + unitDuration
		}
	}
}

func relaxBackward(g *dag.Graph, nodes map[int]*Node, span int) {
	const passes = 3
	vertices := g.Vertices()
	for _, id := range vertices {
		nodes[id].LF = span
	}
	for i := 0; i < passes; i++ {
		for j := len(vertices) - 1; j >= 0; j-- {
			id := vertices[j]
			lf := span
			succs := g.Successors(id)
			if len(succs) > 0 {
				lf = nodes[succs[0]].LS
				for _, succ := range succs[1:] {
					if ls := nodes[succ].LS; ls < lf {
						lf = ls
					}
				}
			}
			nodes[id].LF = lf
			nodes[id].LS = lf - unitDuration
		}
	}
}
