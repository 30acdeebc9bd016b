package clique

import (
	"sort"
	"time"
)

// defaultMaxCliqueSize bounds schedule size: a schedule never carries more
// than six sections.
const defaultMaxCliqueSize = 6

// Found is one clique search outcome: the node indices selected and the
// sum of their priorities.
type Found struct {
	Nodes []int
	Sum   int
}

type searchState struct {
	g        *Graph
	seed     int
	deadline time.Time
	aborted  bool
	best     Found
}

// SearchBest runs one Bron-Kerbosch-with-pivot pass, pivoting on the
// vertex of P∪X with maximum |N(v)∩P| and using bitset intersections
// throughout, restricted to the available node set. It returns the
// highest-priority-sum clique of size up to defaultMaxCliqueSize found
// before budget elapses (zero budget means no time limit).
//
// seed perturbs tie-breaking among equal-priority candidates
// (node_index XOR seed, descending) so repeated calls with different
// seeds explore different frontiers — the "seed diversification" pass.
func SearchBest(g *Graph, available Bitset, budget time.Duration, seed int) Found {
	st := &searchState{g: g, seed: seed}
	if budget > 0 {
		st.deadline = time.Now().Add(budget)
	}

	P := available.Clone()
	X := NewBitset(len(g.Nodes))
	st.expand(nil, 0, P, X)
	return st.best
}

func (st *searchState) timeUp() bool {
	if st.deadline.IsZero() {
		return false
	}
	if st.aborted {
		return true
	}
	if time.Now().After(st.deadline) {
		st.aborted = true
		return true
	}
	return false
}

func (st *searchState) considerComplete(r []int, sum int) {
	if len(st.best.Nodes) == 0 || sum > st.best.Sum {
		nodes := make([]int, len(r))
		copy(nodes, r)
		st.best = Found{Nodes: nodes, Sum: sum}
	}
}

func (st *searchState) expand(r []int, sum int, p, x Bitset) {
	if st.timeUp() {
		return
	}

	if len(r) > 0 {
		st.considerComplete(r, sum)
	}

	if len(r) >= defaultMaxCliqueSize || p.IsEmpty() {
		return
	}

	remaining := defaultMaxCliqueSize - len(r)
	if len(st.best.Nodes) > 0 && sum+st.upperBound(p, remaining) <= st.best.Sum {
		return
	}

	pivot := st.choosePivot(p, x)
	var pivotNeighbors Bitset
	if pivot >= 0 {
		pivotNeighbors = st.g.Adj[pivot]
	} else {
		pivotNeighbors = NewBitset(len(st.g.Nodes))
	}
	order := st.orderCandidates(p.AndNot(pivotNeighbors))

	workingP := p.Clone()
	workingX := x.Clone()

	for _, v := range order {
		if st.timeUp() {
			return
		}

		newR := make([]int, len(r)+1)
		copy(newR, r)
		newR[len(r)] = v

		newP := workingP.And(st.g.Adj[v])
		newX := workingX.And(st.g.Adj[v])
		st.expand(newR, sum+st.g.Nodes[v].Priority, newP, newX)

		workingP.Clear(v)
		workingX.Set(v)
	}
}

// choosePivot returns the vertex in p∪x with maximum |N(v) ∩ p|, or -1 if
// both are empty.
func (st *searchState) choosePivot(p, x Bitset) int {
	best, bestCount := -1, -1
	for _, v := range p.Or(x).Bits() {
		count := st.g.Adj[v].And(p).Count()
		if count > bestCount {
			best, bestCount = v, count
		}
	}
	return best
}

// orderCandidates sorts candidate node indices by priority descending,
// breaking ties by (node_index XOR seed) descending.
func (st *searchState) orderCandidates(candidates Bitset) []int {
	nodes := candidates.Bits()
	sort.Slice(nodes, func(i, j int) bool {
		pi, pj := st.g.Nodes[nodes[i]].Priority, st.g.Nodes[nodes[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return (nodes[i] ^ st.seed) > (nodes[j] ^ st.seed)
	})
	return nodes
}

// upperBound estimates the best additional priority sum obtainable from
// at most `slots` more nodes drawn from p — the sum of the top `slots`
// priorities among p's members. Used only to prune branches that cannot
// possibly beat the current best.
func (st *searchState) upperBound(p Bitset, slots int) int {
	priorities := make([]int, 0, p.Count())
	for _, v := range p.Bits() {
		priorities = append(priorities, st.g.Nodes[v].Priority)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(priorities)))
	if slots > len(priorities) {
		slots = len(priorities)
	}
	sum := 0
	for i := 0; i < slots; i++ {
		sum += priorities[i]
	}
	return sum
}

// greedyBest builds one clique by walking available nodes in
// priority-descending order (seed-perturbed tie-break, matching
// orderCandidates) and keeping every node still compatible with everything
// chosen so far. It never backtracks, so it can miss the true maximum, but
// it runs in a single pass over the node set regardless of graph density.
func greedyBest(g *Graph, available Bitset, seed int) Found {
	nodes := available.Bits()
	sort.Slice(nodes, func(i, j int) bool {
		pi, pj := g.Nodes[nodes[i]].Priority, g.Nodes[nodes[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return (nodes[i] ^ seed) > (nodes[j] ^ seed)
	})

	var chosen []int
	sum := 0
	for _, v := range nodes {
		if len(chosen) >= defaultMaxCliqueSize {
			break
		}
		compatible := true
		for _, c := range chosen {
			if !g.Adj[c].Test(v) {
				compatible = false
				break
			}
		}
		if compatible {
			chosen = append(chosen, v)
			sum += g.Nodes[v].Priority
		}
	}
	return Found{Nodes: chosen, Sum: sum}
}

// greedyMultiSeed runs greedyBest across seedCount seeds and keeps the
// best-scoring result, the same multi-restart shape as
// SearchBestMultiSeedN.
func greedyMultiSeed(g *Graph, available Bitset, seedCount int) Found {
	if seedCount <= 0 {
		seedCount = SeedCount
	}
	var best Found
	for seed := 0; seed < seedCount; seed++ {
		found := greedyBest(g, available, seed)
		if len(best.Nodes) == 0 || found.Sum > best.Sum {
			best = found
		}
	}
	return best
}

// SearchBestMultiSeedAuto is SearchBestMultiSeedN, except it substitutes
// greedyMultiSeed's single-pass construction whenever heuristicThreshold
// is positive and the graph exceeds it — the fast path for compatibility
// graphs too large to search exactly within the per-search budget. A
// non-positive threshold always takes the exact path.
func SearchBestMultiSeedAuto(g *Graph, available Bitset, budget time.Duration, seedCount, heuristicThreshold int) Found {
	if heuristicThreshold > 0 && len(g.Nodes) > heuristicThreshold {
		return greedyMultiSeed(g, available, seedCount)
	}
	return SearchBestMultiSeedN(g, available, budget, seedCount)
}

// SeedCount is the number of distinct tie-break seeds tried per search
// round (typically 8).
const SeedCount = 8

// SearchBestMultiSeed runs SearchBest with SeedCount distinct seeds and
// keeps the best clique across all of them.
func SearchBestMultiSeed(g *Graph, available Bitset, budget time.Duration) Found {
	return SearchBestMultiSeedN(g, available, budget, SeedCount)
}

// SearchBestMultiSeedN is SearchBestMultiSeed with an explicit seed count,
// letting callers (package planner's seedAttempts tunable) override the
// default of SeedCount.
func SearchBestMultiSeedN(g *Graph, available Bitset, budget time.Duration, seedCount int) Found {
	if seedCount <= 0 {
		seedCount = SeedCount
	}
	var best Found
	for seed := 0; seed < seedCount; seed++ {
		found := SearchBest(g, available, budget, seed)
		if len(best.Nodes) == 0 || found.Sum > best.Sum {
			best = found
		}
	}
	return best
}
