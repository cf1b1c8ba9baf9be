// Package spantree_test verifies the MST strategies and the shared
// lifecycle: Kruskal/Prim correctness (including a brute-force minimality
// cross-check), forest behavior on disconnected graphs, tagging semantics,
// and the state rules around Bind/Compute/Clear.
package spantree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/spantree"
	"github.com/katalvlaran/spantree/unionfind"
)

// addWeighted inserts an undirected edge carrying a numeric weight property.
func addWeighted(t testing.TB, g *core.Graph, u, v string, w float64) *core.Edge {
	t.Helper()
	e, err := g.AddEdge(u, v)
	require.NoError(t, err)
	e.SetProperty(spantree.DefaultWeightLabel, w)

	return e
}

// buildTriangle constructs A-B(1), B-C(2), A-C(3); its MST is {A-B, B-C}
// with total weight 3.
func buildTriangle(t *testing.T) *core.Graph {
	g := core.NewGraph()
	addWeighted(t, g, "A", "B", 1)
	addWeighted(t, g, "B", "C", 2)
	addWeighted(t, g, "A", "C", 3)

	return g
}

// buildMediumGraph creates a connected weighted graph with n nodes: a
// random-weight chain for guaranteed connectivity plus extra random edges.
// Deterministically seeded so every run sees the same graph.
func buildMediumGraph(t testing.TB, n, extra int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))

	for i := 0; i < n; i++ {
		_, err := g.AddNode(fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}
	for i := 1; i < n; i++ {
		addWeighted(t, g, fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+float64(r.Intn(10))+r.Float64())
	}
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		addWeighted(t, g, fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+float64(r.Intn(100))+r.Float64())
		i++
	}

	return g
}

// drain consumes an EdgeSeq into a slice.
func drain(seq *spantree.EdgeSeq) []*core.Edge {
	var out []*core.Edge
	for {
		e, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// computeOn binds alg to g and computes, failing the test on any error.
func computeOn(t *testing.T, alg *spantree.Algorithm, g *core.Graph) {
	t.Helper()
	require.NoError(t, alg.Bind(g))
	require.NoError(t, alg.Compute())
}

// assertForest verifies the structural spanning-forest properties: acyclic
// (every edge joins two components) and edge count = nodes − components.
func assertForest(t *testing.T, g *core.Graph, edges []*core.Edge) {
	t.Helper()
	d := unionfind.New()
	for _, n := range g.Nodes() {
		d.MakeSet(n.ID)
	}
	for _, e := range edges {
		require.True(t, d.Union(e.From, e.To), "edge %s closes a cycle in the reported tree", e.ID)
	}

	// Full-graph connectivity for comparison.
	full := unionfind.New()
	for _, n := range g.Nodes() {
		full.MakeSet(n.ID)
	}
	for _, e := range g.Edges() {
		full.Union(e.From, e.To)
	}
	assert.Equal(t, g.NodeCount()-full.Sets(), len(edges),
		"forest must have nodeCount − componentCount edges")
}

// ---------------------------------------------------------------------------
// Kruskal
// ---------------------------------------------------------------------------

func TestKruskal_Triangle(t *testing.T) {
	alg := spantree.NewKruskal()
	computeOn(t, alg, buildTriangle(t))

	edges := drain(alg.TreeEdges())
	require.Len(t, edges, 2)
	assert.Equal(t, 3.0, alg.TotalWeight())
	assert.Equal(t, 2, alg.TreeSize())

	// The heaviest edge A-C(3) must be excluded.
	for _, e := range edges {
		w := e.NumberOr(spantree.DefaultWeightLabel, spantree.DefaultWeight)
		assert.Less(t, w, 3.0)
	}
}

// TestKruskal_MinimalAgainstBruteForce compares Kruskal's total weight with
// an exhaustive enumeration of all spanning trees on a small graph.
func TestKruskal_MinimalAgainstBruteForce(t *testing.T) {
	g := core.NewGraph()
	weights := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 1}, {"B", "C", 2}, {"B", "D", 5},
		{"C", "D", 8}, {"C", "E", 10}, {"D", "E", 2}, {"A", "E", 7},
	}
	for _, ed := range weights {
		addWeighted(t, g, ed.u, ed.v, ed.w)
	}

	alg := spantree.NewKruskal()
	computeOn(t, alg, g)

	// Brute force: try every (n−1)-subset of edges, keep spanning trees.
	all := g.Edges()
	n := g.NodeCount()
	best := -1.0
	var trySubset func(start int, chosen []*core.Edge)
	trySubset = func(start int, chosen []*core.Edge) {
		if len(chosen) == n-1 {
			d := unionfind.New()
			for _, node := range g.Nodes() {
				d.MakeSet(node.ID)
			}
			total := 0.0
			for _, e := range chosen {
				if !d.Union(e.From, e.To) {
					return // cyclic subset
				}
				total += e.NumberOr(spantree.DefaultWeightLabel, spantree.DefaultWeight)
			}
			if d.Sets() == 1 && (best < 0 || total < best) {
				best = total
			}

			return
		}
		for i := start; i < len(all); i++ {
			trySubset(i+1, append(chosen, all[i]))
		}
	}
	trySubset(0, nil)

	require.Positive(t, best)
	assert.Equal(t, best, alg.TotalWeight(), "Kruskal weight must match brute-force optimum")
	assertForest(t, g, drain(alg.TreeEdges()))
}

// TestKruskal_TieBreakDeterminism verifies that equal-weight edges resolve
// by enumeration order and that repeated runs are identical.
func TestKruskal_TieBreakDeterminism(t *testing.T) {
	g := core.NewGraph()
	// Square with all weights equal: the accepted pair is determined purely
	// by insertion order thanks to the stable sort.
	e1 := addWeighted(t, g, "A", "B", 1)
	e2 := addWeighted(t, g, "B", "C", 1)
	e3 := addWeighted(t, g, "C", "D", 1)
	_ = addWeighted(t, g, "D", "A", 1)

	alg := spantree.NewKruskal()
	computeOn(t, alg, g)
	first := drain(alg.TreeEdges())
	require.Len(t, first, 3)
	assert.Equal(t, []*core.Edge{e1, e2, e3}, first, "first three insertions win all ties")

	weight := alg.TotalWeight()
	for i := 0; i < 3; i++ {
		require.NoError(t, alg.Compute())
		again := drain(alg.TreeEdges())
		assert.Equal(t, first, again, "run %d differs", i)
		assert.Equal(t, weight, alg.TotalWeight())
	}
}

// TestKruskal_DisconnectedYieldsForest asserts the documented behavior: a
// disconnected graph is not an error, the scan just exhausts early.
func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, "A", "B", 1)
	addWeighted(t, g, "B", "C", 2)
	addWeighted(t, g, "X", "Y", 5) // second component
	_, _ = g.AddNode("LONER")      // third component, isolated

	alg := spantree.NewKruskal()
	computeOn(t, alg, g)

	edges := drain(alg.TreeEdges())
	assert.Len(t, edges, 3, "6 nodes − 3 components = 3 forest edges")
	assert.Equal(t, 8.0, alg.TotalWeight())
	assertForest(t, g, edges)
}

// TestKruskal_DefaultWeight verifies that missing and non-numeric weights
// count as 1.0 rather than failing.
func TestKruskal_DefaultWeight(t *testing.T) {
	g := core.NewGraph()
	bare, _ := g.AddEdge("A", "B") // no weight property at all
	junk, _ := g.AddEdge("B", "C")
	junk.SetProperty(spantree.DefaultWeightLabel, "twelve") // non-numeric
	addWeighted(t, g, "A", "C", 0.5)

	alg := spantree.NewKruskal()
	computeOn(t, alg, g)

	assert.Equal(t, 1.5, alg.TotalWeight(), "0.5 + one defaulted edge")
	edges := drain(alg.TreeEdges())
	require.Len(t, edges, 2)
	// The cheap real edge is accepted; exactly one of the defaulted pair joins it.
	assert.Contains(t, []string{bare.ID, junk.ID}, edges[1].ID)
}

// TestKruskal_SelfLoopsIgnored verifies self-loops never enter the tree.
func TestKruskal_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph()
	loop, _ := g.AddEdge("A", "A")
	loop.SetProperty(spantree.DefaultWeightLabel, 0.001) // cheapest, still skipped
	addWeighted(t, g, "A", "B", 2)

	alg := spantree.NewKruskal()
	computeOn(t, alg, g)
	edges := drain(alg.TreeEdges())
	require.Len(t, edges, 1)
	assert.NotEqual(t, loop.ID, edges[0].ID)
}

// TestNegativeWeightsAreOrdinary pins how the spanning-tree strategies treat
// negative numeric weights: ordinary values, ranked like any other, never an
// error. Only shortest-path trees reject them (see the dijkstra package).
func TestNegativeWeightsAreOrdinary(t *testing.T) {
	algs := map[string]*spantree.Algorithm{
		"kruskal": spantree.NewKruskal(),
		"prim":    spantree.NewPrim(),
	}
	for name, alg := range algs {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			addWeighted(t, g, "A", "B", -5)
			addWeighted(t, g, "B", "C", 2)
			addWeighted(t, g, "A", "C", 3)

			computeOn(t, alg, g)
			tree := drain(alg.TreeEdges())
			assertForest(t, g, tree)
			require.Len(t, tree, 2)
			// The negative edge is the cheapest and must be chosen;
			// the heaviest edge A-C stays out.
			assert.Equal(t, -3.0, alg.TotalWeight())
			assert.True(t, alg.Computed())
		})
	}
}

// ---------------------------------------------------------------------------
// Prim
// ---------------------------------------------------------------------------

func TestPrim_Triangle(t *testing.T) {
	g := buildTriangle(t)
	alg := spantree.NewPrim()
	computeOn(t, alg, g)

	assert.Equal(t, 3.0, alg.TotalWeight())
	assertForest(t, g, drain(alg.TreeEdges()))
}

// TestPrim_MatchesKruskalWeight cross-checks the two strategies on the same
// connected weighted graph: their total weights must agree.
func TestPrim_MatchesKruskalWeight(t *testing.T) {
	g := buildMediumGraph(t, 60, 240)

	kruskal := spantree.NewKruskal()
	computeOn(t, kruskal, g)
	prim := spantree.NewPrim()
	computeOn(t, prim, g)

	assert.InDelta(t, kruskal.TotalWeight(), prim.TotalWeight(), 1e-9)
	assert.Equal(t, kruskal.TreeSize(), prim.TreeSize())
	assertForest(t, g, drain(prim.TreeEdges()))
}

// TestPrim_DisconnectedYieldsForest verifies forest growth across
// components with no special-casing and no error.
func TestPrim_DisconnectedYieldsForest(t *testing.T) {
	g := core.NewGraph()
	addWeighted(t, g, "A", "B", 1)
	addWeighted(t, g, "X", "Y", 2)
	addWeighted(t, g, "Y", "Z", 3)

	alg := spantree.NewPrim()
	computeOn(t, alg, g)

	edges := drain(alg.TreeEdges())
	assert.Len(t, edges, 3, "5 nodes − 2 components")
	assert.Equal(t, 6.0, alg.TotalWeight())
	assertForest(t, g, edges)
}

// TestPrim_FirstExtractionDeterminism pins the documented tie-break: with
// all keys at +Inf the first extracted node is the first one enumerated, so
// the first committed edge is always incident to it, and repeated runs
// produce the identical edge sequence.
func TestPrim_FirstExtractionDeterminism(t *testing.T) {
	g := core.NewGraph()
	// Equal-weight square: multiple MSTs exist, the tie-break decides.
	addWeighted(t, g, "A", "B", 1)
	addWeighted(t, g, "B", "C", 1)
	addWeighted(t, g, "C", "D", 1)
	addWeighted(t, g, "D", "A", 1)

	alg := spantree.NewPrim()
	computeOn(t, alg, g)
	first := drain(alg.TreeEdges())
	require.Len(t, first, 3)
	assert.Equal(t, 3.0, alg.TotalWeight())

	// "A" is the first node enumerated, so the tree grows from it: the
	// first committed edge must touch A.
	touchesA := first[0].From == "A" || first[0].To == "A"
	assert.True(t, touchesA, "first tree edge %s–%s must be incident to the first node", first[0].From, first[0].To)

	for run := 0; run < 5; run++ {
		require.NoError(t, alg.Compute())
		assert.Equal(t, first, drain(alg.TreeEdges()), "run %d diverged", run)
	}
}

// ---------------------------------------------------------------------------
// Lifecycle & tagging
// ---------------------------------------------------------------------------

// TestLifecycle_ComputeUnboundIsNoop verifies the one deliberate exception
// to fail-fast: Compute without Bind does nothing, successfully.
func TestLifecycle_ComputeUnboundIsNoop(t *testing.T) {
	alg := spantree.NewKruskal()
	assert.NoError(t, alg.Compute())
	assert.False(t, alg.Computed())
	_, ok := alg.TreeEdges().Next()
	assert.False(t, ok, "no results before any bound compute")
	assert.Zero(t, alg.TotalWeight())
}

// TestLifecycle_BindRules verifies nil rejection and single-bind.
func TestLifecycle_BindRules(t *testing.T) {
	alg := spantree.NewKruskal()
	assert.ErrorIs(t, alg.Bind(nil), spantree.ErrNilGraph)

	g := buildTriangle(t)
	require.NoError(t, alg.Bind(g))
	assert.True(t, alg.Bound())
	assert.ErrorIs(t, alg.Bind(core.NewGraph()), spantree.ErrRebind)
}

// TestLifecycle_TaggingFrozenAfterBind verifies the state error on late
// reconfiguration.
func TestLifecycle_TaggingFrozenAfterBind(t *testing.T) {
	alg := spantree.NewPrim()
	cfg := spantree.TagConfig{Label: "mst", On: true, Off: false}
	require.NoError(t, alg.SetTagging(cfg))
	assert.Equal(t, cfg, alg.Tagging())

	require.NoError(t, alg.Bind(buildTriangle(t)))
	assert.ErrorIs(t, alg.SetTagging(spantree.TagConfig{Label: "other"}), spantree.ErrTaggingFrozen)
	assert.Equal(t, cfg, alg.Tagging(), "rejected SetTagging must not change the config")
}

// TestLifecycle_TreeEdgesSingleUse verifies the sequence is lazy and not
// restartable until the next Compute.
func TestLifecycle_TreeEdgesSingleUse(t *testing.T) {
	alg := spantree.NewKruskal()
	computeOn(t, alg, buildTriangle(t))

	seq := alg.TreeEdges()
	_, ok := seq.Next()
	require.True(t, ok)
	// Same underlying sequence from a second TreeEdges call: it continues,
	// it does not restart.
	rest := drain(alg.TreeEdges())
	assert.Len(t, rest, 1)
	_, ok = seq.Next()
	assert.False(t, ok, "sequence exhausted for every holder")

	// A new Compute issues a fresh sequence.
	require.NoError(t, alg.Compute())
	assert.Len(t, drain(alg.TreeEdges()), 2)
}

// TestTagging_OnOffValues verifies that after Compute exactly the tree
// edges carry the on-value and all others the off-value.
func TestTagging_OnOffValues(t *testing.T) {
	g := buildTriangle(t)
	alg := spantree.NewKruskal(
		spantree.WithTagging(spantree.TagConfig{Label: "in-tree", On: true, Off: false}),
	)
	computeOn(t, alg, g)

	inTree := map[string]bool{}
	for _, e := range drain(alg.TreeEdges()) {
		inTree[e.ID] = true
	}
	for _, e := range g.Edges() {
		v, ok := e.Property("in-tree")
		require.True(t, ok, "edge %s must be tagged", e.ID)
		assert.Equal(t, inTree[e.ID], v, "edge %s tag value", e.ID)
	}
}

// TestTagging_NilValuesMeanRemoval verifies the removal semantics for
// absent on/off values.
func TestTagging_NilValuesMeanRemoval(t *testing.T) {
	g := buildTriangle(t)
	// Pre-seed the label everywhere so removal is observable.
	for _, e := range g.Edges() {
		e.SetProperty("mark", "stale")
	}

	// On = nil: tree edges get the label removed; Off keeps a value.
	alg := spantree.NewKruskal(
		spantree.WithTagging(spantree.TagConfig{Label: "mark", On: nil, Off: "out"}),
	)
	computeOn(t, alg, g)

	inTree := map[string]bool{}
	for _, e := range drain(alg.TreeEdges()) {
		inTree[e.ID] = true
	}
	for _, e := range g.Edges() {
		if inTree[e.ID] {
			assert.False(t, e.HasProperty("mark"), "tree edge %s must have the label removed", e.ID)
		} else {
			v, _ := e.Property("mark")
			assert.Equal(t, "out", v)
		}
	}
}

// TestTagging_DisabledWritesNothing verifies that an empty label means no
// tagging at all.
func TestTagging_DisabledWritesNothing(t *testing.T) {
	g := buildTriangle(t)
	alg := spantree.NewPrim() // default options: tagging disabled
	computeOn(t, alg, g)

	for _, e := range g.Edges() {
		assert.False(t, e.HasProperty(""), "no property may appear on edge %s", e.ID)
	}
	assert.Equal(t, 3.0, alg.TotalWeight(), "results exist even without tagging")
}

// TestClear_RemovesLabelsKeepsResults verifies Clear semantics.
func TestClear_RemovesLabelsKeepsResults(t *testing.T) {
	g := buildTriangle(t)
	alg := spantree.NewKruskal(
		spantree.WithTagging(spantree.TagConfig{Label: "in-tree", On: 1, Off: 0}),
	)
	computeOn(t, alg, g)
	weight := alg.TotalWeight()

	alg.Clear()
	for _, e := range g.Edges() {
		assert.False(t, e.HasProperty("in-tree"), "Clear must strip the label from edge %s", e.ID)
	}
	assert.Equal(t, weight, alg.TotalWeight(), "weight stays queryable after Clear")
	assert.True(t, alg.Computed())

	// Recomputability is retained.
	require.NoError(t, alg.Compute())
	assert.Equal(t, weight, alg.TotalWeight())
}
