package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafoio/grafo/core"
	"github.com/grafoio/grafo/mst"
)

// buildTriangle constructs an undirected weighted triangle:
//
//	1--2 (length 1), 2--3 (length 2), 1--3 (length 3).
//
// Its MST consists of edges 1--2 and 2--3 with total length 3.
func buildTriangle(t *testing.T) *core.UndirectedGraph {
	t.Helper()
	g := core.NewUndirectedGraph()
	for _, id := range []core.VertexID{1, 2, 3} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3, 3)
	require.NoError(t, err)

	return g
}

// buildMediumGraph creates a connected weighted graph with n vertices
// and edgesCount total edges: a connectivity chain first, then random
// extra edges. The generator is seeded for reproducibility.
func buildMediumGraph(t *testing.T, n, edgesCount int) *core.UndirectedGraph {
	t.Helper()
	g := core.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(core.VertexID(i)))
	}

	r := rand.New(rand.NewSource(42))

	// Chain 0--1--...--(n-1) guarantees connectivity.
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(core.VertexID(i-1), core.VertexID(i), 1+r.Float64()*9)
		require.NoError(t, err)
	}

	// Extra random edges up to edgesCount; duplicates and loops are
	// rejected by the container and simply retried.
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(core.VertexID(u), core.VertexID(v), 1+r.Float64()*99); err == nil {
			added++
		}
	}

	return g
}

// TestValidation_NilGraph verifies every entry point rejects a nil graph.
func TestValidation_NilGraph(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	_, _, err = mst.Prim(nil, 1)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	_, err = mst.Clustering(nil, 2)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
}

// TestValidation_EmptyOrDisconnected verifies ErrDisconnected on the
// empty graph and on a graph with an unreachable vertex.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	empty := core.NewUndirectedGraph()

	edgesK, totalK, errK := mst.Kruskal(empty)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.ErrorIs(t, errK, mst.ErrDisconnected)

	// Prim on the empty graph reports disconnection before root lookup.
	edgesP, totalP, errP := mst.Prim(empty, 1)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, mst.ErrDisconnected)

	// Triangle plus an isolated vertex cannot be spanned.
	g := buildTriangle(t)
	require.NoError(t, g.AddVertex(9))

	_, _, errK = mst.Kruskal(g)
	assert.ErrorIs(t, errK, mst.ErrDisconnected)

	_, _, errP = mst.Prim(g, 1)
	assert.ErrorIs(t, errP, mst.ErrDisconnected)
}

// TestValidation_RootNotFound verifies Prim rejects a root outside the graph.
func TestValidation_RootNotFound(t *testing.T) {
	g := buildTriangle(t)

	_, _, err := mst.Prim(g, 99)
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
}

// TestKruskal_Triangle pins the triangle MST: edges 1--2 and 2--3, total 3.
func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle(t)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, 1.0, tree[0].Length())
	assert.Equal(t, 2.0, tree[1].Length())
}

// TestPrim_Triangle pins the same MST grown from each possible root.
func TestPrim_Triangle(t *testing.T) {
	for _, root := range []core.VertexID{1, 2, 3} {
		g := buildTriangle(t)
		tree, total, err := mst.Prim(g, root)
		require.NoError(t, err, "root %d", root)
		assert.Len(t, tree, 2, "root %d", root)
		assert.Equal(t, 3.0, total, "root %d", root)
	}
}

// TestMST_SingleVertex verifies the trivial empty MST.
func TestMST_SingleVertex(t *testing.T) {
	g := core.NewUndirectedGraph()
	require.NoError(t, g.AddVertex(1))

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, total, err = mst.Prim(g, 1)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

// TestMST_TieBreakDeterministic verifies equal lengths break on catalog
// order: the unit square's MST is always the first three inserted edges.
func TestMST_TieBreakDeterministic(t *testing.T) {
	g := core.NewUndirectedGraph()
	for _, id := range []core.VertexID{1, 2, 3, 4} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(4, 1, 1)
	require.NoError(t, err)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, 3)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, core.VertexID(1), tree[0].End1())
	assert.Equal(t, core.VertexID(2), tree[0].End2())
	assert.Equal(t, core.VertexID(2), tree[1].End1())
	assert.Equal(t, core.VertexID(3), tree[1].End2())
	assert.Equal(t, core.VertexID(3), tree[2].End1())
	assert.Equal(t, core.VertexID(4), tree[2].End2())
}

// TestMST_SkipsSelfLoops verifies loops never enter the tree even when
// the container permits them.
func TestMST_SkipsSelfLoops(t *testing.T) {
	g := core.NewUndirectedGraph(core.WithLoops())
	for _, id := range []core.VertexID{1, 2, 3} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 1, 0.001) // cheapest edge, but a loop
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 2)
	require.NoError(t, err)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)
}

// TestPrimKruskal_Agree verifies both algorithms produce the same total
// length on a reproducible medium graph.
func TestPrimKruskal_Agree(t *testing.T) {
	g := buildMediumGraph(t, 50, 150)

	_, totalK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	_, totalP, errP := mst.Prim(g, 0)
	require.NoError(t, errP)

	assert.InDelta(t, totalK, totalP, 1e-9)
}

// TestCompute_Dispatch verifies MSTOptions routing, including the
// unknown-method rejection.
func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle(t)

	tree, total, err := mst.Compute(g, mst.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)

	opts := mst.DefaultOptions()
	for _, o := range []mst.Option{mst.WithMethod(mst.MethodPrim), mst.WithRoot(2)} {
		o(&opts)
	}
	tree, total, err = mst.Compute(g, opts)
	require.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3.0, total)

	_, _, err = mst.Compute(g, mst.MSTOptions{Method: "bogus"})
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
}

// TestClustering_Spacing pins the classic two-pair layout: tight pairs
// {1,2} and {3,4} separated by expensive edges.
func TestClustering_Spacing(t *testing.T) {
	g := core.NewUndirectedGraph()
	for _, id := range []core.VertexID{1, 2, 3, 4} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 100)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3, 101)
	require.NoError(t, err)

	spacing, err := mst.Clustering(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, spacing)
}

// TestClustering_KEqualsVertexCount verifies the degenerate split where
// every vertex is its own cluster: spacing is the cheapest edge.
func TestClustering_KEqualsVertexCount(t *testing.T) {
	g := buildTriangle(t)

	spacing, err := mst.Clustering(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, spacing)
}

// TestClustering_BadCount verifies the k bounds.
func TestClustering_BadCount(t *testing.T) {
	g := buildTriangle(t)

	_, err := mst.Clustering(g, 1)
	assert.ErrorIs(t, err, mst.ErrBadClusterCount)
	_, err = mst.Clustering(g, 4)
	assert.ErrorIs(t, err, mst.ErrBadClusterCount)
}

// TestClustering_TooManyComponents verifies ErrDisconnected when the
// graph cannot merge down to k clusters.
func TestClustering_TooManyComponents(t *testing.T) {
	g := core.NewUndirectedGraph()
	for _, id := range []core.VertexID{1, 2, 3, 4} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(1, 2, 1)
	require.NoError(t, err)

	// Components: {1,2}, {3}, {4}. Three of them, so k=2 is unreachable.
	_, err = mst.Clustering(g, 2)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}
