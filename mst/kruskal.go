// Package mst provides minimum-spanning-tree algorithms over
// core.UndirectedGraph; this file implements Kruskal's algorithm.
package mst

import (
	"sort"

	"github.com/grafoio/grafo/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected weighted
// graph using sorted edges and a disjoint-set (union-find) structure
// with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or |V| > 1 and the graph is not fully
//     connected.
//
// Steps:
//  1. Validate graph; retrieve sorted vertex IDs.
//     |V| == 0 → ErrDisconnected; |V| == 1 → trivial empty MST.
//  2. Collect all edges via graph.Edges(), skipping self-loops (they
//     cannot appear in a spanning tree).
//  3. Sort edges by ascending Length; sort.SliceStable keeps the
//     catalog-ID order for equal lengths, so ties break deterministically.
//  4. Union-find over the vertex set; include each edge whose endpoints
//     are in different components.
//  5. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.UndirectedGraph) ([]core.UndirectedEdge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		// A single vertex spans itself: empty tree, zero length.
		return []core.UndirectedEdge{}, 0, nil
	}

	edges := sortedCandidateEdges(graph)

	uf := newUnionFind(vertices)
	var (
		tree  []core.UndirectedEdge
		total float64
	)
	for _, e := range edges {
		if uf.union(e.End1(), e.End2()) {
			tree = append(tree, *e)
			total += e.Length()
			if len(tree) == len(vertices)-1 {
				break
			}
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// sortedCandidateEdges returns the graph's edges minus self-loops,
// sorted by ascending length with catalog-ID order as the stable
// tie-break (graph.Edges() is sorted by catalog ID).
func sortedCandidateEdges(graph *core.UndirectedGraph) []*core.UndirectedEdge {
	all := graph.Edges()
	edges := make([]*core.UndirectedEdge, 0, len(all))
	for _, e := range all {
		if e.End1() == e.End2() {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length() < edges[j].Length()
	})

	return edges
}
