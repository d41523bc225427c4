// This file implements single-link k-clustering with the max-spacing
// objective: maximize the minimum length between any pair of separated
// vertices. Structurally it is Kruskal's algorithm stopped early.
package mst

import "github.com/grafoio/grafo/core"

// Clustering partitions the graph's vertices into k clusters using the
// single-link method and returns the resulting spacing: the length of
// the cheapest edge crossing two different clusters.
//
// The merge order is the Kruskal order (ascending length, catalog-ID
// tie-break): repeatedly fuse the two closest clusters until exactly k
// remain, then report the length of the next cheapest crossing edge.
//
// Error Conditions:
//   - ErrInvalidGraph    : graph is nil.
//   - ErrBadClusterCount : k < 2 or k > |V|.
//   - ErrDisconnected    : the graph cannot be reduced to k clusters,
//     or no crossing edge remains to define the spacing.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Clustering(graph *core.UndirectedGraph, k int) (float64, error) {
	if graph == nil {
		return 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if k < 2 || k > len(vertices) {
		return 0, ErrBadClusterCount
	}

	edges := sortedCandidateEdges(graph)

	uf := newUnionFind(vertices)
	for _, e := range edges {
		if uf.find(e.End1()) == uf.find(e.End2()) {
			continue // intra-cluster edge, not a merge candidate
		}
		if uf.groups == k {
			// The clusters are settled; the cheapest remaining crossing
			// edge defines the spacing.
			return e.Length(), nil
		}
		uf.union(e.End1(), e.End2())
	}

	// Either the graph never reached k clusters (more than k components)
	// or exactly k components exist with no crossing edge left.
	return 0, ErrDisconnected
}
