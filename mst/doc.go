// Package mst computes minimum spanning trees and single-link
// clusterings over core.UndirectedGraph.
//
// Algorithms:
//
//	– Kruskal(g)        — sort edges by length, union-find with path
//	                      compression and union by rank. O(E log E).
//	– Prim(g, root)     — grow from root with a min-heap of crossing
//	                      edges (lazy deletion of stale entries).
//	                      O((V+E) log E).
//	– Compute(g, opts)  — dispatch between the two via MSTOptions
//	                      (WithMethod, WithRoot).
//	– Clustering(g, k)  — single-link max-spacing k-clustering: Kruskal
//	                      merges stopped at k clusters; returns the
//	                      length of the next cheapest crossing edge.
//
// Shared conventions:
//
//   - Self-loops are skipped: they can never appear in a spanning tree
//     or merge two clusters.
//   - Ties between equal lengths break on the container's catalog-ID
//     order (graph.Edges() is sorted by catalog ID), so results are
//     deterministic for a fixed graph.
//   - Returned edges are value copies; mutating them does not touch the
//     graph.
//
// Errors (sentinel):
//
//	– ErrInvalidGraph    if the graph pointer is nil.
//	– ErrRootNotFound    if Prim's root is not a vertex of the graph.
//	– ErrDisconnected    if no spanning tree (or k-clustering) exists.
//	– ErrBadClusterCount if k < 2 or k > |V|.
//
// Example usage:
//
//	tree, total, err := mst.Kruskal(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MST: %d edges, total length %.6f\n", len(tree), total)
package mst
