// This file implements Prim's Minimum Spanning Tree algorithm: grow the
// tree from a root vertex, always crossing the cheapest edge between
// the spanned set and the rest.
package mst

import (
	"container/heap"

	"github.com/grafoio/grafo/core"
)

// Prim computes the Minimum Spanning Tree of an undirected weighted
// graph, growing from the given root with a min-heap of crossing edges.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0, or some vertex is unreachable from root.
//   - ErrRootNotFound : root is not a vertex of the graph.
//
// Steps:
//  1. Validate graph, vertex count, and root.
//  2. Span {root}; push every edge incident to root onto the heap.
//  3. Pop the cheapest crossing edge; if exactly one endpoint is
//     unspanned, take the edge, span that endpoint, and push its
//     incident edges whose far endpoint is still unspanned. Edges with
//     both endpoints spanned are stale heap entries and are skipped.
//  4. Stop once all vertices are spanned; a drained heap before that
//     means the graph is disconnected.
//
// Complexity: O((V + E) log E). Memory: O(V + E).
func Prim(graph *core.UndirectedGraph, root core.VertexID) ([]core.UndirectedEdge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}
	if len(vertices) == 1 {
		return []core.UndirectedEdge{}, 0, nil
	}

	// Span the root and seed the heap with its incident edges.
	spanned := make(map[core.VertexID]bool, len(vertices))
	spanned[root] = true
	crossing := make(edgeHeap, 0, len(vertices))
	heap.Init(&crossing)
	pushIncident(graph, &crossing, root, spanned)

	var (
		tree  []core.UndirectedEdge
		total float64
	)
	for crossing.Len() > 0 && len(spanned) < len(vertices) {
		e := heap.Pop(&crossing).(*core.UndirectedEdge)

		// Identify the unspanned endpoint, if any remains.
		var next core.VertexID
		switch {
		case spanned[e.End1()] && !spanned[e.End2()]:
			next = e.End2()
		case spanned[e.End2()] && !spanned[e.End1()]:
			next = e.End1()
		default:
			// Stale entry: both endpoints were spanned after this edge
			// was pushed (or it is a self-loop). Skip it.
			continue
		}

		tree = append(tree, *e)
		total += e.Length()
		spanned[next] = true
		pushIncident(graph, &crossing, next, spanned)
	}

	if len(spanned) < len(vertices) {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// pushIncident pushes every edge incident to v whose far endpoint is
// not yet spanned. IncidentEdges cannot fail here: v is always a
// spanned, existing vertex.
func pushIncident(graph *core.UndirectedGraph, crossing *edgeHeap, v core.VertexID, spanned map[core.VertexID]bool) {
	incident, err := graph.IncidentEdges(v)
	if err != nil {
		return
	}
	for _, e := range incident {
		far, ok := e.Other(v)
		if !ok || spanned[far] {
			continue
		}
		heap.Push(crossing, e)
	}
}

// edgeHeap is a min-heap of *core.UndirectedEdge ordered by Length.
// Stale entries are tolerated and filtered when popped (lazy deletion),
// mirroring the lazy-decrease-key pattern.
type edgeHeap []*core.UndirectedEdge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Length() < h[j].Length() }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(*core.UndirectedEdge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
