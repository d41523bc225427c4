// Package grafo is a small in-memory library for weighted graphs built
// around an explicit edge data model.
//
// What grafo provides:
//
//	core/ — the fundamental types: DirectedEdge (tail → head + length),
//	        UndirectedEdge (end1 — end2 + length), Vertex, and the two
//	        thread-safe containers (DirectedGraph, UndirectedGraph) that
//	        own vertex lifetime and keep the incidence index consistent
//	mst/  — minimum spanning trees (Prim, Kruskal) and single-link
//	        max-spacing clustering over undirected weighted graphs
//
// Design notes:
//
//   - Edges reference vertices by stable VertexID handles, never by
//     pointer. Vertex lifetime belongs to the owning container; an edge
//     only records an association.
//   - Edge length is fixed at construction; rewiring an edge's
//     endpoints (SetTail/SetHead, or the container-coordinated
//     RewireTail/RewireHead) never changes its length.
//   - Both edge variants share the HasLength capability instead of an
//     inheritance chain, so further variants can be added as
//     independent types.
//   - Deterministic enumeration: Vertices() and Edges() always return
//     sorted results, suitable for golden tests.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	a square on four vertices, each side one weighted edge.
//
// See each subpackage's doc.go for the full API surface and the error
// contracts.
package grafo
