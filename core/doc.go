// Package core provides grafo's edge data model and the thread-safe
// in-memory containers that own it.
//
// The model separates three concerns:
//
//   - Edge records -- DirectedEdge (tail → head) and UndirectedEdge
//     (end1 -- end2), each carrying a length fixed at construction.
//     Records are plain, unsynchronized data with accessor and mutator
//     methods; both implement the HasLength capability.
//   - Vertex handles -- edges reference vertices through stable VertexID
//     values, never through pointers. An edge records an association;
//     it does not own a vertex's lifetime.
//   - Containers -- DirectedGraph and UndirectedGraph own vertices and
//     edges, enforce policy, and keep the incidence index consistent
//     with the records. Constant-time edge operations via nested maps:
//     index[from][to][edgeID] = struct{}{}, collision-free atomic
//     catalog IDs ("e1", "e2", …), and separate sync.RWMutex locks for
//     vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v,…) → ErrLoopNotAllowed.
//	– WithMultiEdges()
//	    Permits parallel edges; otherwise a second AddEdge between the
//	    same endpoints → ErrMultiEdgeNotAllowed.
//
// Both default off, so a default container holds a simple graph.
// Negative lengths are accepted by both records and containers;
// algorithms that require non-negative weights validate on entry.
//
// Endpoint rewiring:
//
// SetTail/SetHead (and SetEnd1/SetEnd2) mutate only the record. For an
// edge held by a container, use RewireTail/RewireHead (respectively
// RewireEnd1/RewireEnd2): they reassign the endpoint and update the
// incidence index in one critical section, preserving the edge's
// catalog ID and length.
//
// Core methods (DirectedGraph; UndirectedGraph is symmetric):
//
//	// Vertex lifecycle
//	AddVertex(id VertexID) error     // O(1), ErrVertexExists on duplicate
//	HasVertex(id VertexID) bool      // O(1)
//	RemoveVertex(id VertexID) error  // O(deg(v)), cascades over edges
//
//	// Edge lifecycle
//	AddEdge(tail, head VertexID, length float64) (edgeID string, err error)
//	RemoveEdge(tail, head VertexID) error
//	RemoveEdgeByID(edgeID string) error
//	RewireTail(edgeID string, v VertexID) error
//	RewireHead(edgeID string, v VertexID) error
//
//	// Query (deterministic: sorted results)
//	HasEdge(tail, head VertexID) bool
//	Edge(edgeID string) (*DirectedEdge, error)
//	Edges() []*DirectedEdge
//	EmissiveEdges(id VertexID) ([]*DirectedEdge, error)
//	IncidentEdges(id VertexID) ([]*DirectedEdge, error)
//	Vertices() []VertexID
//	VertexCount() int
//	EdgeCount() int
//
// Errors:
//
//	ErrVertexExists        – duplicate vertex ID on AddVertex
//	ErrVertexNotFound      – missing vertex (absent endpoint references
//	                         fail fast here; a container never builds an
//	                         edge over a vertex it does not hold)
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Concurrency model: containers are safe for concurrent use. Edge
// records are not; each record is owned exclusively by its container,
// and mutating a record from outside that ownership (raw SetTail on a
// cataloged edge, for instance) is undefined behavior by contract.
package core
