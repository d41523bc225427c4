// File: edge.go
// Role: The edge records themselves: DirectedEdge and UndirectedEdge.
//
// Contract:
//   - Edge records are plain, unsynchronized data. Each record is owned
//     exclusively by the container that created it; concurrent mutation
//     without external synchronization is undefined and must be
//     prevented by the owner, not by the record.
//   - Length is fixed at construction; SetTail/SetHead/SetEnd1/SetEnd2
//     never touch it.
//   - Constructors are permissive: self-loops and negative lengths are
//     accepted here. Policy (loops, parallel edges) is enforced by the
//     containers; algorithms that require non-negative lengths validate
//     on entry.
package core

import "fmt"

// lengthFormat pins the fixed-point rendering of edge lengths in
// String() output. Six fractional digits, e.g. 2.5 → "2.500000".
const lengthFormat = "%.6f"

// directedEdgeFormat is the String() template for DirectedEdge.
const directedEdgeFormat = "Edge from Vertex #%d to Vertex #%d with length " + lengthFormat

// undirectedEdgeFormat is the String() template for UndirectedEdge.
const undirectedEdgeFormat = "Edge between Vertex #%d and Vertex #%d with length " + lengthFormat

// DirectedEdge is a one-directional connection between two vertices,
// carrying a fixed length. Tail is the origin, head the destination.
//
// The endpoints are VertexID handles, not pointers: the edge records an
// association and never owns a vertex's lifetime.
type DirectedEdge struct {
	tail   VertexID // origin endpoint
	head   VertexID // destination endpoint
	length float64  // fixed weight
}

// compile-time capability checks
var (
	_ HasLength = (*DirectedEdge)(nil)
	_ HasLength = (*UndirectedEdge)(nil)
)

// NewDirectedEdge constructs a directed edge tail → head with the given
// length. No validation is performed: tail == head (a self-loop) and
// negative lengths are both accepted at this level.
// Complexity: O(1)
func NewDirectedEdge(tail, head VertexID, length float64) *DirectedEdge {
	return &DirectedEdge{tail: tail, head: head, length: length}
}

// Tail returns the current tail (origin) vertex handle.
func (e *DirectedEdge) Tail() VertexID { return e.tail }

// Head returns the current head (destination) vertex handle.
func (e *DirectedEdge) Head() VertexID { return e.head }

// Length returns the edge's weight. Fixed at construction.
func (e *DirectedEdge) Length() float64 { return e.length }

// SetTail reassigns the tail endpoint. This mutates the record only:
// if the edge is held by a container, use DirectedGraph.RewireTail so
// the incidence index stays consistent.
func (e *DirectedEdge) SetTail(tail VertexID) { e.tail = tail }

// SetHead reassigns the head endpoint. Record-level only; see SetTail.
func (e *DirectedEdge) SetHead(head VertexID) { e.head = head }

// String renders a human-readable description of the edge, e.g.
//
//	Edge from Vertex #3 to Vertex #7 with length 2.500000
//
// The decimal precision is pinned by lengthFormat.
func (e *DirectedEdge) String() string {
	return fmt.Sprintf(directedEdgeFormat, e.tail, e.head, e.length)
}

// UndirectedEdge is a bidirectional connection between two vertices,
// carrying a fixed length. The endpoint order (end1, end2) carries no
// meaning beyond identification.
type UndirectedEdge struct {
	end1   VertexID // one endpoint
	end2   VertexID // the other endpoint
	length float64  // fixed weight
}

// NewUndirectedEdge constructs an undirected edge end1 -- end2 with the
// given length. Permissive, like NewDirectedEdge.
// Complexity: O(1)
func NewUndirectedEdge(end1, end2 VertexID, length float64) *UndirectedEdge {
	return &UndirectedEdge{end1: end1, end2: end2, length: length}
}

// End1 returns the first endpoint handle.
func (e *UndirectedEdge) End1() VertexID { return e.end1 }

// End2 returns the second endpoint handle.
func (e *UndirectedEdge) End2() VertexID { return e.end2 }

// Length returns the edge's weight. Fixed at construction.
func (e *UndirectedEdge) Length() float64 { return e.length }

// SetEnd1 reassigns the first endpoint. Record-level only; containers
// expose UndirectedGraph.RewireEnd1 for index-coordinated rewiring.
func (e *UndirectedEdge) SetEnd1(end1 VertexID) { e.end1 = end1 }

// SetEnd2 reassigns the second endpoint. Record-level only; see SetEnd1.
func (e *UndirectedEdge) SetEnd2(end2 VertexID) { e.end2 = end2 }

// Other returns the endpoint opposite to v. The second return is false
// when v is not an endpoint of this edge. For a self-loop both
// endpoints equal v and Other returns (v, true).
func (e *UndirectedEdge) Other(v VertexID) (VertexID, bool) {
	switch v {
	case e.end1:
		return e.end2, true
	case e.end2:
		return e.end1, true
	default:
		return 0, false
	}
}

// String renders a human-readable description of the edge, e.g.
//
//	Edge between Vertex #1 and Vertex #2 with length 4.000000
func (e *UndirectedEdge) String() string {
	return fmt.Sprintf(undirectedEdgeFormat, e.end1, e.end2, e.length)
}
