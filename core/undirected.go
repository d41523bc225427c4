// File: undirected.go
// Role: UndirectedGraph container: vertex/edge lifecycle, incidence
//       queries, and index-coordinated endpoint rewiring.
//
// Determinism:
//   - Vertices() sorted ascending; Edges(), IncidentEdges() sorted by
//     catalog ID asc; NeighborIDs() sorted ascending.
//
// Concurrency:
//   - Same two-lock scheme as DirectedGraph: muVert for the vertex
//     catalog, muEdgeAdj for edges and adjacency; muVert -> muEdgeAdj.
package core

import (
	"sort"
	"sync"
)

// UndirectedGraph is an in-memory undirected weighted graph.
//
// Every edge is mirrored in the adjacency index (adj[a][b] and
// adj[b][a] hold the same catalog ID), so incidence queries are O(1)
// from either endpoint. Policy flags match DirectedGraph: loops and
// parallel edges are rejected unless enabled at construction.
type UndirectedGraph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adj

	cfg graphConfig // immutable after construction

	edgeSeq  uint64 // atomic edge ID generator
	vertices map[VertexID]*Vertex
	edges    map[string]*UndirectedEdge

	// adj[a][b][edgeID]: mirrored incidence index.
	adj adjacency
}

// NewUndirectedGraph creates an empty UndirectedGraph with the given
// options. By default self-loops and parallel edges are rejected.
// Complexity: O(len(opts))
func NewUndirectedGraph(opts ...GraphOption) *UndirectedGraph {
	g := &UndirectedGraph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[string]*UndirectedEdge),
		adj:      make(adjacency),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *UndirectedGraph) Looped() bool { return g.cfg.allowLoops }

// Multigraph reports whether parallel edges are permitted by policy.
func (g *UndirectedGraph) Multigraph() bool { return g.cfg.allowMulti }

// AddVertex registers a new vertex under the given ID.
//
// Errors:
//   - ErrVertexExists if the ID is already in the catalog.
//
// Complexity: O(1). Concurrency: write lock on muVert.
func (g *UndirectedGraph) AddVertex(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return ErrVertexExists
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *UndirectedGraph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge incident to it.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg(v)) plus bucket cleanup.
// Concurrency: muVert write lock, then muEdgeAdj write lock.
func (g *UndirectedGraph) RemoveVertex(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	var doomed []string
	for _, bucket := range g.adj[id] {
		for eid := range bucket {
			doomed = append(doomed, eid)
		}
	}
	for _, eid := range doomed {
		if e, ok := g.edges[eid]; ok {
			g.unlinkLocked(eid, e)
		}
	}
	g.muEdgeAdj.Unlock()

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V). Concurrency: read lock on muVert.
func (g *UndirectedGraph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *UndirectedGraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new edge end1 -- end2 with the given length and
// returns its catalog ID. Both endpoints must already exist; loop and
// parallel policy match DirectedGraph.AddEdge.
//
// Complexity: O(1) amortized.
// Concurrency: muVert read lock, then muEdgeAdj write lock.
func (g *UndirectedGraph) AddEdge(end1, end2 VertexID, length float64) (string, error) {
	if end1 == end2 && !g.cfg.allowLoops {
		return "", ErrLoopNotAllowed
	}
	g.muVert.RLock()
	_, ok1 := g.vertices[end1]
	_, ok2 := g.vertices[end2]
	g.muVert.RUnlock()
	if !ok1 || !ok2 {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.cfg.allowMulti && len(g.adj[end1][end2]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(&g.edgeSeq)
	g.edges[eid] = NewUndirectedEdge(end1, end2, length)
	ensureBucket(g.adj, end1, end2)[eid] = struct{}{}
	if end1 != end2 {
		ensureBucket(g.adj, end2, end1)[eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge between end1 and end2 (either endpoint
// order). When parallels exist the edge with the smallest catalog ID is
// removed.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(parallel edges between the pair).
// Concurrency: write lock on muEdgeAdj.
func (g *UndirectedGraph) RemoveEdge(end1, end2 VertexID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	bucket := g.adj[end1][end2]
	if len(bucket) == 0 {
		return ErrEdgeNotFound
	}
	var victim string
	for eid := range bucket {
		if victim == "" || eid < victim {
			victim = eid
		}
	}
	g.unlinkLocked(victim, g.edges[victim])

	return nil
}

// RemoveEdgeByID deletes the edge with the given catalog ID.
//
// Errors:
//   - ErrEdgeNotFound if the ID is absent.
//
// Complexity: O(1). Concurrency: write lock on muEdgeAdj.
func (g *UndirectedGraph) RemoveEdgeByID(edgeID string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(edgeID, e)

	return nil
}

// unlinkLocked removes an edge from the catalog and both mirror
// buckets. Caller must hold muEdgeAdj write lock.
func (g *UndirectedGraph) unlinkLocked(eid string, e *UndirectedEdge) {
	delete(g.edges, eid)
	dropFromBucket(g.adj, e.end1, e.end2, eid)
	if e.end1 != e.end2 {
		dropFromBucket(g.adj, e.end2, e.end1, eid)
	}
}

// HasEdge reports whether at least one edge joins end1 and end2, in
// either endpoint order.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *UndirectedGraph) HasEdge(end1, end2 VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adj[end1][end2]) > 0
}

// EdgeBetween returns the edge joining end1 and end2 with the smallest
// catalog ID.
//
// Errors:
//   - ErrEdgeNotFound if the vertices are not adjacent.
//
// Complexity: O(parallel edges between the pair).
// Concurrency: read lock on muEdgeAdj.
func (g *UndirectedGraph) EdgeBetween(end1, end2 VertexID) (*UndirectedEdge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adj[end1][end2]
	if len(bucket) == 0 {
		return nil, ErrEdgeNotFound
	}
	var first string
	for eid := range bucket {
		if first == "" || eid < first {
			first = eid
		}
	}

	return g.edges[first], nil
}

// Edge returns the edge with the given catalog ID. Treat the result as
// read-only; rewiring goes through RewireEnd1/RewireEnd2.
//
// Errors:
//   - ErrEdgeNotFound if the ID is absent.
//
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *UndirectedGraph) Edge(edgeID string) (*UndirectedEdge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by catalog ID asc (stable order).
// Complexity: O(E log E). Concurrency: read lock on muEdgeAdj.
func (g *UndirectedGraph) Edges() []*UndirectedEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.edges))
	for eid := range g.edges {
		ids = append(ids, eid)
	}
	sort.Strings(ids)
	out := make([]*UndirectedEdge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *UndirectedGraph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns every edge touching id, sorted by catalog ID
// asc. A self-loop appears once.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg log deg).
// Concurrency: muVert read lock, then muEdgeAdj read lock.
func (g *UndirectedGraph) IncidentEdges(id VertexID) ([]*UndirectedEdge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.adj[id]))
	for _, bucket := range g.adj[id] {
		for eid := range bucket {
			ids = append(ids, eid)
		}
	}
	sort.Strings(ids)
	out := make([]*UndirectedEdge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id, sorted
// ascending. A self-loop contributes id itself.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg log deg).
// Concurrency: muVert read lock, then muEdgeAdj read lock.
func (g *UndirectedGraph) NeighborIDs(id VertexID) ([]VertexID, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]VertexID, 0, len(g.adj[id]))
	for nb, bucket := range g.adj[id] {
		if len(bucket) > 0 {
			out = append(out, nb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// RewireEnd1 reassigns the first endpoint of the edge with the given
// catalog ID, keeping the mirrored adjacency index consistent. The
// edge's identity and length are unchanged.
//
// Errors:
//   - ErrEdgeNotFound        if the catalog ID is absent.
//   - ErrVertexNotFound      if the new endpoint does not exist.
//   - ErrLoopNotAllowed      if the rewire would create a forbidden loop.
//   - ErrMultiEdgeNotAllowed if the rewire would create a forbidden parallel.
//
// Complexity: O(1) amortized.
// Concurrency: muVert read lock, then muEdgeAdj write lock.
func (g *UndirectedGraph) RewireEnd1(edgeID string, end1 VertexID) error {
	return g.rewire(edgeID, end1, true)
}

// RewireEnd2 reassigns the second endpoint; symmetric to RewireEnd1.
func (g *UndirectedGraph) RewireEnd2(edgeID string, end2 VertexID) error {
	return g.rewire(edgeID, end2, false)
}

// rewire implements RewireEnd1/RewireEnd2.
func (g *UndirectedGraph) rewire(edgeID string, v VertexID, first bool) error {
	if !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	kept := e.end2
	if !first {
		kept = e.end1
	}
	moved := e.end1
	if !first {
		moved = e.end2
	}
	if v == moved {
		return nil // no-op rewire
	}
	if v == kept && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && len(g.adj[v][kept]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	dropFromBucket(g.adj, e.end1, e.end2, edgeID)
	if e.end1 != e.end2 {
		dropFromBucket(g.adj, e.end2, e.end1, edgeID)
	}
	if first {
		e.SetEnd1(v)
	} else {
		e.SetEnd2(v)
	}
	ensureBucket(g.adj, e.end1, e.end2)[edgeID] = struct{}{}
	if e.end1 != e.end2 {
		ensureBucket(g.adj, e.end2, e.end1)[edgeID] = struct{}{}
	}

	return nil
}
