// File: directed.go
// Role: DirectedGraph container: vertex/edge lifecycle, incidence
//       queries, and index-coordinated endpoint rewiring.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Edges(), EmissiveEdges(), IncidentEdges() return edges sorted by
//     catalog ID asc.
//
// Concurrency:
//   - Vertex catalog protected by muVert; edge catalog and both
//     incidence maps by muEdgeAdj. Lock order is muVert -> muEdgeAdj.
//
// AI-HINT (file):
//   - AddEdge requires both endpoints to exist already (ErrVertexNotFound);
//     vertices are never auto-created.
//   - Never call SetTail/SetHead on a container-owned edge directly;
//     RewireTail/RewireHead keep the incidence index consistent.
package core

import (
	"sort"
	"sync"
)

// DirectedGraph is an in-memory directed weighted graph.
//
// It owns its vertices and edges: edges reference vertices by VertexID
// handles, and every mutation that touches incidence goes through the
// container so the emissive/incident indexes never drift from the edge
// records.
//
// Policy flags (loops, multi-edges) are fixed at construction; both are
// disabled by default.
type DirectedGraph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, emissive, incident

	cfg graphConfig // immutable after construction

	edgeSeq  uint64 // atomic edge ID generator
	vertices map[VertexID]*Vertex
	edges    map[string]*DirectedEdge

	// emissive[tail][head][edgeID]: outgoing incidence index.
	// incident[head][tail][edgeID]: incoming mirror.
	emissive adjacency
	incident adjacency
}

// NewDirectedGraph creates an empty DirectedGraph with the given
// options. By default self-loops and parallel edges are rejected.
// Complexity: O(len(opts))
func NewDirectedGraph(opts ...GraphOption) *DirectedGraph {
	g := &DirectedGraph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[string]*DirectedEdge),
		emissive: make(adjacency),
		incident: make(adjacency),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *DirectedGraph) Looped() bool { return g.cfg.allowLoops }

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1).
func (g *DirectedGraph) Multigraph() bool { return g.cfg.allowMulti }

// AddVertex registers a new vertex under the given ID.
//
// Errors:
//   - ErrVertexExists if the ID is already in the catalog.
//
// Complexity: O(1). Concurrency: write lock on muVert.
func (g *DirectedGraph) AddVertex(id VertexID) error {
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
func (g *DirectedGraph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and every edge that mentions it, both
// emissive (id as tail) and incident (id as head).
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(deg(v)) plus bucket cleanup.
// Concurrency: muVert write lock, then muEdgeAdj write lock.
func (g *DirectedGraph) RemoveVertex(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	// Collect every catalog ID touching the vertex before mutating maps.
	var doomed []string
	for _, bucket := range g.emissive[id] {
		for eid := range bucket {
			doomed = append(doomed, eid)
		}
	}
	for _, bucket := range g.incident[id] {
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
func (g *DirectedGraph) Vertices() []VertexID {
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
func (g *DirectedGraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new edge tail → head with the given length and
// returns its catalog ID.
//
// Steps:
//  1. Reject self-loops unless WithLoops (ErrLoopNotAllowed).
//  2. Require both endpoints to exist (ErrVertexNotFound) -- the edge
//     record must never hold an absent reference.
//  3. Under muEdgeAdj, reject parallels unless WithMultiEdges
//     (ErrMultiEdgeNotAllowed).
//  4. Generate the catalog ID, build the record, link both indexes.
//
// Negative lengths are accepted; algorithms that need non-negative
// weights validate on entry.
//
// Complexity: O(1) amortized.
// Concurrency: muVert read lock, then muEdgeAdj write lock.
func (g *DirectedGraph) AddEdge(tail, head VertexID, length float64) (string, error) {
	if tail == head && !g.cfg.allowLoops {
		return "", ErrLoopNotAllowed
	}
	g.muVert.RLock()
	_, tailOK := g.vertices[tail]
	_, headOK := g.vertices[head]
	g.muVert.RUnlock()
	if !tailOK || !headOK {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.cfg.allowMulti && len(g.emissive[tail][head]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(&g.edgeSeq)
	g.edges[eid] = NewDirectedEdge(tail, head, length)
	ensureBucket(g.emissive, tail, head)[eid] = struct{}{}
	ensureBucket(g.incident, head, tail)[eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes one edge tail → head. When parallels exist the
// edge with the smallest catalog ID is removed (deterministic).
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(parallel edges between the pair).
// Concurrency: write lock on muEdgeAdj.
func (g *DirectedGraph) RemoveEdge(tail, head VertexID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	bucket := g.emissive[tail][head]
	if len(bucket) == 0 {
		return ErrEdgeNotFound
	}
	// Pick the smallest catalog ID for deterministic removal order.
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
func (g *DirectedGraph) RemoveEdgeByID(edgeID string) error {
	// AI-HINT: Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(edgeID, e)

	return nil
}

// unlinkLocked removes an edge from the catalog and both incidence
// indexes. Caller must hold muEdgeAdj write lock.
func (g *DirectedGraph) unlinkLocked(eid string, e *DirectedEdge) {
	delete(g.edges, eid)
	dropFromBucket(g.emissive, e.tail, e.head, eid)
	dropFromBucket(g.incident, e.head, e.tail, eid)
}

// HasEdge reports whether at least one edge tail → head exists.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *DirectedGraph) HasEdge(tail, head VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.emissive[tail][head]) > 0
}

// Edge returns the edge with the given catalog ID.
//
// The returned *DirectedEdge must be treated as read-only by callers;
// endpoint rewiring goes through RewireTail/RewireHead.
//
// Errors:
//   - ErrEdgeNotFound if the ID is absent.
//
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *DirectedGraph) Edge(edgeID string) (*DirectedEdge, error) {
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
func (g *DirectedGraph) Edges() []*DirectedEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.sortedByIDLocked(g.edges)
}

// EdgeCount returns the total number of edges.
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *DirectedGraph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EmissiveEdges returns every edge whose tail is id, sorted by catalog
// ID asc.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(out-deg log out-deg).
// Concurrency: muVert read lock, then muEdgeAdj read lock.
func (g *DirectedGraph) EmissiveEdges(id VertexID) ([]*DirectedEdge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collectLocked(g.emissive[id]), nil
}

// IncidentEdges returns every edge whose head is id, sorted by catalog
// ID asc.
//
// Errors:
//   - ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(in-deg log in-deg).
// Concurrency: muVert read lock, then muEdgeAdj read lock.
func (g *DirectedGraph) IncidentEdges(id VertexID) ([]*DirectedEdge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collectLocked(g.incident[id]), nil
}

// RewireTail reassigns the tail endpoint of the edge with the given
// catalog ID and updates both incidence indexes in the same critical
// section, so HasEdge/EmissiveEdges never observe a half-rewired edge.
// The edge's identity (catalog ID) and length are unchanged.
//
// Errors:
//   - ErrEdgeNotFound        if the catalog ID is absent.
//   - ErrVertexNotFound      if the new tail vertex does not exist.
//   - ErrLoopNotAllowed      if the rewire would create a forbidden loop.
//   - ErrMultiEdgeNotAllowed if the rewire would create a forbidden parallel.
//
// Complexity: O(1) amortized.
// Concurrency: muVert read lock, then muEdgeAdj write lock.
func (g *DirectedGraph) RewireTail(edgeID string, tail VertexID) error {
	if !g.HasVertex(tail) {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	if tail == e.tail {
		return nil // no-op rewire
	}
	if tail == e.head && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && len(g.emissive[tail][e.head]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	dropFromBucket(g.emissive, e.tail, e.head, edgeID)
	dropFromBucket(g.incident, e.head, e.tail, edgeID)
	e.SetTail(tail)
	ensureBucket(g.emissive, e.tail, e.head)[edgeID] = struct{}{}
	ensureBucket(g.incident, e.head, e.tail)[edgeID] = struct{}{}

	return nil
}

// RewireHead reassigns the head endpoint; symmetric to RewireTail.
//
// Errors: same set as RewireTail.
// Complexity: O(1) amortized.
// Concurrency: muVert read lock, then muEdgeAdj write lock.
func (g *DirectedGraph) RewireHead(edgeID string, head VertexID) error {
	if !g.HasVertex(head) {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	if head == e.head {
		return nil // no-op rewire
	}
	if head == e.tail && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.cfg.allowMulti && len(g.emissive[e.tail][head]) > 0 {
		return ErrMultiEdgeNotAllowed
	}

	dropFromBucket(g.emissive, e.tail, e.head, edgeID)
	dropFromBucket(g.incident, e.head, e.tail, edgeID)
	e.SetHead(head)
	ensureBucket(g.emissive, e.tail, e.head)[edgeID] = struct{}{}
	ensureBucket(g.incident, e.head, e.tail)[edgeID] = struct{}{}

	return nil
}

// collectLocked flattens one side of an incidence index into a slice of
// edges sorted by catalog ID. Caller must hold muEdgeAdj (read) lock.
func (g *DirectedGraph) collectLocked(inner map[VertexID]edgeSet) []*DirectedEdge {
	ids := make([]string, 0, len(inner))
	for _, bucket := range inner {
		for eid := range bucket {
			ids = append(ids, eid)
		}
	}
	sort.Strings(ids)
	out := make([]*DirectedEdge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, g.edges[eid])
	}

	return out
}

// sortedByIDLocked returns the full edge catalog sorted by ID asc.
// Caller must hold muEdgeAdj (read) lock.
func (g *DirectedGraph) sortedByIDLocked(catalog map[string]*DirectedEdge) []*DirectedEdge {
	ids := make([]string, 0, len(catalog))
	for eid := range catalog {
		ids = append(ids, eid)
	}
	sort.Strings(ids)
	out := make([]*DirectedEdge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, catalog[eid])
	}

	return out
}
