// Package core defines the central edge and vertex types shared by the
// rest of grafo, and the thread-safe containers that own them.
//
// This file declares VertexID, Vertex, the HasLength capability,
// sentinel errors, GraphOption, and the container constructors.
//
// Errors:
//
//	ErrVertexExists        - vertex ID already present in the container.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"strconv"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexExists indicates an AddVertex call with an ID already in the catalog.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// It is the fail-fast surface for absent endpoint references: a container
	// never builds or rewires an edge whose endpoint is not in its catalog.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// VertexID is a stable, non-owning handle identifying a vertex inside a
// container. Edges record VertexIDs instead of *Vertex so that vertex
// lifetime stays with the container that created it.
type VertexID int64

// Vertex represents a node in a graph.
//
// ID uniquely identifies this Vertex within its container. Incidence
// bookkeeping (which edges touch the vertex) lives in the container,
// not here.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID
}

// HasLength is the capability shared by every edge variant: a fixed,
// real-valued length (weight). Algorithms that only care about weights
// can accept this interface instead of a concrete edge type.
type HasLength interface {
	// Length returns the edge's weight.
	Length() float64
}

// graphConfig carries the policy flags shared by both containers.
type graphConfig struct {
	allowLoops bool // permit self-loop edges
	allowMulti bool // permit parallel edges between the same endpoints
}

// GraphOption configures behavior of a container before creation.
type GraphOption func(*graphConfig)

// WithLoops permits self-loops (edges whose endpoints coincide).
// Disabled by default.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
// Disabled by default.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// edgeIDPrefix is the textual prefix for generated edge identifiers.
// Byte form allows appending to a []byte buffer without fmt.
// Produces stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// nextEdgeID reserves and renders the next edge identifier for a
// container's catalog.
//
// Determinism: monotonic uint64 counter, "e" + decimal digits, no
// locale/time/randomness. Safe for concurrent callers via atomic.AddUint64.
func nextEdgeID(counter *uint64) string {
	n := atomic.AddUint64(counter, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)      // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSet is a bucket of edge IDs inside the nested adjacency maps.
type edgeSet = map[string]struct{}

// adjacency maps first-endpoint → second-endpoint → edge-ID set.
type adjacency = map[VertexID]map[VertexID]edgeSet

// ensureBucket guarantees adj[a][b] exists and returns it.
func ensureBucket(adj adjacency, a, b VertexID) edgeSet {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[VertexID]edgeSet)
		adj[a] = inner
	}
	bucket, ok := inner[b]
	if !ok {
		bucket = make(edgeSet)
		inner[b] = bucket
	}

	return bucket
}

// dropFromBucket removes eid from adj[a][b] and prunes empty buckets so
// membership checks stay O(1) and enumeration stays tight.
func dropFromBucket(adj adjacency, a, b VertexID, eid string) {
	inner, ok := adj[a]
	if !ok {
		return
	}
	bucket, ok := inner[b]
	if !ok {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(inner, b)
	}
	if len(inner) == 0 {
		delete(adj, a)
	}
}
