// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation and single-link clustering over
// undirected weighted graphs.
package mst

import (
	"errors"

	"github.com/grafoio/grafo/core"
)

// ErrInvalidGraph indicates the algorithms were handed a nil graph.
var ErrInvalidGraph = errors.New("mst: requires a non-nil undirected graph")

// ErrRootNotFound indicates Prim's starting vertex is not in the graph.
var ErrRootNotFound = errors.New("mst: root vertex not found")

// ErrDisconnected indicates the graph is not fully connected, so a
// spanning tree covering all vertices cannot be formed. It applies when
// |V| == 0 or |V| > 1 but some vertex is unreachable.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrBadClusterCount indicates Clustering was asked for fewer than two
// or more than |V| clusters.
var ErrBadClusterCount = errors.New("mst: cluster count must be between 2 and the vertex count")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use. Use DefaultOptions() for a Kruskal setup.
//
// Fields:
//
//	Method string        — one of MethodPrim or MethodKruskal.
//	Root   core.VertexID — start vertex for Prim; ignored by Kruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root core.VertexID
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root core.VertexID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, opts.Root).
//	– otherwise:     returns ErrInvalidGraph.
//
// Returns:
//
//	[]core.UndirectedEdge — edges of the MST (empty for a single vertex).
//	float64               — total length of the MST (zero if no edges).
//	error                 — non-nil if computation cannot proceed.
//
// Note: optional scaffolding — Prim and Kruskal can be called directly.
func Compute(graph *core.UndirectedGraph, opts MSTOptions) ([]core.UndirectedEdge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
