// Package core_test contains test helpers for grafo/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).
//   - Avoid *testing.T usage inside goroutines in concurrency tests.
package core_test

import (
	"errors"
	"testing"

	"github.com/grafoio/grafo/core"
)

// Common vertex IDs used across core tests.
const (
	Vertex1 = core.VertexID(1)
	Vertex2 = core.VertexID(2)
	Vertex3 = core.VertexID(3)
	Vertex4 = core.VertexID(4)
	Vertex7 = core.VertexID(7)

	VertexAbsent = core.VertexID(99)
)

// Common lengths used across core tests (avoid magic numbers in test bodies).
const (
	Len0       = 0.0
	Len1       = 1.0
	Len2       = 2.0
	Len2Half   = 2.5
	Len4       = 4.0
	LenNeg3    = -3.0
	LenRewired = 6.25
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds    = 200
	NConcurrentReaders = 50
)

// MustNoError fails fast when err != nil.
func MustNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", msg, err)
	}
}

// MustErrorIs fails fast unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, msg string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: got error %v, want %v", msg, err, want)
	}
}

// MustTrue fails fast when cond is false.
func MustTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: condition is false, want true", msg)
	}
}

// MustFalse fails fast when cond is true.
func MustFalse(t *testing.T, cond bool, msg string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: condition is true, want false", msg)
	}
}

// NewDirectedTriangle builds 1→2(1.0), 2→3(2.0), 1→3(4.0) on a default
// DirectedGraph.
func NewDirectedTriangle(t *testing.T) *core.DirectedGraph {
	t.Helper()
	g := core.NewDirectedGraph()
	for _, id := range []core.VertexID{Vertex1, Vertex2, Vertex3} {
		MustNoError(t, g.AddVertex(id), "AddVertex on triangle fixture")
	}
	_, err := g.AddEdge(Vertex1, Vertex2, Len1)
	MustNoError(t, err, "AddEdge 1→2")
	_, err = g.AddEdge(Vertex2, Vertex3, Len2)
	MustNoError(t, err, "AddEdge 2→3")
	_, err = g.AddEdge(Vertex1, Vertex3, Len4)
	MustNoError(t, err, "AddEdge 1→3")

	return g
}
