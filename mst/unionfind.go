package mst

import "github.com/grafoio/grafo/core"

// unionFind is a disjoint-set structure over vertex handles, with path
// compression and union by rank. Shared by Kruskal and Clustering.
type unionFind struct {
	parent map[core.VertexID]core.VertexID
	rank   map[core.VertexID]int
	groups int // current number of disjoint sets
}

// newUnionFind places every vertex in its own singleton set.
// Complexity: O(V).
func newUnionFind(vertices []core.VertexID) *unionFind {
	u := &unionFind{
		parent: make(map[core.VertexID]core.VertexID, len(vertices)),
		rank:   make(map[core.VertexID]int, len(vertices)),
		groups: len(vertices),
	}
	for _, v := range vertices {
		u.parent[v] = v
		u.rank[v] = 0
	}

	return u
}

// find returns the set leader of v, compressing the path as it walks.
// Iterative to avoid deep recursion on degenerate chains.
func (u *unionFind) find(v core.VertexID) core.VertexID {
	for u.parent[v] != v {
		// Path compression: point v at its grandparent.
		u.parent[v] = u.parent[u.parent[v]]
		v = u.parent[v]
	}

	return v
}

// union merges the sets of a and b. Returns false when they already
// share a leader (no merge happened).
func (u *unionFind) union(a, b core.VertexID) bool {
	rootA, rootB := u.find(a), u.find(b)
	if rootA == rootB {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if u.rank[rootA] < u.rank[rootB] {
		u.parent[rootA] = rootB
	} else {
		u.parent[rootB] = rootA
		if u.rank[rootA] == u.rank[rootB] {
			u.rank[rootA]++
		}
	}
	u.groups--

	return true
}
