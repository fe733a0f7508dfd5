// Package domain contains the core domain models for the asset reference index.
package domain

// ReverseEntry is one persisted record of the reverse map: a node and the
// ordered list of nodes that depend on it.
type ReverseEntry struct {
	Key    InternedString
	Values []InternedString
}

// GraphCache is the bidirectional dependency index built from one full pass
// over the corpus. The forward map holds, per processed node, the set of
// nodes it depends on. The reverse map holds, per referenced node, the
// dependents in the order they were processed.
//
// Invariant: B is in Forward(A) exactly when A is in Reverse(B). AddEdge
// updates both maps together; nothing else mutates them.
//
// A GraphCache is not safe for concurrent mutation. The single-writer
// discipline lives in the indexer, which only publishes a cache once it is
// complete.
type GraphCache struct {
	forward map[InternedString]map[InternedString]struct{}
	reverse map[InternedString][]InternedString

	// reverseOrder records reverse-map keys in first-seen order so that
	// persisted snapshots are deterministic for a stable corpus ordering.
	reverseOrder []InternedString

	edges       int
	initialized bool
}

// NewGraphCache creates a new empty, uninitialized GraphCache.
func NewGraphCache() *GraphCache {
	return &GraphCache{
		forward: make(map[InternedString]map[InternedString]struct{}),
		reverse: make(map[InternedString][]InternedString),
	}
}

// AddEdge records that from depends on to, updating the forward and reverse
// maps together. A duplicate (from, to) pair collapses: the forward set
// already contains the dependency, so the reverse list is left untouched.
func (c *GraphCache) AddEdge(from, to InternedString) {
	deps, ok := c.forward[from]
	if !ok {
		deps = make(map[InternedString]struct{})
		c.forward[from] = deps
	}
	if _, dup := deps[to]; dup {
		return
	}
	deps[to] = struct{}{}

	if _, seen := c.reverse[to]; !seen {
		c.reverseOrder = append(c.reverseOrder, to)
	}
	c.reverse[to] = append(c.reverse[to], from)
	c.edges++
}

// Touch ensures a forward-map entry exists for the given node, marking it as
// processed even when it has no outgoing edges.
func (c *GraphCache) Touch(node InternedString) {
	if _, ok := c.forward[node]; !ok {
		c.forward[node] = make(map[InternedString]struct{})
	}
}

// Forward returns the dependencies of the given node. The result is a copy
// in unspecified order; forward edges are a set.
func (c *GraphCache) Forward(node InternedString) []InternedString {
	deps, ok := c.forward[node]
	if !ok {
		return nil
	}
	out := make([]InternedString, 0, len(deps))
	for dep := range deps {
		out = append(out, dep)
	}
	return out
}

// Reverse returns a copy of the ordered dependent list for the given node.
// Nodes nothing depends on have no entry and yield nil.
func (c *GraphCache) Reverse(node InternedString) []InternedString {
	refs, ok := c.reverse[node]
	if !ok {
		return nil
	}
	out := make([]InternedString, len(refs))
	copy(out, refs)
	return out
}

// NodeCount returns the number of processed nodes (forward-map entries).
func (c *GraphCache) NodeCount() int {
	return len(c.forward)
}

// EdgeCount returns the number of distinct edges in the index.
func (c *GraphCache) EdgeCount() int {
	return c.edges
}

// Initialized reports whether the cache has been through a complete build
// or a successful load and is safe to query.
func (c *GraphCache) Initialized() bool {
	return c.initialized
}

// MarkInitialized marks the cache as complete and queryable.
func (c *GraphCache) MarkInitialized() {
	c.initialized = true
}

// ReverseEntries returns a snapshot of the reverse map as an ordered list of
// entries, suitable for persistence. The slice is never nil.
func (c *GraphCache) ReverseEntries() []ReverseEntry {
	entries := make([]ReverseEntry, 0, len(c.reverseOrder))
	for _, key := range c.reverseOrder {
		values := make([]InternedString, len(c.reverse[key]))
		copy(values, c.reverse[key])
		entries = append(entries, ReverseEntry{Key: key, Values: values})
	}
	return entries
}

// FromReverse reconstructs a GraphCache from a persisted reverse-map
// snapshot by inverting it. The forward map comes back identical as a set;
// the original per-node forward insertion order is not recoverable, which is
// acceptable because forward edges carry no order. The returned cache is
// marked initialized.
func FromReverse(entries []ReverseEntry) *GraphCache {
	c := NewGraphCache()
	for _, entry := range entries {
		for _, dependent := range entry.Values {
			c.AddEdge(dependent, entry.Key)
		}
	}
	c.MarkInitialized()
	return c
}
