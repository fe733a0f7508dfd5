// Package search serves reference and dependency lookups from a built cache.
package search

import (
	"sort"
	"strings"

	"go.trai.ch/refdex/internal/core/domain"
)

// Result holds the answer to one query: who depends on the target, and what
// the target depends on, bucketed by category.
type Result struct {
	// References lists the nodes depending on the target, sorted
	// case-insensitively ascending.
	References []string
	// Dependencies maps each category to the target's dependencies in that
	// bucket, each list sorted case-insensitively ascending. Iterate with
	// domain.Categories() for the fixed display order.
	Dependencies map[domain.Category][]string
}

// Empty reports whether the target had no known relations in either map.
func (r Result) Empty() bool {
	if len(r.References) > 0 {
		return false
	}
	for _, nodes := range r.Dependencies {
		if len(nodes) > 0 {
			return false
		}
	}
	return true
}

// Engine answers queries against a committed GraphCache. It never mutates
// the cache and is safe to call repeatedly.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Query returns the references and classified dependencies of target. A
// target absent from both maps yields an empty result; that is not an error.
// Querying an uninitialized cache returns domain.ErrNotInitialized — the
// orchestration layer must build or load first.
func (e *Engine) Query(cache *domain.GraphCache, target string) (Result, error) {
	if !cache.Initialized() {
		return Result{}, domain.ErrNotInitialized
	}

	node := domain.NewInternedString(target)

	references := toStrings(cache.Reverse(node))
	sortFold(references)

	dependencies := make(map[domain.Category][]string, len(domain.Categories()))
	for _, dep := range cache.Forward(node) {
		s := dep.String()
		cat := domain.Classify(s)
		dependencies[cat] = append(dependencies[cat], s)
	}
	for _, nodes := range dependencies {
		sortFold(nodes)
	}

	return Result{References: references, Dependencies: dependencies}, nil
}

func toStrings(nodes []domain.InternedString) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

// sortFold sorts identifiers ascending, comparing case-insensitively with a
// byte-wise tie-break so equal-fold pairs still order deterministically.
func sortFold(nodes []string) {
	sort.Slice(nodes, func(i, j int) bool {
		li, lj := strings.ToLower(nodes[i]), strings.ToLower(nodes[j])
		if li != lj {
			return li < lj
		}
		return nodes[i] < nodes[j]
	})
}
