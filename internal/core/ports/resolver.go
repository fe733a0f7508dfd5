package ports

import "go.trai.ch/refdex/internal/core/domain"

// DependencyResolver returns the immediate outgoing edges of one node.
// Resolution requires walking the asset's internal structure and may be slow
// per call; callers batch their invocations.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the nodes the given node depends on, in document
	// order with duplicates collapsed. It may fail per node; the caller
	// treats a failure as non-fatal and skips the node.
	Resolve(node domain.InternedString) ([]domain.InternedString, error)
}
