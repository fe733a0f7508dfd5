// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/refdex/internal/core/domain"

// Enumerator lists the candidate nodes of the corpus.
//
//go:generate mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// ListNodes returns the identifiers of all indexable assets under root,
	// in deterministic order. A missing or empty root yields an empty slice
	// and a diagnostic, not an error.
	ListNodes(root string) ([]domain.InternedString, error)
}
