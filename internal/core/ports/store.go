package ports

import "go.trai.ch/refdex/internal/core/domain"

// CacheStore persists the reverse map between sessions. Only the reverse map
// is stored; the forward map is reconstructed by inversion on load.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Save writes the reverse-map snapshot to stable storage.
	Save(entries []domain.ReverseEntry) error

	// Load reads the persisted snapshot. A missing file is a normal cold
	// start and returns (nil, nil). Structurally invalid content returns
	// domain.ErrCorruptCache after quarantining the unreadable file.
	Load() ([]domain.ReverseEntry, error)
}
