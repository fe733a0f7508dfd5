// Package cachefile persists the reverse-reference index as a flat JSON file.
package cachefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
	"go.trai.ch/zerr"
)

const formatVersion = 1

// quarantineSuffix is appended to unreadable cache files so repeated loads
// do not fail on the same bytes again.
const quarantineSuffix = ".corrupt"

// Store implements ports.CacheStore using a single human-diffable JSON file.
type Store struct {
	path string
	log  ports.Logger
}

// NewStore creates a CacheStore backed by the file at the given path.
func NewStore(path string, log ports.Logger) *Store {
	return &Store{
		path: filepath.Clean(path),
		log:  log,
	}
}

// cacheFile is the on-disk schema: an ordered list of reverse-map records
// plus a checksum over their canonical encoding.
type cacheFile struct {
	Version  int        `json:"version"`
	Checksum string     `json:"checksum"`
	Entries  []entryDTO `json:"entries"`
}

type entryDTO struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Save serializes the reverse-map snapshot and writes it to the store path.
func (s *Store) Save(entries []domain.ReverseEntry) error {
	dtos := make([]entryDTO, 0, len(entries))
	for _, entry := range entries {
		values := make([]string, len(entry.Values))
		for i, v := range entry.Values {
			values[i] = v.String()
		}
		dtos = append(dtos, entryDTO{Key: entry.Key.String(), Values: values})
	}

	sum, err := checksum(dtos)
	if err != nil {
		return zerr.Wrap(err, "failed to checksum cache entries")
	}

	data, err := json.MarshalIndent(cacheFile{
		Version:  formatVersion,
		Checksum: sum,
		Entries:  dtos,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache file")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache file")
	}
	return nil
}

// Load reads the persisted snapshot. A missing file is a cold start and
// returns (nil, nil). Undecodable or structurally invalid content is
// quarantined and reported as domain.ErrCorruptCache so the caller rebuilds.
func (s *Store) Load() ([]domain.ReverseEntry, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read cache file")
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		s.quarantine()
		return nil, zerr.With(zerr.Wrap(domain.ErrCorruptCache, ""), "cause", err.Error())
	}

	if reason := validate(file); reason != "" {
		s.quarantine()
		return nil, zerr.With(zerr.Wrap(domain.ErrCorruptCache, ""), "cause", reason)
	}

	entries := make([]domain.ReverseEntry, 0, len(file.Entries))
	for _, dto := range file.Entries {
		values := make([]domain.InternedString, len(dto.Values))
		for i, v := range dto.Values {
			values[i] = domain.NewInternedString(v)
		}
		entries = append(entries, domain.ReverseEntry{
			Key:    domain.NewInternedString(dto.Key),
			Values: values,
		})
	}
	return entries, nil
}

// validate returns a non-empty reason when the decoded file is structurally
// invalid.
func validate(file cacheFile) string {
	if file.Version != formatVersion {
		return fmt.Sprintf("unsupported version %d", file.Version)
	}
	if file.Entries == nil {
		return "null entries list"
	}
	for _, entry := range file.Entries {
		if entry.Key == "" {
			return "entry with empty key"
		}
	}
	sum, err := checksum(file.Entries)
	if err != nil || sum != file.Checksum {
		return "checksum mismatch"
	}
	return ""
}

// quarantine renames the unreadable file aside, best effort.
func (s *Store) quarantine() {
	if err := os.Rename(s.path, s.path+quarantineSuffix); err != nil {
		s.log.Warn(fmt.Sprintf("failed to quarantine cache file: %v", err))
		return
	}
	s.log.Warn(fmt.Sprintf("quarantined corrupt cache file to %s%s", s.path, quarantineSuffix))
}

// checksum computes the xxhash of the canonical entries encoding.
func checksum(entries []entryDTO) (string, error) {
	payload, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(payload)), nil
}
