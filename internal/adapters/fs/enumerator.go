// Package fs provides the file-system corpus enumerator.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
)

// Enumerator lists composite asset files under a corpus root. WalkDir visits
// entries in lexical order, so the enumeration is deterministic for a given
// tree, which in turn makes reverse-map insertion order reproducible.
type Enumerator struct {
	log     ports.Logger
	ignores []string
}

// NewEnumerator creates an Enumerator with the given ignore patterns
// (matched against base names, filepath.Match syntax).
func NewEnumerator(log ports.Logger, ignores []string) *Enumerator {
	return &Enumerator{log: log, ignores: ignores}
}

// ListNodes returns the slash-separated paths of all prefab files under
// root. A missing root is a diagnostic, not an error: the corpus is simply
// empty.
func (e *Enumerator) ListNodes(root string) ([]domain.InternedString, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.log.Warn(fmt.Sprintf("corpus root %q does not exist", root))
			return nil, nil
		}
		e.log.Warn(fmt.Sprintf("corpus root %q is unreadable: %v", root, err))
		return nil, nil
	}

	var nodes []domain.InternedString
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.log.Warn(fmt.Sprintf("skipping unreadable entry %q: %v", path, err))
			return nil
		}

		if d.IsDir() {
			if e.shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if e.ignored(d.Name()) {
			return nil
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if ext != domain.PrefabExtension {
			return nil
		}

		nodes = append(nodes, domain.NewInternedString(filepath.ToSlash(path)))
		return nil
	})

	return nodes, nil
}

func (e *Enumerator) shouldSkipDir(name string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	return e.ignored(name)
}

func (e *Enumerator) ignored(name string) bool {
	for _, pattern := range e.ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
