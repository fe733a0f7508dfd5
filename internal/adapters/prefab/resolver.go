// Package prefab resolves the asset references of one prefab document.
package prefab

import (
	"os"
	"path/filepath"

	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.DependencyResolver for prefab YAML documents.
// A prefab is a tree of named nodes; each node carries components whose
// source field points at another project asset:
//
//	name: player
//	components:
//	  - type: sprite
//	    source: assets/textures/player.png
//	children:
//	  - name: weapon
//	    components:
//	      - type: model
//	        source: assets/models/sword.prefab
type Resolver struct{}

// NewResolver creates a new prefab Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

type document struct {
	Name       string      `yaml:"name"`
	Components []component `yaml:"components"`
	Children   []document  `yaml:"children"`
}

type component struct {
	Type   string `yaml:"type"`
	Source string `yaml:"source"`
}

// Resolve parses the prefab at node's path and returns the referenced asset
// paths in document order, depth-first across nested children, duplicates
// collapsed. A read or parse failure is reported to the caller, which skips
// the node.
func (r *Resolver) Resolve(node domain.InternedString) ([]domain.InternedString, error) {
	path := filepath.FromSlash(node.String())

	//nolint:gosec // Node paths come from the corpus enumerator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read prefab")
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse prefab")
	}

	seen := make(map[string]struct{})
	var refs []domain.InternedString
	collect(&doc, seen, &refs)
	return refs, nil
}

func collect(doc *document, seen map[string]struct{}, refs *[]domain.InternedString) {
	for _, comp := range doc.Components {
		if comp.Source == "" {
			continue
		}
		if _, dup := seen[comp.Source]; dup {
			continue
		}
		seen[comp.Source] = struct{}{}
		*refs = append(*refs, domain.NewInternedString(comp.Source))
	}
	for i := range doc.Children {
		collect(&doc.Children[i], seen, refs)
	}
}
