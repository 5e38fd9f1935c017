package questions

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed data/*.json
var catalogFiles embed.FS

// Catalog provides read-only access to the static question-set documents.
type Catalog struct {
	sets []Set
}

// LoadCatalog parses every embedded question-set document. Both the
// short-form and long-form collections are loaded in full.
func LoadCatalog() (*Catalog, error) {
	return loadCatalogFS(catalogFiles)
}

func loadCatalogFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, "data")
	if err != nil {
		return nil, fmt.Errorf("read question catalog: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var sets []Set
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, "data/"+name)
		if err != nil {
			return nil, fmt.Errorf("read question file %s: %w", name, err)
		}
		var fileSets []Set
		if err := json.Unmarshal(raw, &fileSets); err != nil {
			return nil, fmt.Errorf("parse question file %s: %w", name, err)
		}
		sets = append(sets, fileSets...)
	}
	return &Catalog{sets: sets}, nil
}

// Sets returns all loaded question sets.
func (c *Catalog) Sets() []Set {
	return c.sets
}

// SetsByForm returns the question sets for the given form ("short" or "long").
func (c *Catalog) SetsByForm(form string) []Set {
	var out []Set
	for _, set := range c.sets {
		if set.Form == form {
			out = append(out, set)
		}
	}
	return out
}

// SetByModule returns the question set for a module id, if present.
func (c *Catalog) SetByModule(moduleID string) (Set, bool) {
	for _, set := range c.sets {
		if set.ModuleID == moduleID {
			return set, true
		}
	}
	return Set{}, false
}
