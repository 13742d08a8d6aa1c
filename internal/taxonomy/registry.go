package taxonomy

import (
	"sort"
	"sync"

	"warren/finparse/internal/models"
	"warren/finparse/internal/pipelineerror"
)

// Registry holds a validated, read-only set of category definitions.
// The default registry is process-wide; tenant-specific registries are
// built per call by merging custom definitions on top of the defaults.
type Registry struct {
	byKey map[string]models.CategoryDefinition
	keys  []string
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Defaults returns the process-wide default registry, building and
// validating it on first use. A malformed default definition is a
// programming-contract violation and returns a hard error.
func Defaults() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry(defaultDefinitions)
	})
	return defaultRegistry, defaultErr
}

// MustDefaults is Defaults for initialization paths where a broken
// shipped taxonomy should abort the process.
func MustDefaults() *Registry {
	r, err := Defaults()
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry validates the given definitions and builds a registry.
// Duplicate keys are rejected.
func NewRegistry(defs []models.CategoryDefinition) (*Registry, error) {
	byKey := make(map[string]models.CategoryDefinition, len(defs))
	keys := make([]string, 0, len(defs))
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, &pipelineerror.TaxonomyError{Key: def.Key, Reason: err.Error()}
		}
		if _, exists := byKey[def.Key]; exists {
			return nil, &pipelineerror.TaxonomyError{Key: def.Key, Reason: "duplicate key"}
		}
		byKey[def.Key] = def
		keys = append(keys, def.Key)
	}
	sort.Strings(keys)
	return &Registry{byKey: byKey, keys: keys}, nil
}

// Lookup returns the definition for a key. Unknown keys are rejected here,
// at the boundary, rather than deep in business logic.
func (r *Registry) Lookup(key string) (models.CategoryDefinition, bool) {
	def, ok := r.byKey[key]
	return def, ok
}

// Keys returns all category keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All returns every definition in key order.
func (r *Registry) All() []models.CategoryDefinition {
	out := make([]models.CategoryDefinition, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// ForStatement returns the definitions applicable to a statement type.
// Unknown statement types return every definition, since a document whose
// type could not be detected may hold any account.
func (r *Registry) ForStatement(st models.StatementType) []models.CategoryDefinition {
	if st == models.StatementUnknown || st == "" {
		return r.All()
	}
	var out []models.CategoryDefinition
	for _, k := range r.keys {
		if r.byKey[k].StatementType == st {
			out = append(out, r.byKey[k])
		}
	}
	return out
}

// Accounts returns only account-type definitions for a statement type,
// the candidate set for line-item classification.
func (r *Registry) Accounts(st models.StatementType) []models.CategoryDefinition {
	var out []models.CategoryDefinition
	for _, def := range r.ForStatement(st) {
		if def.CategoryType == models.CategoryTypeAccount {
			out = append(out, def)
		}
	}
	return out
}

// Merge returns a new registry with custom definitions layered on top of
// this one. Custom keys never collide with default keys by construction
// (validated at creation time), but a collision is still rejected.
func (r *Registry) Merge(custom []models.CategoryDefinition) (*Registry, error) {
	defs := r.All()
	return NewRegistry(append(defs, custom...))
}
