// Package roles holds the fixed role catalog sessions resolve their role from.
package roles

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Directory is a read-only lookup over the role catalog.
type Directory struct {
	byType map[domain.RoleType]domain.Role
	byID   map[string]domain.Role
}

type catalogFile struct {
	Roles []domain.Role `yaml:"roles"`
}

// Default returns the directory built from the embedded catalog.
func Default() *Directory {
	d, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("roles: embedded catalog is invalid: %v", err))
	}
	return d
}

// Parse builds a directory from a YAML catalog. Duplicate ids or types are rejected,
// and the catalog must contain the default role.
func Parse(data []byte) (*Directory, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse role catalog: %w", err)
	}
	d := &Directory{
		byType: make(map[domain.RoleType]domain.Role, len(f.Roles)),
		byID:   make(map[string]domain.Role, len(f.Roles)),
	}
	for _, r := range f.Roles {
		if r.ID == "" || r.Type == "" {
			return nil, fmt.Errorf("role catalog entry %q is missing id or type", r.Name)
		}
		if _, dup := d.byType[r.Type]; dup {
			return nil, fmt.Errorf("duplicate role type %q in catalog", r.Type)
		}
		if _, dup := d.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate role id %q in catalog", r.ID)
		}
		d.byType[r.Type] = r
		d.byID[r.ID] = r
	}
	if _, ok := d.byType[domain.DefaultRole]; !ok {
		return nil, fmt.Errorf("role catalog must define the %q role", domain.DefaultRole)
	}
	return d, nil
}

// Lookup resolves a role by its type.
func (d *Directory) Lookup(t domain.RoleType) (domain.Role, bool) {
	r, ok := d.byType[t]
	return r, ok
}

// ByID resolves a role by its catalog id.
func (d *Directory) ByID(id string) (domain.Role, bool) {
	r, ok := d.byID[id]
	return r, ok
}

// Resolve looks up t and falls back to the default role when t is unknown or empty.
func (d *Directory) Resolve(t domain.RoleType) domain.Role {
	if r, ok := d.byType[t]; ok {
		return r
	}
	return d.byType[domain.DefaultRole]
}

// All returns every role ordered by id.
func (d *Directory) All() []domain.Role {
	out := make([]domain.Role, 0, len(d.byID))
	for _, r := range d.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
