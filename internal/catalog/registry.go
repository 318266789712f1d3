package catalog

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Campus selects which catalog applies to a child.
type Campus string

const (
	Chaofa      Campus = "chaofa"
	Cherngtalay Campus = "cherngtalay"

	DefaultCampus = Chaofa
)

// Campuses lists the known campuses in display order.
var Campuses = []Campus{Chaofa, Cherngtalay}

// ParseCampus normalizes a stored campus value; empty or unknown values
// fall back to the default campus.
func ParseCampus(s string) Campus {
	switch Campus(strings.ToLower(strings.TrimSpace(s))) {
	case Cherngtalay:
		return Cherngtalay
	default:
		return DefaultCampus
	}
}

// ValidCampus reports whether s names a known campus exactly.
func ValidCampus(s string) bool {
	for _, c := range Campuses {
		if string(c) == s {
			return true
		}
	}
	return false
}

func (c Campus) DisplayName() string {
	switch c {
	case Cherngtalay:
		return "Cherngtalay"
	default:
		return "Chaofa"
	}
}

// Registry holds one catalog per campus, loaded once at startup and
// read-only afterwards.
type Registry struct {
	catalogs map[Campus]*Catalog
}

func NewRegistry(catalogs map[Campus]*Catalog) *Registry {
	m := make(map[Campus]*Catalog, len(catalogs))
	for k, v := range catalogs {
		m[k] = v
	}
	return &Registry{catalogs: m}
}

// For returns the catalog for campus. An unloaded campus yields an empty
// catalog so every derived result degrades to empty/zero.
func (r *Registry) For(campus Campus) *Catalog {
	if r != nil {
		if c, ok := r.catalogs[ParseCampus(string(campus))]; ok && c != nil {
			return c
		}
	}
	return Empty()
}

// Loaded returns the campuses that have a catalog, sorted.
func (r *Registry) Loaded() []Campus {
	if r == nil {
		return nil
	}
	out := make([]Campus, 0, len(r.catalogs))
	for k := range r.catalogs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LoadRegistry loads every campus file concurrently. Any failure aborts
// the whole load.
func LoadRegistry(ctx context.Context, files map[Campus]string) (*Registry, error) {
	type loaded struct {
		campus Campus
		cat    *Catalog
	}
	results := make(chan loaded, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for campus, path := range files {
		campus, path := campus, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := LoadFile(path)
			if err != nil {
				return err
			}
			results <- loaded{campus: campus, cat: c}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	m := make(map[Campus]*Catalog, len(files))
	for l := range results {
		m[l.campus] = l.cat
	}
	return NewRegistry(m), nil
}
