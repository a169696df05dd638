package translations

import (
	"context"
	"maps"
)

// Provider supplies the translation catalog. Implementations own the data;
// callers treat everything returned as read-only.
type Provider interface {
	// All returns the full catalog.
	All(ctx context.Context) (Catalog, error)

	// Module returns one module's key→string mapping for a language.
	// An absent module or language yields an empty result, not an error.
	Module(ctx context.Context, name string, lang Language) (map[string]string, error)
}

// StaticProvider serves a fixed in-memory catalog.
type StaticProvider struct {
	catalog Catalog
}

// NewStaticProvider creates a provider over the given catalog.
// A nil catalog is treated as empty.
func NewStaticProvider(catalog Catalog) *StaticProvider {
	if catalog == nil {
		catalog = make(Catalog)
	}
	return &StaticProvider{catalog: catalog}
}

// All implements Provider.
func (p *StaticProvider) All(_ context.Context) (Catalog, error) {
	return p.catalog, nil
}

// Module implements Provider.
func (p *StaticProvider) Module(_ context.Context, name string, lang Language) (map[string]string, error) {
	src := p.catalog.ForLanguage(name, lang)
	if len(src) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(src))
	maps.Copy(out, src)
	return out, nil
}
