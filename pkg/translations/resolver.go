package translations

import (
	"context"
	"io"
	"log/slog"
	"maps"
)

// Resolver assembles translation responses from a Provider: it flattens
// module dictionaries into one mapping and applies the common overlay.
type Resolver struct {
	provider Provider
	log      *slog.Logger
}

// NewResolver creates a Resolver. A nil logger discards collision logs.
func NewResolver(provider Provider, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{provider: provider, log: log}
}

// Flattened merges all module dictionaries for one language into a single
// mapping. Modules are merged in catalog iteration order with last-write-wins
// on key collision; colliding keys are logged at debug level but never
// rejected. The common overlay is applied last and unconditionally overrides
// prior values.
func (r *Resolver) Flattened(ctx context.Context, lang Language) (map[string]string, error) {
	catalog, err := r.provider.All(ctx)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]string)
	for _, name := range catalog.ModuleNames() {
		for key, value := range catalog.ForLanguage(name, lang) {
			if prev, ok := flat[key]; ok && prev != value {
				r.log.DebugContext(ctx, "translation key collision",
					slog.String("key", key),
					slog.String("module", name),
					slog.String("lang", string(lang)),
				)
			}
			flat[key] = value
		}
	}

	maps.Copy(flat, CommonTranslations(lang))

	return flat, nil
}

// Module returns one module's mapping for a language. An absent or empty
// module fails with ModuleNotFoundError.
func (r *Resolver) Module(ctx context.Context, name string, lang Language) (map[string]string, error) {
	strings, err := r.provider.Module(ctx, name, lang)
	if err != nil {
		return nil, err
	}
	if len(strings) == 0 {
		return nil, &ModuleNotFoundError{Module: name}
	}
	return strings, nil
}
