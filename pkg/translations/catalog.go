package translations

import "sort"

// Catalog maps module name → language → translation key → translated string.
// It is owned by the Provider and read-only from this package's perspective.
type Catalog map[string]map[Language]map[string]string

// ModuleNames returns the catalog's module names in lexicographic order.
// This is the canonical iteration order for flattening, so merges are
// deterministic across requests.
func (c Catalog) ModuleNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForLanguage returns a module's sub-mapping for one language.
// An absent module or language yields nil, not an error.
func (c Catalog) ForLanguage(module string, lang Language) map[string]string {
	return c[module][lang]
}
