// Package translations resolves bilingual (English/Hausa) UI strings.
//
// A Provider owns the catalog: module name → language → key → string.
// Static in-memory and Redis-backed providers ship out of the box. The
// Resolver turns provider data into response payloads: a flattened
// per-language mapping with a fixed overlay of common UI strings, or a
// single module's dictionary. The catalog is fetched fresh on every call;
// there is no caching layer here.
package translations
