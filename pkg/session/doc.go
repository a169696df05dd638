// Package session provides anonymous session management for web handlers.
//
// A Manager orchestrates the session life-cycle. It relies on a Transport to
// extract / set the session token on every request and on a Store to persist
// session state. The package is storage-agnostic: any datastore satisfying
// the Store interface can be plugged in. A concurrent in-memory
// implementation and a Redis-backed implementation ship out of the box, and
// tokens travel in HMAC-signed cookies by default.
//
// Sessions carry a free-form data map. Writes through Session.Set raise a
// modified flag; Manager.Save persists the session only when that flag is
// set, so read-only requests never touch the store.
package session
