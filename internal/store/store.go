package store

// Store is the durable key/value boundary the cart and order log write
// through. Values are JSON-serialisable blobs rewritten wholesale on every
// write.
//
// Read reports false for a key that has never been written, for an
// unreachable backend and for a blob that no longer decodes into dst.
// Callers treat absent as empty state, never as a fatal error.
type Store interface {
	// Read decodes the value stored under key into dst and reports
	// whether a usable value was present.
	Read(key string, dst any) bool

	// Write serialises v and persists it under key, overwriting any
	// prior value. Callers log and continue on error; a failed write
	// degrades the session to in-memory state.
	Write(key string, v any) error
}
