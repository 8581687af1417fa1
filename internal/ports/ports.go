// Package ports defines the interfaces that adapters implement and the
// shared types that cross layer boundaries. The domain depends only on
// these contracts, never on concrete adapters.
package ports

// Reference is a named reference document saved in the library so a
// reviewer can reuse it across invocations. Only caller-supplied inputs
// are persisted, never comparison results.
type Reference struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Words   int    `json:"words"`
	AddedAt int64  `json:"added_at"`
}

// Storage persists the reference library. Writes are transactional: a
// crash mid-write must not corrupt previously committed references.
type Storage interface {
	// SaveReference stores a reference, overwriting any prior one with
	// the same name.
	SaveReference(ref *Reference) error

	// LoadReference retrieves a reference by name.
	// Returns nil, nil when no such reference exists.
	LoadReference(name string) (*Reference, error)

	// ListReferences returns all stored references sorted by name.
	ListReferences() ([]*Reference, error)

	// DeleteReference removes a reference by name. Idempotent: deleting
	// a nonexistent reference is not an error.
	DeleteReference(name string) error
}

// Watcher monitors a single file and reports changes, debounced so editor
// save storms trigger one re-run.
type Watcher interface {
	// Watch starts monitoring path. onChange is called after each
	// (debounced) modification. Returns once watching is established.
	Watch(path string, onChange func()) error

	// Stop terminates the watcher and releases resources. Safe to call
	// more than once.
	Stop()
}

// PhraseSpan is one occurrence of an ignored phrase, as byte offsets into
// the scanned text (start inclusive, end exclusive).
type PhraseSpan struct {
	Start int
	End   int
}

// PhraseScanner locates configured boilerplate phrases in a text so the
// covered tokens can be excluded from matching.
type PhraseScanner interface {
	// Scan returns every phrase occurrence in text, in position order.
	Scan(text string) []PhraseSpan
}
