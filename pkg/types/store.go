package types

// Store is the persistence port for a Book. Callers attach to a
// backend, load the book once, save it back after mutating, and detach
// when done. Whatever contact/note graph was saved is reconstructed
// structurally identically by the next load.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load reads the persisted state into a new Book. Missing,
	// empty, or unreadable state yields an empty Book, never an
	// error; corruption is swallowed.
	Load() (*Book, error)

	// Save persists the entire book, replacing prior state.
	Save(book *Book) error
}
