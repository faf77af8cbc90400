// Package sqlite implements the SQLite storage backend for Satchel.
// JSONL files in the data directory are the durable source of truth;
// on Attach they are loaded into a fresh SQLite database, which serves
// as the query engine for hydrating the Book. Every Save rewrites both
// the database tables and the JSONL files atomically.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/dovetail-labs/satchel/pkg/types"
)

// Data directory file names.
const (
	dbFile        = "satchel.db"
	contactsJSONL = "contacts.jsonl"
	notesJSONL    = "notes.jsonl"
)

// Backend implements types.Store using SQLite as the query engine and
// JSONL files as the source of truth.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger
}

// NewBackend creates a new SQLite backend. The backend is not attached;
// call Attach with a Config first. A nil logger disables logging.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log}
}

// Attach initializes the backend: creates the data directory, recreates
// the SQLite database with a fresh schema, initializes missing JSONL
// files empty, and bulk-loads the JSONL records into SQLite.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is a throwaway cache; JSONL is the source of truth.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}

	loadAllJSONL(db, dataDir, b.log)

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.attached = true

	b.log.Debug("backend attached", zap.String("data_dir", dataDir))
	return nil
}

// Detach closes the SQLite connection. Idempotent; after Detach, Load
// and Save return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.log.Debug("backend detached")
	return nil
}

// Load hydrates a Book from the SQLite tables. Rows whose stored values
// no longer pass field validation are skipped: corrupt data degrades to
// absence, never to an error surfaced to the user.
func (b *Backend) Load() (*types.Book, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	book := types.NewBook()
	if err := hydrateContacts(b.db, book, b.log); err != nil {
		return nil, err
	}
	if err := hydrateNotes(b.db, book); err != nil {
		return nil, err
	}

	b.log.Debug("book loaded",
		zap.Int("contacts", book.Len()),
		zap.Int("notes", len(book.Notes())))
	return book, nil
}

// Save replaces the persisted state with the book's contents: the
// SQLite tables are rewritten in one transaction, then both JSONL files
// are rewritten atomically. Notes without an ID get a UUID v7.
func (b *Backend) Save(book *types.Book) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	contacts := dehydrateContacts(book)
	notes := dehydrateNotes(book)

	if err := replaceAll(b.db, contacts, notes); err != nil {
		return err
	}
	if err := persistContactsJSONL(b.config.DataDir, contacts); err != nil {
		return err
	}
	if err := persistNotesJSONL(b.config.DataDir, notes); err != nil {
		return err
	}

	b.log.Debug("book saved",
		zap.Int("contacts", len(contacts)),
		zap.Int("notes", len(notes)))
	return nil
}
