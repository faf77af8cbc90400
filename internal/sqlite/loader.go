// JSONL-to-SQLite loading for Attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"path/filepath"

	"go.uber.org/zap"
)

// loadAllJSONL reads contacts.jsonl and notes.jsonl from the data
// directory and inserts their records into the SQLite tables. Loading
// is deliberately forgiving: a missing or unreadable file contributes
// nothing, malformed records are skipped, and a record that fails to
// insert is dropped. The caller always ends up with a usable database.
func loadAllJSONL(db *sql.DB, dataDir string, log *zap.Logger) {
	loadContactsJSONL(db, dataDir, log)
	loadNotesJSONL(db, dataDir, log)
}

func loadContactsJSONL(db *sql.DB, dataDir string, log *zap.Logger) {
	records, err := readJSONL(filepath.Join(dataDir, contactsJSONL))
	if err != nil {
		log.Debug("contacts.jsonl unreadable, starting empty", zap.Error(err))
		return
	}

	position := 0
	for _, rec := range records {
		var c contactJSON
		if err := json.Unmarshal(rec, &c); err != nil {
			continue
		}
		if c.Name == "" {
			continue
		}
		if err := insertContact(db, c, position); err != nil {
			log.Debug("skipping contact record", zap.String("name", c.Name), zap.Error(err))
			continue
		}
		position++
	}
}

func loadNotesJSONL(db *sql.DB, dataDir string, log *zap.Logger) {
	records, err := readJSONL(filepath.Join(dataDir, notesJSONL))
	if err != nil {
		log.Debug("notes.jsonl unreadable, starting empty", zap.Error(err))
		return
	}

	position := 0
	for _, rec := range records {
		var n noteJSON
		if err := json.Unmarshal(rec, &n); err != nil {
			continue
		}
		if err := insertNote(db, n, position); err != nil {
			log.Debug("skipping note record", zap.String("title", n.Title), zap.Error(err))
			continue
		}
		position++
	}
}
