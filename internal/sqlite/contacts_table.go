// Contact row access: inserts, Book hydration, and dehydration back to
// JSONL records.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/dovetail-labs/satchel/pkg/types"
)

// insertContact writes one contact and its phones at the given position.
func insertContact(db *sql.DB, c contactJSON, position int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning contact insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO contacts (name, birthday, email, address, position) VALUES (?, ?, ?, ?, ?)",
		c.Name, nullable(c.Birthday), nullable(c.Email), nullable(c.Address), position,
	)
	if err != nil {
		return fmt.Errorf("inserting contact %q: %w", c.Name, err)
	}

	for i, phone := range c.Phones {
		_, err = tx.Exec(
			"INSERT INTO phones (contact_name, phone, position) VALUES (?, ?, ?)",
			c.Name, phone, i,
		)
		if err != nil {
			return fmt.Errorf("inserting phone for %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// hydrateContacts rebuilds the book's records from the contacts and
// phones tables, in stored position order. Every value goes back
// through its field constructor; values that no longer validate are
// skipped (a bad phone drops the phone, a bad name drops the record).
func hydrateContacts(db *sql.DB, book *types.Book, log *zap.Logger) error {
	rows, err := db.Query(
		"SELECT name, birthday, email, address FROM contacts ORDER BY position",
	)
	if err != nil {
		return fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var birthday, email, address sql.NullString
		if err := rows.Scan(&name, &birthday, &email, &address); err != nil {
			return fmt.Errorf("scanning contact row: %w", err)
		}

		record, err := types.NewRecord(name)
		if err != nil {
			log.Debug("dropping contact with invalid name", zap.String("name", name))
			continue
		}
		if birthday.Valid {
			if err := record.SetBirthday(birthday.String); err != nil {
				log.Debug("dropping invalid stored birthday", zap.String("name", name))
			}
		}
		if email.Valid {
			if err := record.SetEmail(email.String); err != nil {
				log.Debug("dropping invalid stored email", zap.String("name", name))
			}
		}
		if address.Valid {
			if err := record.SetAddress(address.String); err != nil {
				log.Debug("dropping invalid stored address", zap.String("name", name))
			}
		}

		if err := hydratePhones(db, record); err != nil {
			return err
		}
		book.Add(record)
	}
	return rows.Err()
}

// hydratePhones appends the record's phones in stored position order.
func hydratePhones(db *sql.DB, record *types.Record) error {
	rows, err := db.Query(
		"SELECT phone FROM phones WHERE contact_name = ? ORDER BY position",
		record.Name.String(),
	)
	if err != nil {
		return fmt.Errorf("querying phones for %q: %w", record.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return fmt.Errorf("scanning phone row: %w", err)
		}
		// Invalid stored phone: drop it, keep the record.
		_, _ = record.AddPhone(phone)
	}
	return rows.Err()
}

// dehydrateContacts converts the book's records to JSONL form in
// insertion order.
func dehydrateContacts(book *types.Book) []contactJSON {
	records := book.Contacts()
	out := make([]contactJSON, 0, len(records))
	for _, r := range records {
		c := contactJSON{Name: r.Name.String(), Phones: []string{}}
		for _, p := range r.Phones {
			c.Phones = append(c.Phones, p.String())
		}
		if r.Birthday != nil {
			c.Birthday = r.Birthday.String()
		}
		if r.Email != nil {
			c.Email = r.Email.String()
		}
		if r.Address != nil {
			c.Address = r.Address.String()
		}
		out = append(out, c)
	}
	return out
}

// replaceAll rewrites the contacts, phones, and notes tables from the
// dehydrated records in one transaction.
func replaceAll(db *sql.DB, contacts []contactJSON, notes []noteJSON) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"phones", "contacts", "notes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, c := range contacts {
		_, err = tx.Exec(
			"INSERT INTO contacts (name, birthday, email, address, position) VALUES (?, ?, ?, ?, ?)",
			c.Name, nullable(c.Birthday), nullable(c.Email), nullable(c.Address), i,
		)
		if err != nil {
			return fmt.Errorf("saving contact %q: %w", c.Name, err)
		}
		for j, phone := range c.Phones {
			_, err = tx.Exec(
				"INSERT INTO phones (contact_name, phone, position) VALUES (?, ?, ?)",
				c.Name, phone, j,
			)
			if err != nil {
				return fmt.Errorf("saving phone for %q: %w", c.Name, err)
			}
		}
	}

	for i, n := range notes {
		_, err = tx.Exec(
			"INSERT INTO notes (note_id, title, body, tag, position) VALUES (?, ?, ?, ?, ?)",
			n.NoteID, n.Title, n.Body, n.Tag, i,
		)
		if err != nil {
			return fmt.Errorf("saving note %q: %w", n.Title, err)
		}
	}

	return tx.Commit()
}

// nullable maps an empty string to NULL so absent optional fields stay
// distinguishable from empty ones.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
