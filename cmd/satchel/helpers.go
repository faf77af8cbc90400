// Shared helpers for satchel CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dovetail-labs/satchel/internal/sqlite"
	"github.com/dovetail-labs/satchel/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must detach when done.
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend(appLog)
	err = backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	})
	if err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// withBook loads the book, runs fn against it, and detaches. The book
// is not saved; use for read-only commands.
func withBook(fn func(book *types.Book) error) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	book, err := backend.Load()
	if err != nil {
		return fmt.Errorf("load book: %w", err)
	}
	return fn(book)
}

// updateBook loads the book, runs fn against it, and saves the result
// before detaching. Nothing is saved when fn fails, so a rejected
// mutation leaves the persisted state untouched.
func updateBook(fn func(book *types.Book) error) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	book, err := backend.Load()
	if err != nil {
		return fmt.Errorf("load book: %w", err)
	}
	if err := fn(book); err != nil {
		return err
	}
	if err := backend.Save(book); err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

// mustFind returns the record for name or a not-found error with the
// standard message.
func mustFind(book *types.Book, name string) (*types.Record, error) {
	record, ok := book.Find(name)
	if !ok {
		return nil, fmt.Errorf("contact %q: %w", name, types.ErrNotFound)
	}
	return record, nil
}

// contactRow is the JSON shape of one contact in command output.
type contactRow struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
}

func newContactRow(r *types.Record) contactRow {
	row := contactRow{Name: r.Name.String(), Phones: []string{}}
	for _, p := range r.Phones {
		row.Phones = append(row.Phones, p.String())
	}
	if r.Birthday != nil {
		row.Birthday = r.Birthday.String()
	}
	if r.Email != nil {
		row.Email = r.Email.String()
	}
	if r.Address != nil {
		row.Address = r.Address.String()
	}
	return row
}

// noteRow is the JSON shape of one note in command output.
type noteRow struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag,omitempty"`
}

func noteRows(notes []types.Note) []noteRow {
	rows := make([]noteRow, len(notes))
	for i, n := range notes {
		rows[i] = noteRow{Title: n.Title, Body: n.Body, Tag: n.Tag}
	}
	return rows
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printContactTable prints records in a human-readable table, one row
// per contact, using the enumerated record fields as columns.
func printContactTable(records []*types.Record) {
	if len(records) == 0 {
		fmt.Println("No contacts found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	labels := records[0].Fields()
	header := make([]string, len(labels))
	underline := make([]string, len(labels))
	for i, f := range labels {
		header[i] = strings.ToUpper(f.Label)
		underline[i] = strings.Repeat("-", len(f.Label))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	fmt.Fprintln(w, strings.Join(underline, "\t"))

	for _, r := range records {
		values := make([]string, 0, len(labels))
		for _, f := range r.Fields() {
			values = append(values, f.Value)
		}
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}
	w.Flush()

	printTrimmed(sb.String())
	fmt.Printf("Total: %d contact(s)\n", len(records))
}

// printNoteTable prints notes in a human-readable table.
func printNoteTable(notes []types.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "TITLE\tTAG\tNOTE")
	fmt.Fprintln(w, "-----\t---\t----")
	for _, n := range notes {
		tag := n.Tag
		if tag == "" {
			tag = "---"
		}
		body := n.Body
		if len(body) > 60 {
			body = body[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.Title, tag, body)
	}
	w.Flush()

	printTrimmed(sb.String())
	fmt.Printf("Total: %d note(s)\n", len(notes))
}

// printTrimmed prints tabwriter output with trailing whitespace removed
// from each line.
func printTrimmed(output string) {
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
