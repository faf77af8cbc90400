// JSON record structures mirroring the JSONL file format.
package sqlite

// contactJSON represents one contact in contacts.jsonl. Optional
// single-valued fields are omitted when absent.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
}

// noteJSON represents one note in notes.jsonl.
type noteJSON struct {
	NoteID string `json:"note_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Tag    string `json:"tag,omitempty"`
}
