package sqlite

// Schema DDL for the backend's tables. Positions keep the insertion
// order that Book iteration and phone lists must preserve.
const schemaSQL = `
CREATE TABLE contacts (
    name TEXT PRIMARY KEY,
    birthday TEXT,
    email TEXT,
    address TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE phones (
    contact_name TEXT NOT NULL,
    phone TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (contact_name) REFERENCES contacts(name)
);

CREATE TABLE notes (
    note_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    tag TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);
`
