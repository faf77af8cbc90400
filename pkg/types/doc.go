// Package types defines the validated contact fields, the Record and
// Note entities, the Book collection, the Store interface, and the
// standard error types for the Satchel assistant.
package types
