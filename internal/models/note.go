// Package models defines the domain types for the note store.
package models

// Collection is a named grouping of notes.
type Collection struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Note is a text entry belonging to exactly one collection.
type Note struct {
	ID           int64  `json:"id" yaml:"id"`
	Body         string `json:"body" yaml:"body"`
	CollectionID int64  `json:"collection_id" yaml:"collection_id"`
}
