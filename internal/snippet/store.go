package snippet

import (
	"github.com/google/uuid"
)

// Store is the ordered collection of records. Insertion order is display
// order and a record's index is its identity for the lifetime of the
// process.
type Store struct {
	records []Record
}

// NewStore creates a store holding a copy of records.
func NewStore(records []Record) *Store {
	s := &Store{records: make([]Record, len(records))}
	copy(s.records, records)
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record at index.
func (s *Store) Get(index int) (Record, bool) {
	if index < 0 || index >= len(s.records) {
		return Record{}, false
	}
	return s.records[index], true
}

// All returns a copy of every record in store order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Add appends a record and returns its index.
// A record without an ID gets a new one.
func (s *Store) Add(r Record) int {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.records = append(s.records, r)
	return len(s.records) - 1
}

// SetContent replaces the content of the record at index.
// Returns false if index is out of range.
func (s *Store) SetContent(index int, content string) bool {
	if index < 0 || index >= len(s.records) {
		return false
	}
	s.records[index].Content = content
	return true
}
