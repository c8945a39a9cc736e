package snippet

import "strings"

// Entry is one record in a View together with its index in the Store.
type Entry struct {
	Index  int
	Record Record
}

// View is the ordered subset of a Store matching a query.
type View []Entry

// Len returns the number of entries.
func (v View) Len() int {
	return len(v)
}

// Filter returns the records whose title contains query, ignoring case,
// in their original order. An empty query matches every record.
func Filter(records []Record, query string) View {
	q := strings.ToLower(query)
	view := make(View, 0, len(records))
	for i, r := range records {
		if strings.Contains(strings.ToLower(r.Title), q) {
			view = append(view, Entry{Index: i, Record: r})
		}
	}
	return view
}

// Filter returns the view of the store for query.
func (s *Store) Filter(query string) View {
	return Filter(s.records, query)
}
