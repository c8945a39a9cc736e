// Package snippet holds the snippet records and the derived views over
// them.
//
// A Store owns the authoritative, ordered list of records. Filter derives a
// View (the records whose title contains a query) on every call and never
// caches it. Selection is a cursor into the current View that maps back to
// a Store index, which is the only record identity dial relies on.
package snippet
