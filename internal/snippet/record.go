package snippet

// Record is a named, language-tagged snippet.
type Record struct {
	// ID is a stable identifier assigned when the record is created in the
	// store. Records loaded from older files may not have one.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Language is the language tag used to pick a highlighter, e.g. "go".
	Language string `json:"language" yaml:"language"`

	// Content is the snippet body.
	Content string `json:"code" yaml:"code"`

	// Title is shown in the list and matched by the search filter.
	Title string `json:"title" yaml:"title"`
}

// Welcome returns the record shown when no snippets have been saved yet.
func Welcome() Record {
	return Record{
		Language: "txt",
		Title:    "Welcome to Dial",
		Content:  "Dial is a code snippet manager built with go and tcell.",
	}
}
