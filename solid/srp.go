package solid

import "strings"

// A Report is pure content. Formatting and storage live elsewhere, so
// a change to either never touches this type.
type Report struct {
	Title string
	Lines []string
}

// A TextFormatter renders reports as plain text.
type TextFormatter struct{}

// Format renders r with an underlined title and one bullet per line.
func (TextFormatter) Format(r Report) string {
	var b strings.Builder
	b.WriteString(r.Title + "\n")
	b.WriteString(strings.Repeat("=", len(r.Title)) + "\n")
	for _, line := range r.Lines {
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}

// A MemoryStore keeps formatted documents in memory.
type MemoryStore struct {
	docs []string
}

// Save stores a formatted document.
func (s *MemoryStore) Save(doc string) {
	s.docs = append(s.docs, doc)
}

// Count returns the number of stored documents.
func (s *MemoryStore) Count() int { return len(s.docs) }
