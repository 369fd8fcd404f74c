package request

import "strings"

// MovieDraft holds the unvalidated form fields exactly as the user typed them.
type MovieDraft struct {
	Title  string `json:"title" validate:"required"`
	Genre  string `json:"genre" validate:"required,genre"`
	Year   string `json:"year" validate:"required,release_date,release_year"`
	Review string `json:"review" validate:"required,max=50"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
// Invalid UTF-8 sequences become U+FFFD so the stored JSON reads back identical.
func (d MovieDraft) Trimmed() MovieDraft {
	return MovieDraft{
		Title:  clean(d.Title),
		Genre:  clean(d.Genre),
		Year:   clean(d.Year),
		Review: clean(d.Review),
	}
}

func (d MovieDraft) IsEmpty() bool {
	return d == MovieDraft{}
}

func clean(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD"))
}
