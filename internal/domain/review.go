package domain

import (
	"html"
	"time"
)

// Review is a visitor review for a product. Author and Text hold the raw
// submitted strings; use the Display accessors when rendering into an HTML
// context.
type Review struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayAuthor returns the author escaped for HTML display.
func (r Review) DisplayAuthor() string {
	return html.EscapeString(r.Author)
}

// DisplayText returns the review text escaped for HTML display.
func (r Review) DisplayText() string {
	return html.EscapeString(r.Text)
}
