package models

// Article is a unit of help content. Content is an HTML fragment.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
