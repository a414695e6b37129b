package model

import (
	"fmt"
	"strings"
)

// Book represents a single catalog record
type Book struct {
	ID     int
	Title  string
	Author string
	Status BookStatus
}

// NewBook creates an available book
func NewBook(id int, title, author string) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Status: StatusAvailable,
	}
}

// String renders the book as "<id>: <title> by <author> [<STATUS>]"
func (b Book) String() string {
	return fmt.Sprintf("%d: %s by %s [%s]", b.ID, b.Title, b.Author, b.Status)
}

// Matches reports whether title and author contain the given filters,
// ignoring case. Empty filters match everything.
func (b Book) Matches(title, author string) bool {
	return containsFold(b.Title, title) && containsFold(b.Author, author)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
