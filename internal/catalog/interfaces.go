package catalog

import (
	"github.com/ytget/library-catalog/internal/model"
)

// Cataloger defines the interface for the catalog store.
type Cataloger interface {
	SetUpdateCallback(func(Change))
	Add(book model.Book) error
	List() []model.Book
	Search(title, author string) []model.Book
	Checkout(id int) error
	Return(id int) error

	// Get returns a copy of the book with the given ID
	Get(id int) (model.Book, bool)

	// Count returns the number of books in the catalog
	Count() int
}
