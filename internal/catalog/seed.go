package catalog

import (
	"fmt"

	"github.com/ytget/library-catalog/internal/model"
)

// DemoBooks returns the books a fresh catalog is seeded with
func DemoBooks() []model.Book {
	return []model.Book{
		model.NewBook(1, "1984", "George Orwell"),
		{ID: 2, Title: "The Hobbit", Author: "J.R.R. Tolkien", Status: model.StatusCheckedOut},
	}
}

// Seed adds books to the catalog in order, stopping at the first failure
func Seed(c Cataloger, books []model.Book) error {
	for _, book := range books {
		if err := c.Add(book); err != nil {
			return fmt.Errorf("seeding book %d: %w", book.ID, err)
		}
	}
	return nil
}
