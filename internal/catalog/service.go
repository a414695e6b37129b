package catalog

import (
	"fmt"
	"log"
	"sync"

	"github.com/ytget/library-catalog/internal/model"
)

// Service holds the catalog in memory
type Service struct {
	books      map[int]*model.Book
	order      []int // insertion order of IDs
	booksMutex sync.RWMutex
	onUpdate   func(Change) // callback for UI updates
}

// NewService creates an empty catalog
func NewService() *Service {
	return &Service{
		books: make(map[int]*model.Book),
	}
}

// SetUpdateCallback sets the callback function for catalog changes
func (s *Service) SetUpdateCallback(callback func(Change)) {
	s.booksMutex.Lock()
	defer s.booksMutex.Unlock()
	s.onUpdate = callback
}

// Add inserts a book. A book without a status is stored as available.
func (s *Service) Add(book model.Book) error {
	if book.Status == "" {
		book.Status = model.StatusAvailable
	}
	if !book.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, book.Status)
	}

	s.booksMutex.Lock()
	if _, exists := s.books[book.ID]; exists {
		s.booksMutex.Unlock()
		return fmt.Errorf("%w: %d", ErrDuplicateID, book.ID)
	}

	stored := book
	s.books[book.ID] = &stored
	s.order = append(s.order, book.ID)
	s.booksMutex.Unlock()

	log.Printf("Book added: %s", book)
	s.notifyUpdate(newChange(ChangeAdded, book))
	return nil
}

// List returns all books in insertion order
func (s *Service) List() []model.Book {
	s.booksMutex.RLock()
	defer s.booksMutex.RUnlock()

	books := make([]model.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, *s.books[id])
	}
	return books
}

// Search returns books whose title and author contain the given filters,
// case-insensitively, in insertion order
func (s *Service) Search(title, author string) []model.Book {
	s.booksMutex.RLock()
	defer s.booksMutex.RUnlock()

	var found []model.Book
	for _, id := range s.order {
		book := s.books[id]
		if book.Matches(title, author) {
			found = append(found, *book)
		}
	}
	return found
}

// Get returns a copy of the book with the given ID
func (s *Service) Get(id int) (model.Book, bool) {
	s.booksMutex.RLock()
	defer s.booksMutex.RUnlock()

	book, exists := s.books[id]
	if !exists {
		return model.Book{}, false
	}
	return *book, true
}

// Count returns the number of books in the catalog
func (s *Service) Count() int {
	s.booksMutex.RLock()
	defer s.booksMutex.RUnlock()
	return len(s.books)
}

// Checkout marks an available book as checked out
func (s *Service) Checkout(id int) error {
	return s.transition(id, model.StatusAvailable, model.StatusCheckedOut, ErrAlreadyCheckedOut, ChangeCheckedOut)
}

// Return marks a checked out book as available again
func (s *Service) Return(id int) error {
	return s.transition(id, model.StatusCheckedOut, model.StatusAvailable, ErrAlreadyAvailable, ChangeReturned)
}

// transition moves a book from one status to the other. rejectErr is
// returned when the book is already in the target status.
func (s *Service) transition(id int, from, to model.BookStatus, rejectErr error, kind ChangeKind) error {
	s.booksMutex.Lock()
	book, exists := s.books[id]
	if !exists {
		s.booksMutex.Unlock()
		return fmt.Errorf("%w: %d", ErrBookNotFound, id)
	}

	if book.Status != from {
		s.booksMutex.Unlock()
		return fmt.Errorf("%w: %d", rejectErr, id)
	}

	book.Status = to
	snapshot := *book
	s.booksMutex.Unlock()

	log.Printf("Book %d status changed: %s -> %s", id, from, to)
	s.notifyUpdate(newChange(kind, snapshot))
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(change Change) {
	s.booksMutex.RLock()
	callback := s.onUpdate
	s.booksMutex.RUnlock()

	if callback != nil {
		callback(change)
	}
}
