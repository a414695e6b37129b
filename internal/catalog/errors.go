package catalog

import "errors"

var (
	// ErrDuplicateID is returned when adding a book whose ID is already taken.
	ErrDuplicateID = errors.New("book ID already exists")

	// ErrBookNotFound is returned when no book has the given ID.
	ErrBookNotFound = errors.New("book not found")

	// ErrAlreadyCheckedOut is returned when checking out a book that is lent out.
	ErrAlreadyCheckedOut = errors.New("already checked out")

	// ErrAlreadyAvailable is returned when returning a book that is on the shelf.
	ErrAlreadyAvailable = errors.New("already available")

	// ErrInvalidStatus is returned when adding a book with an unknown status.
	ErrInvalidStatus = errors.New("invalid book status")
)
