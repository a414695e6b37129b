package model

// BookStatus represents the checkout status of a book
type BookStatus string

const (
	// StatusAvailable means the book is on the shelf
	StatusAvailable BookStatus = "AVAILABLE"

	// StatusCheckedOut means the book is lent out
	StatusCheckedOut BookStatus = "CHECKED_OUT"
)

// String returns the string representation of BookStatus
func (bs BookStatus) String() string {
	return string(bs)
}

// IsValid returns true if the status is one of the two known states
func (bs BookStatus) IsValid() bool {
	return bs == StatusAvailable || bs == StatusCheckedOut
}
