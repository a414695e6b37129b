package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/ytget/library-catalog/internal/model"
)

// ChangeKind names the mutation that produced a Change
type ChangeKind string

const (
	ChangeAdded      ChangeKind = "added"
	ChangeCheckedOut ChangeKind = "checked_out"
	ChangeReturned   ChangeKind = "returned"
)

// Change describes a successful mutation of the catalog
type Change struct {
	ID   uuid.UUID
	Kind ChangeKind
	Book model.Book // state of the book after the mutation
	At   time.Time
}

func newChange(kind ChangeKind, book model.Book) Change {
	return Change{
		ID:   uuid.New(),
		Kind: kind,
		Book: book,
		At:   time.Now(),
	}
}
