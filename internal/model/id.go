package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrIDRequired is returned when no book ID was entered
	ErrIDRequired = errors.New("book ID is required")

	// ErrInvalidID is returned when the entered book ID is not an integer
	ErrInvalidID = errors.New("invalid book ID")
)

// ParseID parses a book identifier typed by the user
func ParseID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrIDRequired
	}

	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, raw)
	}
	return id, nil
}
