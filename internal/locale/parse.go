package locale

import (
	"errors"
	"fmt"

	"github.com/ytget/library-catalog/internal/model"
)

// localizedError carries a translated message and keeps the original
// error reachable through errors.Is
type localizedError struct {
	message string
	err     error
}

func (e *localizedError) Error() string { return e.message }

func (e *localizedError) Unwrap() error { return e.err }

// ParseID parses a book identifier and reports failures in the current language
func (l *Localization) ParseID(raw string) (int, error) {
	id, err := model.ParseID(raw)
	switch {
	case errors.Is(err, model.ErrIDRequired):
		return 0, &localizedError{message: l.GetText(KeyIDRequired), err: err}
	case errors.Is(err, model.ErrInvalidID):
		return 0, &localizedError{message: fmt.Sprintf(l.GetText(KeyInvalidID), raw), err: err}
	}
	return id, err
}
