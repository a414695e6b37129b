package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/library-catalog/internal/model"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()

	service := NewService()
	require.NoError(t, Seed(service, DemoBooks()))
	return service
}

func TestSeededScenario(t *testing.T) {
	service := newSeededService(t)

	found := service.Search("", "tolkien")
	require.Len(t, found, 1)
	assert.Equal(t, 2, found[0].ID)

	require.NoError(t, service.Checkout(1))
	book, ok := service.Get(1)
	require.True(t, ok)
	assert.Equal(t, model.StatusCheckedOut, book.Status)
	assert.ErrorIs(t, service.Checkout(1), ErrAlreadyCheckedOut)

	require.NoError(t, service.Return(2))
	assert.ErrorIs(t, service.Return(2), ErrAlreadyAvailable)
}

func TestSearch(t *testing.T) {
	service := newSeededService(t)
	require.NoError(t, service.Add(model.NewBook(3, "The Silmarillion", "J.R.R. Tolkien")))

	tests := []struct {
		name    string
		title   string
		author  string
		wantIDs []int
	}{
		{"empty filters match everything", "", "", []int{1, 2, 3}},
		{"title substring ignores case", "hob", "", []int{2}},
		{"author substring ignores case", "", "TOLKIEN", []int{2, 3}},
		{"both filters must match", "the", "orwell", nil},
		{"title and author", "silm", "tolk", []int{3}},
		{"no match", "dune", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIDs []int
			for _, book := range service.Search(tt.title, tt.author) {
				gotIDs = append(gotIDs, book.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSeedStopsOnDuplicate(t *testing.T) {
	service := NewService()

	books := []model.Book{
		model.NewBook(1, "A", "X"),
		model.NewBook(1, "B", "Y"),
		model.NewBook(2, "C", "Z"),
	}

	err := Seed(service, books)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, service.Count())
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()

	var changes []Change
	service.SetUpdateCallback(func(c Change) {
		changes = append(changes, c)
	})

	require.NoError(t, service.Add(model.NewBook(1, "1984", "George Orwell")))
	require.NoError(t, service.Checkout(1))
	require.NoError(t, service.Return(1))

	// Failed operations do not notify
	assert.Error(t, service.Return(1))
	assert.Error(t, service.Add(model.NewBook(1, "dup", "dup")))

	require.Len(t, changes, 3)
	assert.Equal(t, ChangeAdded, changes[0].Kind)
	assert.Equal(t, ChangeCheckedOut, changes[1].Kind)
	assert.Equal(t, model.StatusCheckedOut, changes[1].Book.Status)
	assert.Equal(t, ChangeReturned, changes[2].Kind)
	assert.Equal(t, model.StatusAvailable, changes[2].Book.Status)

	assert.NotEqual(t, changes[0].ID, changes[1].ID)
	assert.False(t, changes[0].At.IsZero())
}

func TestUpdateCallbackMayReadCatalog(t *testing.T) {
	service := NewService()

	var seen int
	service.SetUpdateCallback(func(Change) {
		seen = service.Count()
	})

	require.NoError(t, service.Add(model.NewBook(1, "1984", "George Orwell")))
	assert.Equal(t, 1, seen)
}
