package memory

import (
	"sync"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driven"
)

// Ensure Library implements the interface.
var _ driven.Library = (*Library)(nil)

// Library is an in-memory, list-backed implementation of driven.Library.
// Books live only as long as the process.
type Library struct {
	mu    sync.RWMutex
	books []domain.Book
}

// NewLibrary creates a new empty in-memory library.
func NewLibrary() *Library {
	return &Library{
		books: make([]domain.Book, 0),
	}
}

// Add appends a book.
func (l *Library) Add(book domain.Book) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.books = append(l.books, book)
}

// Remove deletes every book with the given title, keeping the
// relative order of the rest.
func (l *Library) Remove(title string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := make([]domain.Book, 0, len(l.books))
	for _, book := range l.books {
		if book.Title != title {
			kept = append(kept, book)
		}
	}
	if len(kept) == len(l.books) {
		return false
	}
	l.books = kept
	return true
}

// List returns a copy of the books in insertion order.
func (l *Library) List() []domain.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]domain.Book, len(l.books))
	copy(result, l.books)
	return result
}
