package driven

import "github.com/custodia-labs/patterns-cli/internal/core/domain"

// Library stores books in insertion order.
// Title is the identity key and duplicates are allowed.
type Library interface {
	// Add appends a book. It always succeeds.
	Add(book domain.Book)

	// Remove deletes every book with the given title.
	// Returns true if at least one book was removed. The sequence is
	// left untouched when nothing matches.
	Remove(title string) bool

	// List returns the books in insertion order.
	// The returned slice is a copy; an empty library yields an empty, non-nil slice.
	List() []domain.Book
}
