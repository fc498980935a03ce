package driving

// LibraryManager is the user-facing book catalog.
// Every operation reports its outcome through the manager's logger.
type LibraryManager interface {
	// AddBook records a new book and confirms it.
	AddBook(title, author string, year int)

	// RemoveBook deletes every book with the title.
	// Returns false, after warning, when no book matched.
	RemoveBook(title string) bool

	// ShowBooks reports each book in insertion order, or that the library is empty.
	ShowBooks()
}
