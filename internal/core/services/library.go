package services

import (
	"fmt"
	"log/slog"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driven"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryManager = (*LibraryService)(nil)

// LibraryService wraps a Library and reports each outcome to the user.
// It holds no book state of its own.
type LibraryService struct {
	library driven.Library
	log     *slog.Logger
}

// NewLibraryService creates a new library manager over library.
// A nil logger discards all reports.
func NewLibraryService(library driven.Library, log *slog.Logger) *LibraryService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &LibraryService{
		library: library,
		log:     log,
	}
}

// AddBook records a new book and confirms it.
func (s *LibraryService) AddBook(title, author string, year int) {
	s.library.Add(domain.Book{Title: title, Author: author, Year: year})
	s.log.Info(fmt.Sprintf("Book with name \"%s\" was added successfully.", title))
	s.log.Debug("library updated", "books", len(s.library.List()))
}

// RemoveBook deletes every book with the title.
func (s *LibraryService) RemoveBook(title string) bool {
	if !s.library.Remove(title) {
		s.log.Warn(fmt.Sprintf("Book with name \"%s\" was not found.", title))
		return false
	}
	s.log.Info(fmt.Sprintf("Book with name \"%s\" was removed successfully.", title))
	s.log.Debug("library updated", "books", len(s.library.List()))
	return true
}

// ShowBooks reports each book in insertion order.
func (s *LibraryService) ShowBooks() {
	books := s.library.List()
	if len(books) == 0 {
		s.log.Info("Library is empty.")
		return
	}
	for _, book := range books {
		s.log.Info(book.String())
	}
}
