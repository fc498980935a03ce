package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Book is a single catalog entry.
// Title is the only identity key; two books may share a title.
type Book struct {
	// Title identifies the book for removal.
	Title string

	// Author is the book's author.
	Author string

	// Year is the publication year.
	Year int
}

// String renders the book as a catalog line.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %d", b.Title, b.Author, b.Year)
}

// ParseYear converts user input into a publication year.
// Surrounding whitespace is ignored. Any value strconv.Atoi accepts is a
// valid year, including zero and negative numbers.
func ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not an integer", ErrInvalidInput, input)
	}
	return year, nil
}
