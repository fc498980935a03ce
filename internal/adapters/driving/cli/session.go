package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
)

// Prompts written to the user.
const (
	promptCommand = "Enter command (add, remove, show, exit): "
	promptTitle   = "Enter book title: "
	promptAuthor  = "Enter book author: "
	promptYear    = "Enter book year: "
	promptRemove  = "Enter book title to remove: "
)

// Session commands.
const (
	commandAdd    = "add"
	commandRemove = "remove"
	commandShow   = "show"
	commandExit   = "exit"
)

// Session is the read-eval loop of the library program.
// Prompts go to out; outcomes are reported through the logger.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	manager driving.LibraryManager
	log     *slog.Logger
}

// NewSession creates a session reading commands from in.
func NewSession(in io.Reader, out io.Writer, manager driving.LibraryManager, log *slog.Logger) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		manager: manager,
		log:     log,
	}
}

// Run prompts for commands until exit or end of input.
// Only a failure to read input is returned as an error.
func (s *Session) Run() error {
	for {
		input, err := s.ask(promptCommand)
		if err != nil {
			return s.stop(err)
		}

		switch strings.ToLower(input) {
		case commandAdd:
			err = s.add()
		case commandRemove:
			err = s.remove()
		case commandShow:
			s.manager.ShowBooks()
		case commandExit:
			s.log.Info("Exiting the program.")
			return nil
		default:
			s.log.Warn("Invalid command. Please try again.")
		}

		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Session) add() error {
	title, err := s.ask(promptTitle)
	if err != nil {
		return err
	}
	author, err := s.ask(promptAuthor)
	if err != nil {
		return err
	}
	rawYear, err := s.ask(promptYear)
	if err != nil {
		return err
	}

	year, err := domain.ParseYear(rawYear)
	if err != nil {
		s.log.Debug("rejected book", "error", err)
		s.log.Warn("Year must be a valid integer.")
		return nil
	}

	s.manager.AddBook(title, author, year)
	return nil
}

func (s *Session) remove() error {
	title, err := s.ask(promptRemove)
	if err != nil {
		return err
	}
	s.manager.RemoveBook(title)
	return nil
}

// ask writes a prompt and returns the trimmed reply.
// A final line without a newline is still returned; io.EOF comes on the next call.
func (s *Session) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// stop ends the loop. End of input is a normal exit.
func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Info("Exiting the program.")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}
