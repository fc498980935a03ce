package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/patterns-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/services"
	"github.com/custodia-labs/patterns-cli/internal/logger"
)

// sessionFixture runs a session over scripted input.
type sessionFixture struct {
	library *memory.Library
	out     *bytes.Buffer
	logs    *bytes.Buffer
}

func runSession(t *testing.T, input string) (*sessionFixture, error) {
	t.Helper()
	f := &sessionFixture{
		library: memory.NewLibrary(),
		out:     new(bytes.Buffer),
		logs:    new(bytes.Buffer),
	}
	log := logger.New(f.logs, logger.Options{})
	manager := services.NewLibraryService(f.library, log)

	err := NewSession(strings.NewReader(input), f.out, manager, log).Run()
	return f, err
}

func (f *sessionFixture) logLines() []string {
	return strings.Split(strings.TrimSuffix(f.logs.String(), "\n"), "\n")
}

func TestSession_AddDuplicatesShowRemove(t *testing.T) {
	input := strings.Join([]string{
		"add", "Dune", "Frank Herbert", "1965",
		"add", "Dune", "Frank Herbert", "1965",
		"show",
		"remove", "Dune",
		"show",
		"exit",
	}, "\n") + "\n"

	f, err := runSession(t, input)

	require.NoError(t, err)
	assert.Equal(t, []string{
		`[INFO] Book with name "Dune" was added successfully.`,
		`[INFO] Book with name "Dune" was added successfully.`,
		"[INFO] Title: Dune, Author: Frank Herbert, Year: 1965",
		"[INFO] Title: Dune, Author: Frank Herbert, Year: 1965",
		`[INFO] Book with name "Dune" was removed successfully.`,
		"[INFO] Library is empty.",
		"[INFO] Exiting the program.",
	}, f.logLines())
	assert.Empty(t, f.library.List())
}

func TestSession_InvalidYear(t *testing.T) {
	f, err := runSession(t, "add\nDune\nFrank Herbert\nabc\nshow\nexit\n")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"[WARN] Year must be a valid integer.",
		"[INFO] Library is empty.",
		"[INFO] Exiting the program.",
	}, f.logLines())
	assert.Empty(t, f.library.List())

	// The main prompt is issued again after the rejected book.
	assert.Equal(t, 3, strings.Count(f.out.String(), promptCommand))
}

func TestSession_PromptsInOrder(t *testing.T) {
	f, err := runSession(t, "add\nDune\nFrank Herbert\n1965\nremove\nDune\nexit\n")

	require.NoError(t, err)
	assert.Equal(t,
		promptCommand+promptTitle+promptAuthor+promptYear+
			promptCommand+promptRemove+
			promptCommand,
		f.out.String())
}

func TestSession_TrimsAndLowercasesCommands(t *testing.T) {
	f, err := runSession(t, "  ADD \n  Dune  \n Frank Herbert \n 1965 \n Show\nEXIT\n")

	require.NoError(t, err)
	assert.Equal(t, []domain.Book{{Title: "Dune", Author: "Frank Herbert", Year: 1965}}, f.library.List())
	assert.Contains(t, f.logs.String(), "Title: Dune, Author: Frank Herbert, Year: 1965")
}

func TestSession_TitlesKeepTheirCase(t *testing.T) {
	f, err := runSession(t, "add\nDUNE\nFrank Herbert\n1965\nremove\ndune\nexit\n")

	require.NoError(t, err)
	assert.Contains(t, f.logs.String(), `[WARN] Book with name "dune" was not found.`)
	assert.Len(t, f.library.List(), 1)
}

func TestSession_InvalidCommand(t *testing.T) {
	f, err := runSession(t, "list\n\nexit\n")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"[WARN] Invalid command. Please try again.",
		"[WARN] Invalid command. Please try again.",
		"[INFO] Exiting the program.",
	}, f.logLines())
	assert.Equal(t, 3, strings.Count(f.out.String(), promptCommand))
}

func TestSession_RemoveNotFound(t *testing.T) {
	f, err := runSession(t, "remove\nDune\nexit\n")

	require.NoError(t, err)
	assert.Equal(t, []string{
		`[WARN] Book with name "Dune" was not found.`,
		"[INFO] Exiting the program.",
	}, f.logLines())
}

func TestSession_EmptyTitleAccepted(t *testing.T) {
	f, err := runSession(t, "add\n\n\n2000\nexit\n")

	require.NoError(t, err)
	assert.Equal(t, []domain.Book{{Year: 2000}}, f.library.List())
}

func TestSession_EndOfInputExits(t *testing.T) {
	f, err := runSession(t, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"[INFO] Exiting the program."}, f.logLines())
	assert.Equal(t, promptCommand, f.out.String())
}

func TestSession_EndOfInputMidAdd(t *testing.T) {
	f, err := runSession(t, "add\nDune\n")

	require.NoError(t, err)
	assert.Empty(t, f.library.List())
	assert.Equal(t, []string{"[INFO] Exiting the program."}, f.logLines())
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	f, err := runSession(t, "add\nDune\nFrank Herbert\n1965\nshow")

	require.NoError(t, err)
	assert.Equal(t, []string{
		`[INFO] Book with name "Dune" was added successfully.`,
		"[INFO] Title: Dune, Author: Frank Herbert, Year: 1965",
		"[INFO] Exiting the program.",
	}, f.logLines())
}

func TestSession_ExitStopsReading(t *testing.T) {
	f, err := runSession(t, "exit\nadd\nDune\nFrank Herbert\n1965\n")

	require.NoError(t, err)
	assert.Empty(t, f.library.List())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestSession_ReadError(t *testing.T) {
	manager := services.NewLibraryService(memory.NewLibrary(), nil)
	session := NewSession(failingReader{}, new(bytes.Buffer), manager, logger.Discard())

	err := session.Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
	assert.Contains(t, err.Error(), "terminal gone")
}
