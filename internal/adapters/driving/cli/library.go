package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// libraryCmd is the root of the library program.
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Interactive book catalog",
	Long: `Manage an in-memory book catalog from an interactive prompt.

Commands at the prompt:
  add     - Add a book (prompts for title, author and year)
  remove  - Remove every book with a title
  show    - List books in the order they were added
  exit    - Quit

Books are kept only for the lifetime of the session.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runLibrary,
}

func init() {
	addPersistentFlags(libraryCmd)
	libraryCmd.AddCommand(newVersionCmd("library"))
	libraryCmd.AddCommand(newSettingsCmd("library"))
}

// ExecuteLibrary runs the library program.
func ExecuteLibrary() error {
	return libraryCmd.Execute()
}

func runLibrary(cmd *cobra.Command, _ []string) error {
	if libraryManager == nil {
		return errors.New("library service not configured")
	}

	session := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), libraryManager, sessionLogger)
	return session.Run()
}
