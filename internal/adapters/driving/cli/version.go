package cli

import (
	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command for a program.
func newVersionCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s version %s\n", program, version)
		},
	}
}
