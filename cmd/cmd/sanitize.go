package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wavrig/wavrig/internal/naming"
)

func DefineSanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "sanitize <name>",
		Short:        "Print the FAT-safe form of a file name",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(naming.Sanitize(args[0]))
			return nil
		},
	}
}
