package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wavrig/wavrig/internal/env"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", env.AppName, env.Version)
			fmt.Printf("Commit:     %s\n", env.CommitHash)
			fmt.Printf("Build Time: %s\n", env.BuildTime)
		},
	}
}
