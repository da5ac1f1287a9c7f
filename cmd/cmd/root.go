package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wavrig/wavrig/internal/env"
	"github.com/wavrig/wavrig/internal/library"
)

var log = logrus.New()

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - sampler WAV metadata and library tool",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("env-file", "", "load default settings from the given .env file")
	rootCmd.PersistentFlags().String("project-dir", "", "project-local sample directory")
	rootCmd.PersistentFlags().String("wavs-dir", "", "global sample directory")
	rootCmd.PersistentFlags().String("recs-dir", "", "recordings directory")

	rootCmd.AddCommand(
		DefineCommentCommand(),
		DefinePresetCommand(),
		DefineImportCommand(),
		DefineRenumberCommand(),
		DefineSanitizeCommand(),
		DefineVersionCommand(),
	)

	return rootCmd.Execute()
}

// setup loads the optional .env file and configures logging. Flags win over
// environment values.
func setup(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return err
		}
	} else {
		// A missing .env in the working directory is fine.
		_ = godotenv.Load()
	}

	levelStr, _ := cmd.Flags().GetString("log-level")
	if levelStr == "" {
		levelStr = os.Getenv("WAVRIG_LOG_LEVEL")
	}
	if levelStr != "" {
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// libraryFromCmd builds the Library from flags, falling back to WAVRIG_*
// environment values for roots not given on the command line.
func libraryFromCmd(cmd *cobra.Command) *library.Library {
	get := func(flag, envVar string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}

	return library.New(
		get("project-dir", "WAVRIG_PROJECT_DIR"),
		get("wavs-dir", "WAVRIG_WAVS_DIR"),
		get("recs-dir", "WAVRIG_RECS_DIR"),
		log,
	)
}
