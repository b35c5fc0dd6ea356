// Package main provides the lrgasp-validate-metadata command-line tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewprzh/lrgasp-submissions/internal/cli"
	"github.com/andrewprzh/lrgasp-submissions/internal/metadata"
)

func main() {
	os.Exit(run())
}

func run() int {
	ran := false

	cmd := &cobra.Command{
		Use:   "lrgasp-validate-metadata <entry.json>",
		Short: "Validate an entry metadata submission",
		Long: `Validate that an entry metadata document (JSON or YAML) carries the
required fields in well-formed shape: identifiers, experiment list, and
contacts with valid email addresses.

The document is accepted (exit 0, no output) or rejected with the first
violation found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return validateMetadata(args[0])
		},
	}

	if err := cmd.Execute(); err != nil {
		if !ran {
			cli.ReportError(os.Stderr, err)
			os.Stderr.WriteString(cmd.UsageString())
			return cli.ExitUsage
		}
		cli.ReportError(os.Stderr, err)
		return cli.ExitError
	}
	return cli.ExitSuccess
}

// validateMetadata decodes the document at path and runs the entry
// field definitions over it.
func validateMetadata(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return &metadata.LoadError{Path: path, Err: err}
	}
	return metadata.ValidateEntry(v.AllSettings())
}
