// Package main provides the lrgasp-validate-gtf command-line tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewprzh/lrgasp-submissions/internal/cli"
	"github.com/andrewprzh/lrgasp-submissions/internal/models"
)

func main() {
	os.Exit(run())
}

func run() int {
	var verbose bool
	ran := false

	cmd := &cobra.Command{
		Use:   "lrgasp-validate-gtf <models.gtf>",
		Short: "Validate a transcript model GTF submission",
		Long: `Validate that a transcript model GTF meets the structural and semantic
requirements for submission: exon records carry the required identifying
attributes, coordinates and strands are well-formed, and every
transcript's exons agree on transcript-invariant attributes.

The file is accepted (exit 0, no output) or rejected with the first
violation found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			logger, err := cli.NewLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			v := models.NewValidator()
			v.SetLogger(logger)
			return v.ValidateFile(args[0])
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")

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
