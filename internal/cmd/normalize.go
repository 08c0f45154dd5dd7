package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/livingdoc/pkg/logging"
	"github.com/agentstation/livingdoc/pkg/pipeline"
)

var (
	normalizeInput      string
	normalizeOutput     string
	normalizeSource     string
	normalizeTitle      string
	normalizeVersion    string
	normalizeOptionFile string
)

// normalizeIssuesCmd converts a collector export into document-ready JSON.
var normalizeIssuesCmd = &cobra.Command{
	Use:   "normalize-issues",
	Short: "Normalize a collector export into document-ready JSON",
	Long: `Normalize a producer export (e.g. collector-gh doc-issues.json) into the
canonical document-ready format consumed by downstream renderers.

The adapter is detected automatically unless --source names one explicitly.
Markdown bodies are split into canonical sections, and an audit envelope
recording producer, run, source, and compatibility warnings is attached.

Examples:
  livingdoc normalize-issues --input doc-issues.json --output pdf_ready.json
  livingdoc normalize-issues --input in.json --output out.json --source collector-gh
  livingdoc normalize-issues --input in.json --output out.json --document-title "Release Notes"`,
	RunE: runNormalizeIssues,
}

func init() {
	rootCmd.AddCommand(normalizeIssuesCmd)

	normalizeIssuesCmd.Flags().StringVar(&normalizeInput, "input", "", "Path to input JSON file")
	normalizeIssuesCmd.Flags().StringVar(&normalizeOutput, "output", "", "Path for output JSON file")
	normalizeIssuesCmd.Flags().StringVar(&normalizeSource, "source", pipeline.SourceAuto,
		"Producer adapter selection (auto or adapter name)")
	normalizeIssuesCmd.Flags().StringVar(&normalizeTitle, "document-title", "",
		"Override document title")
	normalizeIssuesCmd.Flags().StringVar(&normalizeVersion, "document-version", "",
		"Override document version")
	normalizeIssuesCmd.Flags().StringVar(&normalizeOptionFile, "options", "",
		"Path to a YAML options file")

	_ = normalizeIssuesCmd.MarkFlagRequired("input")
	_ = normalizeIssuesCmd.MarkFlagRequired("output")
}

func runNormalizeIssues(cmd *cobra.Command, _ []string) error {
	opts := pipeline.Options{}
	if normalizeOptionFile != "" {
		loaded, err := pipeline.LoadOptions(normalizeOptionFile)
		if err != nil {
			return err
		}
		opts = *loaded
	}
	// Only flags the user actually set override the options file; the
	// --source default must not shadow an explicit source from the file.
	overlay := pipeline.Options{}
	if cmd.Flags().Changed("source") {
		overlay.Source = normalizeSource
	}
	if cmd.Flags().Changed("document-title") {
		overlay.DocumentTitle = normalizeTitle
	}
	if cmd.Flags().Changed("document-version") {
		overlay.DocumentVersion = normalizeVersion
	}
	opts = opts.Merge(overlay)

	logging.Debug().
		Str("source", opts.Source).
		Str("document_title", opts.DocumentTitle).
		Str("document_version", opts.DocumentVersion).
		Msg("Resolved options")

	if _, err := pipeline.New().Run(normalizeInput, normalizeOutput, opts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully normalized %s -> %s\n",
		normalizeInput, normalizeOutput)
	return nil
}
