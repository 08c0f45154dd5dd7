package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/livingdoc/pkg/audit"
	"github.com/agentstation/livingdoc/pkg/docready"
	"github.com/agentstation/livingdoc/pkg/errors"
	"github.com/agentstation/livingdoc/pkg/jsonio"
)

var schemaExportDir string

// schemaCmd groups schema-related subcommands.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Work with the published JSON Schemas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// schemaExportCmd writes the embedded schemas to disk for documentation
// and consumer tooling.
var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the Canonical Document and Audit Envelope JSON Schemas",
	RunE:  runSchemaExport,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaExportCmd)

	schemaExportCmd.Flags().StringVar(&schemaExportDir, "dir", "schemas",
		"Directory to write schema files into")
}

func runSchemaExport(cmd *cobra.Command, _ []string) error {
	exports := []struct {
		name string
		raw  []byte
	}{
		{docready.SchemaID, docready.SchemaJSON()},
		{audit.SchemaID, audit.SchemaJSON()},
	}

	for _, export := range exports {
		name, raw := export.name, export.raw
		var schema any
		if err := json.Unmarshal(raw, &schema); err != nil {
			return errors.NewSchemaValidationError(name, "",
				fmt.Sprintf("embedded schema is not valid JSON: %v", err))
		}

		path := filepath.Join(schemaExportDir, name)
		if err := jsonio.WriteFile(path, schema); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}
