package pipeline

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/livingdoc/pkg/errors"
)

// Options configures one pipeline run.
type Options struct {
	// Source selects the adapter: "auto" triggers detection, an explicit
	// adapter name bypasses it. Empty means auto.
	Source string `yaml:"source"`

	// DocumentTitle overrides the document title when non-empty.
	DocumentTitle string `yaml:"document_title"`

	// DocumentVersion overrides the document version when non-empty.
	DocumentVersion string `yaml:"document_version"`
}

// LoadOptions reads pipeline options from a YAML file. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInvalidInputError(path,
			fmt.Sprintf("cannot read options file: %v", err), err)
	}

	var opts Options
	if err := yaml.UnmarshalWithOptions(data, &opts, yaml.Strict()); err != nil {
		return nil, errors.NewInvalidInputError(path,
			fmt.Sprintf("malformed options file: %v", err), err)
	}
	return &opts, nil
}

// Merge overlays non-empty fields of other onto o and returns the result.
// Explicit flags win over options-file values.
func (o Options) Merge(other Options) Options {
	merged := o
	if other.Source != "" {
		merged.Source = other.Source
	}
	if other.DocumentTitle != "" {
		merged.DocumentTitle = other.DocumentTitle
	}
	if other.DocumentVersion != "" {
		merged.DocumentVersion = other.DocumentVersion
	}
	return merged
}
