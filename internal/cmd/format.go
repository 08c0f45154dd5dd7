package cmd

import (
	"fmt"

	"github.com/agentstation/livingdoc/pkg/errors"
)

// FormatError renders an error for the CLI as "{prefix} {detail}. {guidance}".
// Kinds are checked in severity order so a wrapped lower-numbered kind
// keeps its own prefix.
func FormatError(err error) string {
	prefix := "Error:"
	guidance := "Please check the logs for more details."

	switch {
	case errors.Is(err, errors.ErrInvalidInput):
		prefix = "Invalid input:"
		guidance = "Ensure --input points to a valid file."
	case errors.Is(err, errors.ErrAdapter):
		prefix = "Adapter error:"
		guidance = "Check metadata.generator.name field."
	case errors.Is(err, errors.ErrSchemaValidation):
		prefix = "Schema validation failed:"
		guidance = "Review the output schema requirements."
	case errors.Is(err, errors.ErrNormalization):
		prefix = "Normalization failed:"
		guidance = "Check input data format and content."
	case errors.Is(err, errors.ErrOutputIO):
		prefix = "File I/O error:"
		guidance = "Ensure output directory exists and is writable."
	}

	return fmt.Sprintf("%s %s. %s", prefix, err.Error(), guidance)
}
