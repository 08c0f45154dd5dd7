package docready

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/agentstation/livingdoc/pkg/errors"
)

// Decode reads a Canonical Document from r. The schema is closed: unknown
// fields anywhere in the document are rejected rather than ignored, and the
// decoded value is validated before it is returned.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &errors.SchemaValidationError{
			Schema:  schemaName,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeBytes reads a Canonical Document from raw JSON bytes.
func DecodeBytes(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}
