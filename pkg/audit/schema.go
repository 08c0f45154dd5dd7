package audit

import (
	_ "embed"
)

// schemaJSON is the Audit Envelope v1 JSON Schema, embedded so validation
// and schema export need no files on disk.
//
//go:embed schema.json
var schemaJSON []byte

// SchemaID is the resource name the schema is registered under when
// compiled or exported.
const SchemaID = "audit.v1.schema.json"

// SchemaJSON returns the raw Audit Envelope v1 JSON Schema document.
func SchemaJSON() []byte {
	return schemaJSON
}
