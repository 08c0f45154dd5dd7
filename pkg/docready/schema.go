package docready

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/agentstation/livingdoc/pkg/audit"
	"github.com/agentstation/livingdoc/pkg/errors"
)

// schemaJSON is the Canonical Document v1 JSON Schema, embedded so
// validation and schema export need no files on disk.
//
//go:embed schema.json
var schemaJSON []byte

// SchemaID is the resource name the schema is registered under when
// compiled or exported.
const SchemaID = "docready.v1.schema.json"

// SchemaJSON returns the raw Canonical Document v1 JSON Schema document.
func SchemaJSON() []byte {
	return schemaJSON
}

var (
	compiledSchema *jsonschema.Schema
	compileErr     error
	compileOnce    sync.Once
)

// compile builds the Canonical Document schema once, registering the Audit
// Envelope schema it references.
func compile() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(audit.SchemaID, bytes.NewReader(audit.SchemaJSON())); err != nil {
			compileErr = err
			return
		}
		if err := compiler.AddResource(SchemaID, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile(SchemaID)
	})
	return compiledSchema, compileErr
}

// ValidateAgainstSchema checks the serialized form of a document against
// the embedded JSON Schema. This is the defensive gate outside normal
// construction validation; failures are schema validation errors.
func ValidateAgainstSchema(doc *Document) error {
	schema, err := compile()
	if err != nil {
		return &errors.SchemaValidationError{
			Schema:  schemaName,
			Message: "schema compilation failed: " + err.Error(),
			Err:     err,
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return &errors.SchemaValidationError{
			Schema:  schemaName,
			Message: "document serialization failed: " + err.Error(),
			Err:     err,
		}
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &errors.SchemaValidationError{
			Schema:  schemaName,
			Message: err.Error(),
			Err:     err,
		}
	}

	if err := schema.Validate(value); err != nil {
		return &errors.SchemaValidationError{
			Schema:  schemaName,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}
