// Package jsonio provides the file read/write collaborators that bracket
// the normalization pipeline. Reads fail with invalid-input errors; writes
// fail with output I/O errors; both close their handles on every exit path.
// Output is byte-for-byte deterministic: lexicographic key order, two-space
// indentation, trailing newline.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/livingdoc/pkg/errors"
)

// ReadFile reads and parses a JSON document. A missing or unreadable file
// and malformed JSON are both invalid-input failures; the cause is
// preserved so callers can still distinguish them. The top-level value must
// be a JSON object.
func ReadFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInvalidInputError(path, "file not found", err)
		}
		return nil, errors.NewInvalidInputError(path, fmt.Sprintf("cannot read file: %v", err), err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errors.NewInvalidInputError(path, fmt.Sprintf("malformed JSON: %v", err), err)
	}
	if dec.More() {
		return nil, errors.NewInvalidInputError(path, "malformed JSON: trailing data after document", nil)
	}

	payload, ok := value.(map[string]any)
	if !ok {
		return nil, errors.NewInvalidInputError(path, "input document must be a JSON object", nil)
	}
	return payload, nil
}

// MarshalCanonical serializes a value deterministically: the value is
// marshaled, re-decoded into generic form so object keys sort
// lexicographically, indented with two spaces, and terminated by a newline.
func MarshalCanonical(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// WriteFile writes a value as canonical JSON, creating missing parent
// directories. Exactly one file is produced, and only after the full
// serialized form exists in memory.
func WriteFile(path string, v any) error {
	data, err := MarshalCanonical(v)
	if err != nil {
		return errors.NewOutputIOError("serialize", path, err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewOutputIOError("mkdir", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewOutputIOError("write", path, err)
	}
	return nil
}
