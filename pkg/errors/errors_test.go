package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/livingdoc/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestInvalidInputError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &pkgerrors.InvalidInputError{
			Path:    "input.json",
			Message: "file not found",
		}
		assert.Equal(t, `invalid input "input.json": file not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.InvalidInputError{Message: "malformed JSON"}
		assert.Equal(t, "invalid input: malformed JSON", err.Error())
	})

	t.Run("constructor", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := pkgerrors.NewInvalidInputError("secret.json", "cannot read file", cause)
		assert.Contains(t, err.Error(), "secret.json")
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestAdapterError(t *testing.T) {
	t.Run("with adapter name", func(t *testing.T) {
		err := &pkgerrors.AdapterError{
			Adapter: "collector-gh",
			Message: "missing metadata",
		}
		assert.Equal(t, "adapter collector-gh: missing metadata", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrAdapter))
	})

	t.Run("without adapter name", func(t *testing.T) {
		err := pkgerrors.NewAdapterError("", "input does not match any known adapter format", nil)
		assert.Equal(t, "input does not match any known adapter format", err.Error())
	})
}

func TestSchemaValidationError(t *testing.T) {
	t.Run("schema and field", func(t *testing.T) {
		err := pkgerrors.NewSchemaValidationError("docready.v1", "meta.document_title", "must not be empty")
		assert.Equal(t, "schema docready.v1: field meta.document_title: must not be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrSchemaValidation))
	})

	t.Run("field only", func(t *testing.T) {
		err := pkgerrors.NewSchemaValidationError("", "title", "too long")
		assert.Equal(t, "field title: too long", err.Error())
	})

	t.Run("schema only", func(t *testing.T) {
		err := pkgerrors.NewSchemaValidationError("audit.v1", "", "unknown field")
		assert.Equal(t, "schema audit.v1: unknown field", err.Error())
	})
}

func TestNormalizationError(t *testing.T) {
	err := pkgerrors.NewNormalizationError("build", "assembly failed", nil)
	assert.Equal(t, "normalization stage build: assembly failed", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNormalization))
}

func TestOutputIOError(t *testing.T) {
	cause := errors.New("disk full")
	err := pkgerrors.NewOutputIOError("write", "out/doc.json", cause)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "out/doc.json")
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, errors.Is(err, pkgerrors.ErrOutputIO))
	assert.Equal(t, cause, err.Unwrap())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", pkgerrors.NewInvalidInputError("f", "missing", nil), 1},
		{"adapter", pkgerrors.NewAdapterError("collector-gh", "bad payload", nil), 2},
		{"schema validation", pkgerrors.NewSchemaValidationError("docready.v1", "meta", "invalid"), 3},
		{"normalization", pkgerrors.NewNormalizationError("build", "failed", nil), 4},
		{"output io", pkgerrors.NewOutputIOError("write", "out.json", errors.New("eio")), 5},
		{"plain error", errors.New("unexpected"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, pkgerrors.ExitCode(tt.err))
		})
	}

	t.Run("wrapped toolkit error", func(t *testing.T) {
		inner := pkgerrors.NewOutputIOError("mkdir", "out", errors.New("eperm"))
		wrapped := fmt.Errorf("flush: %w", inner)
		assert.Equal(t, 5, pkgerrors.ExitCode(wrapped))
	})
}

func TestWrapAdapter(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapAdapter("collector-gh", nil))
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("missing repositories")
		err := pkgerrors.WrapAdapter("collector-gh", cause)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkgerrors.ErrAdapter))
		assert.True(t, errors.Is(err, cause))
	})
}

func TestWrapNormalization(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapNormalization("build", nil))
	})

	t.Run("wraps plain error", func(t *testing.T) {
		err := pkgerrors.WrapNormalization("build", errors.New("boom"))
		assert.True(t, errors.Is(err, pkgerrors.ErrNormalization))
		assert.Equal(t, 4, pkgerrors.ExitCode(err))
	})

	t.Run("never downgrades lower kinds", func(t *testing.T) {
		for _, inner := range []error{
			pkgerrors.NewInvalidInputError("f", "bad", nil),
			pkgerrors.NewAdapterError("collector-gh", "bad", nil),
			pkgerrors.NewSchemaValidationError("docready.v1", "meta", "bad"),
		} {
			wrapped := pkgerrors.WrapNormalization("build", inner)
			assert.Equal(t, inner, wrapped)
		}
	})
}

func TestWrapOutputIO(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapOutputIO("write", "out.json", nil))

	err := pkgerrors.WrapOutputIO("write", "out.json", errors.New("eio"))
	assert.Equal(t, 5, pkgerrors.ExitCode(err))
}
