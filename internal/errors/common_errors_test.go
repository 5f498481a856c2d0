package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewInputError("mortality table is empty", nil),
			want: "[INPUT] mortality table is empty",
		},
		{
			name: "with cause",
			err:  NewSchemaError("division table missing columns", fmt.Errorf("COD_DANE")),
			want: "[SCHEMA] division table missing columns: COD_DANE",
		},
		{
			name: "not found",
			err:  NewNotFoundError("view top-causes"),
			want: "[NOT_FOUND] view top-causes not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("open data/divipola.csv: no such file")
	err := NewInputError("failed to open division table", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewSchemaError("missing columns", nil).
		WithContext("table", "mortality").
		WithContext("missing", []string{"SEXO"})

	require.Len(t, err.Context, 2)
	assert.Equal(t, "mortality", err.Context["table"])
	assert.Equal(t, []string{"SEXO"}, err.Context["missing"])

	bare := &AppError{Type: ErrTypeConfig, Message: "bad"}
	bare.WithContext("key", 1)
	assert.Equal(t, 1, bare.Context["key"])
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"input", NewInputError("m", nil), ErrTypeInput},
		{"schema", NewSchemaError("m", nil), ErrTypeSchema},
		{"parsing", NewParsingError("m", nil), ErrTypeParsing},
		{"storage", NewStorageError("m", nil), ErrTypeStorage},
		{"validation", NewAppValidationError("m"), ErrTypeValidation},
		{"not found", NewNotFoundError("m"), ErrTypeNotFound},
		{"config", NewConfigError("m", nil), ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.NotNil(t, tt.err.Context)
		})
	}
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("load inputs: %w", NewInputError("cause table is empty", nil))

	assert.True(t, IsType(wrapped, ErrTypeInput))
	assert.False(t, IsType(wrapped, ErrTypeSchema))
	assert.False(t, IsType(errors.New("plain"), ErrTypeInput))
	assert.False(t, IsType(nil, ErrTypeInput))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "cause table is empty", appErr.Message)
}
