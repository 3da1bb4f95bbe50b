package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	err := Wrap(CodeInvalidInput, "Birth date cannot be in the future", nil)
	require.True(t, IsCode(err, CodeInvalidInput))
	require.False(t, IsCode(err, CodeGenerationFailed))
	require.Equal(t, "Birth date cannot be in the future", err.Error())

	wrapped := fmt.Errorf("produce: %w", err)
	require.True(t, IsCode(wrapped, CodeInvalidInput))
}

func TestDetailPrefersCause(t *testing.T) {
	cause := errors.New("template references unknown placeholder \"moon\"")
	err := Wrap(CodeGenerationFailed, "unable to generate horoscope", cause)

	require.Equal(t, cause.Error(), Detail(err))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "plain", Detail(errors.New("plain")))
	require.Equal(t, "", Detail(nil))
}
