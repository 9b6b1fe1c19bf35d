package quemequem_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/claricenunes/quemequem"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := quemequem.Errorf(quemequem.ENOTFOUND, "role %q not found", "saude")

	assert.Equal(t, quemequem.ENOTFOUND, quemequem.ErrorCode(err))
	assert.Equal(t, "role \"saude\" not found", quemequem.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quemequem.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, quemequem.ErrorMessage(nil))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", quemequem.Errorf(quemequem.EPARSE, "no markup"))

		assert.Equal(t, quemequem.EPARSE, quemequem.ErrorCode(err))
		assert.Equal(t, "no markup", quemequem.ErrorMessage(err))
	})

	t.Run("reports fetch errors with their status", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("role mec: %w", &quemequem.FetchError{URL: "https://www.gov.br/mec", Status: 503})

		assert.Equal(t, quemequem.EFETCH, quemequem.ErrorCode(err))
		assert.Contains(t, quemequem.ErrorMessage(err), "HTTP 503")
	})

	t.Run("unwraps fetch error causes", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection reset")
		err := &quemequem.FetchError{URL: "https://www.gov.br/mec", Err: cause}

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("treats unknown errors as internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, quemequem.EINTERNAL, quemequem.ErrorCode(err))
		assert.Equal(t, "Internal error.", quemequem.ErrorMessage(err))
	})
}
