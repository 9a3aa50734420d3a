package cardex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cardex.Errorf(cardex.ENOTFOUND, "unknown page kind %q", "test")

	assert.Equal(t, cardex.ENOTFOUND, cardex.ErrorCode(err))
	assert.Equal(t, "unknown page kind \"test\"", cardex.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", cardex.Errorf(cardex.EINVALID, "bad input"))

	assert.Equal(t, cardex.EINVALID, cardex.ErrorCode(err))
	assert.Equal(t, "bad input", cardex.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, cardex.EINTERNAL, cardex.ErrorCode(err))
	assert.Equal(t, "Internal error", cardex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cardex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cardex.ErrorMessage(nil))
}
