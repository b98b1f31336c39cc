package devdocs_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := devdocs.Errorf(devdocs.ENOTFOUND, "document %q not found", "intro")

	assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	assert.Equal(t, "document \"intro\" not found", devdocs.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", devdocs.Errorf(devdocs.EINVALID, "bad input"))

	assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	assert.Equal(t, "bad input", devdocs.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, devdocs.EINTERNAL, devdocs.ErrorCode(err))
	assert.Equal(t, "Internal error.", devdocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, devdocs.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, devdocs.ErrorMessage(nil))
}
