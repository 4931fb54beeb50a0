package htmltext_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/htmltext"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := htmltext.Errorf(htmltext.EINVALID, "tag %q cannot be both saved and removed", "h1")

	assert.Equal(t, htmltext.EINVALID, htmltext.ErrorCode(err))
	assert.Equal(t, "tag \"h1\" cannot be both saved and removed", htmltext.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmltext.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, htmltext.EINTERNAL, htmltext.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmltext.ErrorMessage(nil))
}
