package ddir_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/ddir"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ddir.Errorf(ddir.ENOTFOUND, "config file %q does not exist", "/tmp/config.json")

	assert.Equal(t, ddir.ENOTFOUND, ddir.ErrorCode(err))
	assert.Equal(t, "config file \"/tmp/config.json\" does not exist", ddir.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ddir.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ddir.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ddir.EINTERNAL, ddir.ErrorCode(errors.New("disk on fire")))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", ddir.ErrorMessage(errors.New("disk on fire")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("failed to read config: %w", ddir.Errorf(ddir.EINVALID, "bad JSON"))

	assert.Equal(t, ddir.EINVALID, ddir.ErrorCode(err))
	assert.Equal(t, "bad JSON", ddir.ErrorMessage(err))
}
