//go:build !integration

package cmdutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagError(t *testing.T) {
	underlying := errors.New("unknown flag: --frob")
	err := &FlagError{Err: underlying}

	assert.Equal(t, "unknown flag: --frob", err.Error())
	assert.ErrorIs(t, err, underlying)
}

func TestWrapError(t *testing.T) {
	underlying := errors.New("boom")

	err := WrapError(underlying, "something went wrong")
	assert.Equal(t, 1, err.Code)
	assert.Equal(t, "something went wrong", err.Details)
	assert.ErrorIs(t, err, underlying)

	withCode := WrapErrorWithCode(underlying, 4, "details")
	assert.Equal(t, 4, withCode.Code)
}
