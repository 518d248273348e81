package bootpack_test

import (
	"errors"
	"testing"

	"github.com/dargueta/bootpack"
	"github.com/stretchr/testify/assert"
)

func TestBootpackErrorWithMessage(t *testing.T) {
	newErr := bootpack.ErrSourceTooLarge.WithMessage("16385 bytes")
	assert.Equal(
		t, "Source image too large: 16385 bytes", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, bootpack.ErrSourceTooLarge)
}

func TestBootpackErrorWrap(t *testing.T) {
	originalErr := errors.New("disk on fire")
	newErr := bootpack.ErrIOFailed.Wrap(originalErr)
	expectedMessage := "Input/output error: disk on fire"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, bootpack.ErrIOFailed, "bootpack error not set as parent")
	assert.NotErrorIs(t, newErr, bootpack.ErrUsage)
}

func TestBootpackErrorChainedMessages(t *testing.T) {
	newErr := bootpack.ErrUsage.WithMessage("encode").WithMessage("expected 2 arguments")
	assert.Equal(t, "Incorrect usage: encode: expected 2 arguments", newErr.Error())
	assert.ErrorIs(t, newErr, bootpack.ErrUsage)
}
