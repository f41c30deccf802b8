package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFail(t *testing.T) {
	t.Run("AlreadyDone", func(t *testing.T) {
		assert := assert.New(t)
		execution := Fail(errors.New("expected"))

		select {
		case <-execution.Done():
			// passing
		default:
			assert.Fail("a failed execution must be done from the start")
		}
	})

	t.Run("DeliversErrorOnce", func(t *testing.T) {
		var (
			assert        = assert.New(t)
			expectedError = errors.New("expected")
			execution     = Fail(expectedError)
		)

		response, err := execution.Wait(context.Background())
		assert.Nil(response)
		assert.Equal(expectedError, err)

		assert.Panics(func() {
			execution.Wait(context.Background())
		})
	})

	t.Run("NilError", func(t *testing.T) {
		assert := assert.New(t)

		assert.Panics(func() {
			Fail(nil)
		})
	})

	t.Run("CancelIsSafe", func(t *testing.T) {
		assert := assert.New(t)
		execution := Fail(errors.New("expected"))

		assert.NotPanics(execution.Cancel)
	})
}
