package backoff

import (
	"context"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRetryGeneral(t *testing.T) {
	calls := 0
	err := RetryGeneral(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("temporary")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	permanent := errors.New("permanent")
	err = RetryGeneral(context.Background(), func() error {
		calls++
		return backoff.Permanent(permanent)
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RetryGeneral(ctx, func() error { return errors.New("temporary") })
	assert.Error(t, err)
}
