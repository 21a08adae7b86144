package backoff

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/c9s/vista/pkg/envvar"
)

// MaxRetries can be overridden with VISTA_MAX_RETRIES.
var MaxRetries uint64 = 5

func init() {
	if v, ok := envvar.Int("VISTA_MAX_RETRIES"); ok && v >= 0 {
		MaxRetries = uint64(v)
	}
}

// RetryGeneral runs op with exponential backoff until it succeeds, returns a
// backoff.Permanent error, ctx is done or MaxRetries is reached.
func RetryGeneral(ctx context.Context, op backoff.Operation) (err error) {
	b := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxRetries),
		ctx)

	err = backoff.RetryNotify(op, b, func(err error, next time.Duration) {
		logrus.WithError(err).Warnf("retrying in %s", next)
	})
	return err
}
