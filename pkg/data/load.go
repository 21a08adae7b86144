package data

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/c9s/vista/pkg/envvar"
	utilbackoff "github.com/c9s/vista/pkg/util/backoff"
)

// HTTPClient is used for remote data sources. The timeout can be set with VISTA_HTTP_TIMEOUT.
var HTTPClient = &http.Client{Timeout: 30 * time.Second}

func init() {
	if timeout, ok := envvar.Duration("VISTA_HTTP_TIMEOUT"); ok {
		HTTPClient.Timeout = timeout
	}
}

// Load reads market data from a local CSV file or from an http(s) URL.
func Load(ctx context.Context, location string) (*Data, error) {
	if isURL(location) {
		body, err := fetch(ctx, location)
		if err != nil {
			return nil, err
		}
		return parseLogged(bytes.NewReader(body), location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open data file %s", location)
	}
	//nolint:errcheck // read only
	defer f.Close()

	return parseLogged(f, location)
}

func parseLogged(r io.Reader, location string) (*Data, error) {
	d, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "can not decode %s", location)
	}

	log.Debugf("loaded %d bars from %s", d.Size(), location)
	return d, nil
}

func isURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// fetch downloads the document with exponential backoff. Server errors and
// transport errors are retried, client errors are not.
func fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := HTTPClient.Do(req)
		if err != nil {
			return err
		}
		//nolint:errcheck // read only
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(errors.Errorf("fetch %s: unexpected status %s", url, resp.Status))
		}

		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("fetch %s: unexpected status %s", url, resp.Status)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	if err := utilbackoff.RetryGeneral(ctx, op); err != nil {
		return nil, err
	}
	return body, nil
}
