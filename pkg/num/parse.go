package num

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumber = errors.New("invalid number")

// Parse parses a textual number. Anything that is not a valid real number,
// including an empty string, "NaN" or "null", yields NA.
func Parse(s string) Num {
	n, err := ParseStrict(s)
	if err != nil {
		return NA
	}
	return n
}

// ParseStrict is like Parse but reports why the text was rejected.
func ParseStrict(s string) (Num, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NA, errors.Wrap(ErrInvalidNumber, "empty string")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return NA, errors.Wrapf(ErrInvalidNumber, "%q: %v", s, err)
	}

	return New(d.InexactFloat64()), nil
}
