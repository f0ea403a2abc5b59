package carriers

import (
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
)

// DigitNumber canonicalizes number and checks that it is between min and
// max digits long. It never performs I/O.
func DigitNumber(number string, min, max int) (string, error) {
	if err := errors.ValidateTrackingNumber(number); err != nil {
		return "", err
	}
	n := normalize.Canonical(number)
	if !normalize.IsDigits(n) || len(n) < min || len(n) > max {
		return "", errors.New(errors.ErrCodeInvalidInput, "tracking number must have %d to %d digits", min, max)
	}
	return n, nil
}
