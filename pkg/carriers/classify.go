package carriers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/url"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/errors"
)

// Classify translates any failure into the provider taxonomy. Errors that
// already carry a code pass through untouched; timeouts, network and
// browser failures become UPSTREAM; everything else becomes UNEXPECTED.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := errors.As(err); ok {
		return e
	}

	var (
		netErr    net.Error
		urlErr    *url.Error
		loadErr   *browser.LoadingError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeUpstream, err, "carrier did not answer in time")
	case stderrors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrCodeUpstream, err, "request cancelled")
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.Wrap(errors.ErrCodeUpstream, err, "carrier closed the connection early")
	case stderrors.As(err, &netErr), stderrors.As(err, &urlErr):
		return errors.Wrap(errors.ErrCodeUpstream, err, "carrier unreachable")
	case stderrors.As(err, &loadErr):
		return errors.Wrap(errors.ErrCodeUpstream, err, "carrier response could not be read")
	case stderrors.As(err, &syntaxErr), stderrors.As(err, &typeErr):
		return errors.Wrap(errors.ErrCodeUnexpected, err, "carrier returned malformed data")
	case isNavigation(err):
		return errors.Wrap(errors.ErrCodeUpstream, err, "carrier page could not be loaded")
	}
	return errors.Wrap(errors.ErrCodeUnexpected, err, "unexpected failure")
}

// navigationError marks failures of the browser while loading or driving
// a page.
type navigationError struct {
	step string
	err  error
}

func (e *navigationError) Error() string { return e.step + ": " + e.err.Error() }
func (e *navigationError) Unwrap() error { return e.err }

func isNavigation(err error) bool {
	var nav *navigationError
	return stderrors.As(err, &nav)
}
