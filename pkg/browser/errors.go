package browser

import "fmt"

// LoadingError reports a matched response whose body never arrived.
type LoadingError struct {
	Reason string
}

func (e *LoadingError) Error() string {
	return fmt.Sprintf("response loading failed: %s", e.Reason)
}

func errLoadingFailed(reason string) error {
	return &LoadingError{Reason: reason}
}
