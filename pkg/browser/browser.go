package browser

import (
	"context"
	"regexp"
	"strings"
)

// ResponseMatcher selects the backend response a session should capture.
type ResponseMatcher struct {
	// URL must match the response URL.
	URL *regexp.Regexp
	// MIME, when set, must be a substring of the response content type.
	MIME string
}

// Match reports whether a response with the given url, status and content
// type satisfies m. Non-200 responses never match.
func (m ResponseMatcher) Match(url string, status int, mime string) bool {
	if status != 200 || m.URL == nil || !m.URL.MatchString(url) {
		return false
	}
	return m.MIME == "" || strings.Contains(strings.ToLower(mime), strings.ToLower(m.MIME))
}

// Capture is an intercepted response.
type Capture struct {
	URL    string
	Status int
	Body   []byte
	Err    error // set when the body could not be read
}

// Session is one isolated browser tab. It is not safe to Navigate or Click
// concurrently.
type Session interface {
	// Expect registers m and returns a channel that receives the first
	// matching response. The channel is buffered and receives at most once.
	Expect(m ResponseMatcher) <-chan Capture

	// Navigate loads url and waits for the page load event.
	Navigate(ctx context.Context, url string) error

	// Click waits for selector to become visible and clicks it.
	Click(ctx context.Context, selector string) error

	// Close releases the tab and its browser process. It is idempotent.
	Close()
}

// Launcher opens browser sessions.
type Launcher interface {
	Launch(ctx context.Context, userAgent string) (Session, error)
}
