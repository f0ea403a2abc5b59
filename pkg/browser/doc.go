// Package browser drives a headless Chrome tab to load a carrier page and
// capture the JSON response its own frontend requests.
//
// The package is split into two small interfaces so providers can be tested
// without a browser:
//
//   - [Launcher] opens one isolated [Session] per call.
//   - [Session] navigates, clicks and hands back intercepted responses.
//
// [Chrome] is the chromedp-backed implementation. Every Launch creates its
// own allocator and tab; nothing is shared between calls, and Close tears
// both down. Use package browsertest for a scripted fake.
//
// # Capturing responses
//
// Register the expectation before triggering the request:
//
//	ch := sess.Expect(browser.ResponseMatcher{URL: re, MIME: "json"})
//	if err := sess.Navigate(ctx, pageURL); err != nil { ... }
//	select {
//	case c := <-ch:
//	case <-ctx.Done():
//	}
//
// A matcher fires at most once. Only 200 responses are considered.
package browser
