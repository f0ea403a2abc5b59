package carriers

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/observability"
)

// Phase is a step of a browser capture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseNavigated
	PhaseAwaitingResponse
	PhaseExtracted
	PhaseDone
	PhaseFailed
)

var phaseNames = [...]string{"idle", "navigated", "awaiting_response", "extracted", "done", "failed"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Plan describes one capture: which page to load, what to click, and which
// backend response carries the data.
type Plan struct {
	Carrier   string
	URL       string
	UserAgent string
	Matcher   browser.ResponseMatcher
	// Interact, when set, is waited for and clicked after navigation.
	Interact string
	// PageTimeout bounds launch, navigation and interaction.
	PageTimeout time.Duration
	// ResponseTimeout bounds the wait for the matched response.
	ResponseTimeout time.Duration
}

// Automation runs capture plans on fresh browser sessions.
type Automation struct {
	launcher browser.Launcher
	logger   *log.Logger
}

// NewAutomation returns an Automation. A nil logger discards output.
func NewAutomation(launcher browser.Launcher, logger *log.Logger) *Automation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Automation{launcher: launcher, logger: logger}
}

// Capture opens a session, arms the response listener, navigates (and
// clicks when the plan says so) and returns the intercepted body.
//
// Phases run Idle, Navigated, AwaitingResponse, Extracted, Done; any
// failure ends in Failed. The session is closed on every path. Returned
// errors are already classified.
func (a *Automation) Capture(ctx context.Context, plan Plan) (body []byte, err error) {
	phase := PhaseIdle
	start := time.Now()
	logger := a.logger.With("carrier", plan.Carrier)

	defer func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			logger.Debug("capture", "phase", PhaseFailed, "failed_in", phase, "err", err, "elapsed", elapsed)
			err = Classify(err)
			return
		}
		logger.Debug("capture", "phase", PhaseDone, "bytes", len(body), "elapsed", elapsed)
	}()

	pageCtx, cancelPage := withTimeout(ctx, plan.PageTimeout)
	defer cancelPage()

	sess, err := a.launcher.Launch(pageCtx, plan.UserAgent)
	if err != nil {
		return nil, &navigationError{step: "launch browser", err: err}
	}
	hooks := observability.Browser()
	hooks.OnSessionOpen(ctx, plan.Carrier)
	defer func() {
		sess.Close()
		hooks.OnSessionClose(ctx, plan.Carrier, time.Since(start))
	}()

	// Armed before navigation so a response fired during load is not lost.
	captured := sess.Expect(plan.Matcher)

	if err := sess.Navigate(pageCtx, plan.URL); err != nil {
		return nil, &navigationError{step: "navigate", err: err}
	}
	phase = PhaseNavigated
	logger.Debug("navigated", "url", plan.URL)

	if plan.Interact != "" {
		if err := sess.Click(pageCtx, plan.Interact); err != nil {
			return nil, &navigationError{step: "click " + plan.Interact, err: err}
		}
		logger.Debug("clicked", "selector", plan.Interact)
	}

	phase = PhaseAwaitingResponse
	respCtx, cancelResp := withTimeout(ctx, plan.ResponseTimeout)
	defer cancelResp()

	select {
	case c := <-captured:
		if c.Err != nil {
			return nil, c.Err
		}
		phase = PhaseExtracted
		logger.Debug("response captured", "url", c.URL, "status", c.Status)
		return c.Body, nil
	case <-respCtx.Done():
		if ctx.Err() == nil {
			return nil, errors.Wrap(errors.ErrCodeUpstream, respCtx.Err(), "carrier backend did not respond within %s", plan.ResponseTimeout)
		}
		return nil, respCtx.Err()
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
