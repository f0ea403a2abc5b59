// Package browsertest provides a scripted browser.Launcher for tests.
package browsertest

import (
	"context"
	"sync"

	"github.com/matzehuels/parceltrack/pkg/browser"
)

// Launcher is a fake browser.Launcher. Each session replays the same script:
// after Navigate (or after Click when AfterClick is set) every registered
// expectation that matches CaptureURL receives Body.
type Launcher struct {
	// CaptureURL is the URL the fake backend response is reported under.
	CaptureURL string
	// MIME is the reported content type, "application/json" when empty.
	MIME string
	// Status is the reported HTTP status, 200 when zero.
	Status int
	Body   []byte
	// BodyErr is delivered in place of Body when set.
	BodyErr error
	// AfterClick delays the response until Click is called.
	AfterClick bool
	// Silent suppresses the response entirely.
	Silent bool

	LaunchErr   error
	NavigateErr error
	ClickErr    error
	// BlockNavigate makes Navigate wait until its context is done.
	BlockNavigate bool

	mu        sync.Mutex
	launches  int
	closes    int
	userAgent string
	navigated []string
	clicked   []string
}

// Launch implements browser.Launcher.
func (l *Launcher) Launch(ctx context.Context, userAgent string) (browser.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.LaunchErr != nil {
		return nil, l.LaunchErr
	}
	l.launches++
	l.userAgent = userAgent
	return &session{l: l}, nil
}

// Launches reports how many sessions were opened.
func (l *Launcher) Launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}

// Closes reports how many sessions were closed.
func (l *Launcher) Closes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closes
}

// UserAgent returns the user agent of the last launch.
func (l *Launcher) UserAgent() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userAgent
}

// Navigated returns every URL passed to Navigate.
func (l *Launcher) Navigated() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.navigated...)
}

// Clicked returns every selector passed to Click.
func (l *Launcher) Clicked() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.clicked...)
}

type session struct {
	l *Launcher

	mu      sync.Mutex
	pending []pending
	closed  bool
}

type pending struct {
	m  browser.ResponseMatcher
	ch chan browser.Capture
}

func (s *session) Expect(m browser.ResponseMatcher) <-chan browser.Capture {
	ch := make(chan browser.Capture, 1)
	s.mu.Lock()
	s.pending = append(s.pending, pending{m: m, ch: ch})
	s.mu.Unlock()
	return ch
}

func (s *session) Navigate(ctx context.Context, url string) error {
	s.l.mu.Lock()
	s.l.navigated = append(s.l.navigated, url)
	s.l.mu.Unlock()

	if s.l.BlockNavigate {
		<-ctx.Done()
		return ctx.Err()
	}
	if s.l.NavigateErr != nil {
		return s.l.NavigateErr
	}
	if !s.l.AfterClick {
		s.respond()
	}
	return nil
}

func (s *session) Click(ctx context.Context, selector string) error {
	s.l.mu.Lock()
	s.l.clicked = append(s.l.clicked, selector)
	s.l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.l.ClickErr != nil {
		return s.l.ClickErr
	}
	if s.l.AfterClick {
		s.respond()
	}
	return nil
}

func (s *session) respond() {
	if s.l.Silent {
		return
	}
	status := s.l.Status
	if status == 0 {
		status = 200
	}
	mime := s.l.MIME
	if mime == "" {
		mime = "application/json"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rest := s.pending[:0]
	for _, p := range s.pending {
		if !p.m.Match(s.l.CaptureURL, status, mime) {
			rest = append(rest, p)
			continue
		}
		p.ch <- browser.Capture{URL: s.l.CaptureURL, Status: status, Body: s.l.Body, Err: s.l.BodyErr}
	}
	s.pending = rest
}

func (s *session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.l.mu.Lock()
	s.l.closes++
	s.l.mu.Unlock()
}

var _ browser.Launcher = (*Launcher)(nil)
