package browser

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Options configures Chrome.
type Options struct {
	Headless  bool
	NoSandbox bool
	// RemoteURL attaches to an already running browser (ws://...) instead
	// of starting one per session.
	RemoteURL string
	// ExecPath overrides the Chrome binary lookup.
	ExecPath string
	Logger   *log.Logger
}

// Chrome launches chromedp sessions.
type Chrome struct {
	opts   Options
	logger *log.Logger
}

// NewChrome returns a Launcher backed by chromedp.
func NewChrome(opts Options) *Chrome {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Chrome{opts: opts, logger: logger}
}

func (c *Chrome) allocator(userAgent string) (context.Context, context.CancelFunc) {
	if c.opts.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(context.Background(), c.opts.RemoteURL)
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.UserAgent(userAgent),
	)
	if c.opts.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	if c.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.opts.ExecPath))
	}
	return chromedp.NewExecAllocator(context.Background(), opts...)
}

// Launch starts a fresh browser (or a fresh tab on RemoteURL) and enables
// network interception. Startup is bounded by ctx.
func (c *Chrome) Launch(ctx context.Context, userAgent string) (Session, error) {
	allocCtx, allocCancel := c.allocator(userAgent)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(c.logger.Debugf))

	s := &chromeSession{
		ctx: tabCtx,
		cancel: func() {
			tabCancel()
			allocCancel()
		},
	}
	chromedp.ListenTarget(tabCtx, s.onEvent)

	// The first Run on the tab context starts the browser; it must not run
	// on a derived context or the browser would die with it.
	started := make(chan error, 1)
	go func() {
		started <- chromedp.Run(tabCtx,
			network.Enable(),
			emulation.SetUserAgentOverride(userAgent),
		)
	}()
	select {
	case err := <-started:
		if err != nil {
			s.Close()
			return nil, err
		}
	case <-ctx.Done():
		s.Close()
		return nil, ctx.Err()
	}
	return s, nil
}

type expectation struct {
	matcher   ResponseMatcher
	ch        chan Capture
	requestID network.RequestID
	url       string
	status    int
	done      bool
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	expecting []*expectation
	closeOnce sync.Once
}

func (s *chromeSession) Expect(m ResponseMatcher) <-chan Capture {
	e := &expectation{matcher: m, ch: make(chan Capture, 1)}
	s.mu.Lock()
	s.expecting = append(s.expecting, e)
	s.mu.Unlock()
	return e.ch
}

// onEvent runs on the chromedp event goroutine and must not block on CDP
// calls; the body is fetched on a separate goroutine.
func (s *chromeSession) onEvent(ev any) {
	switch ev := ev.(type) {
	case *network.EventResponseReceived:
		if ev.Response == nil {
			return
		}
		s.mu.Lock()
		for _, e := range s.expecting {
			if e.done || e.requestID != "" {
				continue
			}
			if e.matcher.Match(ev.Response.URL, int(ev.Response.Status), ev.Response.MimeType) {
				e.requestID = ev.RequestID
				e.url = ev.Response.URL
				e.status = int(ev.Response.Status)
				break
			}
		}
		s.mu.Unlock()

	case *network.EventLoadingFinished:
		if e := s.claim(ev.RequestID); e != nil {
			go s.readBody(e)
		}

	case *network.EventLoadingFailed:
		if e := s.claim(ev.RequestID); e != nil {
			e.ch <- Capture{URL: e.url, Status: e.status, Err: errLoadingFailed(ev.ErrorText)}
		}
	}
}

func (s *chromeSession) claim(id network.RequestID) *expectation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.expecting {
		if !e.done && e.requestID == id {
			e.done = true
			return e
		}
	}
	return nil
}

func (s *chromeSession) readBody(e *expectation) {
	c := chromedp.FromContext(s.ctx)
	if c == nil || c.Target == nil {
		e.ch <- Capture{URL: e.url, Status: e.status, Err: context.Canceled}
		return
	}
	body, err := network.GetResponseBody(e.requestID).Do(cdp.WithExecutor(s.ctx, c.Target))
	e.ch <- e.result(body, err)
}

// result builds the capture for a finished response. A body that cannot
// be fetched counts as a failed load.
func (e *expectation) result(body []byte, err error) Capture {
	if err != nil {
		return Capture{URL: e.url, Status: e.status, Err: errLoadingFailed(err.Error())}
	}
	return Capture{URL: e.url, Status: e.status, Body: body}
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *chromeSession) Click(ctx context.Context, selector string) error {
	return s.run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	)
}

// run executes actions on the tab, stopping early when ctx is done.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (s *chromeSession) Close() {
	s.closeOnce.Do(s.cancel)
}

var (
	_ Launcher = (*Chrome)(nil)
	_ Session  = (*chromeSession)(nil)
)
