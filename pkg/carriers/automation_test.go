package carriers

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/browser/browsertest"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/observability"
)

func testPlan() Plan {
	return Plan{
		Carrier:         "test",
		URL:             "https://carrier.test/track/1",
		UserAgent:       "ua",
		Matcher:         browser.ResponseMatcher{URL: regexp.MustCompile(`/api/track`), MIME: "json"},
		PageTimeout:     time.Second,
		ResponseTimeout: 100 * time.Millisecond,
	}
}

func TestCaptureSuccess(t *testing.T) {
	l := &browsertest.Launcher{CaptureURL: "https://carrier.test/api/track/1", Body: []byte(`{"ok":true}`)}
	body, err := NewAutomation(l, nil).Capture(context.Background(), testPlan())
	if err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
	if l.Launches() != 1 || l.Closes() != 1 {
		t.Errorf("launches=%d closes=%d, want 1/1", l.Launches(), l.Closes())
	}
	if nav := l.Navigated(); len(nav) != 1 || nav[0] != "https://carrier.test/track/1" {
		t.Errorf("navigated = %v", nav)
	}
	if l.UserAgent() != "ua" {
		t.Errorf("user agent = %q", l.UserAgent())
	}
}

func TestCaptureInteract(t *testing.T) {
	l := &browsertest.Launcher{CaptureURL: "https://carrier.test/api/track/1", Body: []byte(`{}`), AfterClick: true}
	plan := testPlan()
	plan.Interact = "#detail"

	if _, err := NewAutomation(l, nil).Capture(context.Background(), plan); err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	if got := l.Clicked(); len(got) != 1 || got[0] != "#detail" {
		t.Errorf("clicked = %v", got)
	}
}

func TestCaptureReleasesSessionOnEveryPath(t *testing.T) {
	tests := []struct {
		name     string
		launcher *browsertest.Launcher
		interact string
		want     errors.Code
	}{
		{
			name:     "navigation error",
			launcher: &browsertest.Launcher{NavigateErr: stderrors.New("net::ERR_NAME_NOT_RESOLVED")},
			want:     errors.ErrCodeUpstream,
		},
		{
			name:     "click error",
			launcher: &browsertest.Launcher{ClickErr: stderrors.New("node not found")},
			interact: "#detail",
			want:     errors.ErrCodeUpstream,
		},
		{
			name:     "response timeout",
			launcher: &browsertest.Launcher{Silent: true},
			want:     errors.ErrCodeUpstream,
		},
		{
			name:     "unmatched response",
			launcher: &browsertest.Launcher{CaptureURL: "https://carrier.test/static/app.js"},
			want:     errors.ErrCodeUpstream,
		},
		{
			name:     "page timeout",
			launcher: &browsertest.Launcher{BlockNavigate: true},
			want:     errors.ErrCodeUpstream,
		},
		{
			name: "body error",
			launcher: &browsertest.Launcher{
				CaptureURL: "https://carrier.test/api/track/1",
				BodyErr:    &browser.LoadingError{Reason: "net::ERR_ABORTED"},
			},
			want: errors.ErrCodeUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := testPlan()
			plan.PageTimeout = 100 * time.Millisecond
			plan.Interact = tt.interact

			_, err := NewAutomation(tt.launcher, nil).Capture(context.Background(), plan)
			if code := errors.GetCode(err); code != tt.want {
				t.Fatalf("code = %s, want %s (err %v)", code, tt.want, err)
			}
			if tt.launcher.Launches() != tt.launcher.Closes() {
				t.Errorf("launches=%d closes=%d", tt.launcher.Launches(), tt.launcher.Closes())
			}
		})
	}
}

func TestCaptureLaunchFailure(t *testing.T) {
	l := &browsertest.Launcher{LaunchErr: stderrors.New("chrome not found")}
	_, err := NewAutomation(l, nil).Capture(context.Background(), testPlan())
	if !errors.Is(err, errors.ErrCodeUpstream) {
		t.Errorf("err = %v, want UPSTREAM", err)
	}
	if l.Closes() != 0 {
		t.Errorf("closes = %d, want 0", l.Closes())
	}
}

func TestCaptureEmitsBrowserHooks(t *testing.T) {
	counters := observability.NewCounters()
	observability.SetAll(counters)
	defer observability.Reset()

	l := &browsertest.Launcher{Silent: true}
	_, _ = NewAutomation(l, nil).Capture(context.Background(), testPlan())

	s := counters.Snapshot()
	if s.SessionsOpened != 1 || s.SessionsClosed != 1 {
		t.Errorf("opened=%d closed=%d", s.SessionsOpened, s.SessionsClosed)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseAwaitingResponse.String() != "awaiting_response" {
		t.Errorf("String() = %q", PhaseAwaitingResponse.String())
	}
	if Phase(99).String() != "unknown" {
		t.Errorf("String() = %q", Phase(99).String())
	}
}
