package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aadhaar-sanket/sanket/internal/errors"
	"github.com/aadhaar-sanket/sanket/internal/insights"
)

// insightsLoadedMsg carries the payload of a successful fetch
type insightsLoadedMsg struct {
	payload *insights.Payload
}

// insightsFailedMsg carries the error of a failed fetch
type insightsFailedMsg struct {
	err error
}

// Commands

// fetchInsights issues the single insights request. ctx is the model's
// lifecycle context; a positive timeout bounds the request and an expiry
// is reported as an *errors.TimeoutError wrapping the fetch error.
func fetchInsights(ctx context.Context, f Fetcher, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		fetchCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		payload, err := f.Fetch(fetchCtx)
		if err != nil {
			if timeout > 0 && ctx.Err() == nil && errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
				err = errors.NewTimeoutError("fetching insights", timeout).WithCause(err)
			}
			return insightsFailedMsg{err: err}
		}
		if payload == nil {
			payload = &insights.Payload{}
		}
		return insightsLoadedMsg{payload: payload}
	}
}
