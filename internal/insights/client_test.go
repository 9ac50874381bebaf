package insights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadhaar-sanket/sanket/internal/errors"
)

func newInsightsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != Path || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewClient_URL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://127.0.0.1:8000", "http://127.0.0.1:8000/api/insights"},
		{"http://127.0.0.1:8000///", "http://127.0.0.1:8000/api/insights"},
		{"https://host/prefix//", "https://host/prefix/api/insights"},
		{"http://h:8000?x=1", "http://h:8000/api/insights"},
		{"http://h:8000/v1/?x=1#top", "http://h:8000/v1/api/insights"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, NewClient(tt.base).URL())
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	srv, hits := newInsightsServer(t, http.StatusOK, samplePayload)

	p, err := NewClient(srv.URL + "/").Fetch(context.Background())
	require.NoError(t, err)

	i1, i2, i3 := p.Rows()
	assert.Equal(t, []int{2, 1, 3}, []int{i1, i2, i3})
	assert.Equal(t, int32(1), hits.Load(), "exactly one request")
}

func TestClient_Fetch_NoQueryOrBody(t *testing.T) {
	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	got := <-requests
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Empty(t, got.URL.RawQuery)
	assert.Empty(t, got.Header.Get("Authorization"))
	assert.Zero(t, got.ContentLength)
}

func TestClient_Fetch_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		strict     bool
		wantStage  errors.Stage
		wantStatus int
		wantIs     error
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`, false, errors.StageStatus, 500, errors.ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, `{}`, false, errors.StageStatus, 404, errors.ErrUnexpectedStatus},
		{"malformed json", http.StatusOK, `{"insight1":`, false, errors.StageDecode, 200, errors.ErrMalformedPayload},
		{"strict violation", http.StatusOK, `{"insight1":[{"admin_pulse":1}]}`, true, errors.StageValidate, 200, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newInsightsServer(t, tt.status, tt.body)

			_, err := NewClient(srv.URL, WithStrictSchema(tt.strict)).Fetch(context.Background())
			require.Error(t, err)

			var fetchErr *errors.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.wantStage, fetchErr.Stage)
			assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
			assert.Equal(t, srv.URL+Path, fetchErr.URL)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestClient_Fetch_Transport(t *testing.T) {
	srv, _ := newInsightsServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.StageTransport, errors.FetchStage(err))
	assert.ErrorIs(t, err, errors.ErrTransport)
	assert.True(t, errors.IsRetryable(err))
}

func TestClient_Fetch_ContextEndings(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := NewClient(srv.URL).Fetch(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTimeout)
		assert.Equal(t, errors.StageTransport, errors.FetchStage(err))
		assert.Equal(t, errors.SeverityError, errors.GetSeverity(err))
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err := NewClient(srv.URL).Fetch(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrCanceled)
		assert.Equal(t, errors.SeverityInfo, errors.GetSeverity(err))
	})
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := NewClient("http://x", WithHTTPClient(hc), WithHTTPClient(nil))
	assert.Same(t, hc, c.httpClient)
}
