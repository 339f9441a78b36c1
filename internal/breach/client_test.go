package breach

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// SHA-1("password") = 5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8
const (
	knownPassword = "password"
	knownPrefix   = "5BAA6"
	knownSuffix   = "1E4C9B93F3F0682250B6CF8331B7EE68FD8"
)

func rangeBody(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

func newTestClient(t *testing.T, baseURL string, mutate func(*Config)) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	cfg.RPS = 0
	if mutate != nil {
		mutate(&cfg)
	}
	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCheckBreached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/range/"+knownPrefix {
			t.Errorf("path = %q, want /range/%s", r.URL.Path, knownPrefix)
		}
		if got := r.Header.Get("Add-Padding"); got != "true" {
			t.Errorf("Add-Padding = %q, want true", got)
		}
		if got := r.Header.Get("User-Agent"); got != "passforge" {
			t.Errorf("User-Agent = %q, want passforge", got)
		}
		fmt.Fprint(w, rangeBody(
			"003D68EB55068C33ACE09247EE4C639306B:3",
			knownSuffix+":9659365",
			"01330C689E5D64F660D6947A93AD634EF8F:0",
		))
	}))
	defer srv.Close()

	got := newTestClient(t, srv.URL, nil).Check(context.Background(), knownPassword)

	if got.Status != StatusBreached {
		t.Fatalf("Status = %v, want breached", got.Status)
	}
	if got.Count != 9659365 {
		t.Errorf("Count = %d, want 9659365", got.Count)
	}
	if b := got.Breached(); b == nil || !*b {
		t.Errorf("Breached() = %v, want true", b)
	}
	if !strings.Contains(got.Message, "9659365 times") {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestCheckClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rangeBody(
			"003D68EB55068C33ACE09247EE4C639306B:3",
			"01330C689E5D64F660D6947A93AD634EF8F:0",
		))
	}))
	defer srv.Close()

	got := newTestClient(t, srv.URL, nil).Check(context.Background(), "uR7#qL9!vX2@mZ5$kP8%")

	if got.Status != StatusClean {
		t.Fatalf("Status = %v, want clean", got.Status)
	}
	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
	if b := got.Breached(); b == nil || *b {
		t.Errorf("Breached() = %v, want false", b)
	}
}

func TestCheckPaddingRecordIsClean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rangeBody(knownSuffix+":0"))
	}))
	defer srv.Close()

	got := newTestClient(t, srv.URL, nil).Check(context.Background(), knownPassword)
	if got.Status != StatusClean {
		t.Errorf("Status = %v, want clean", got.Status)
	}
}

func TestCheckPaddingDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Add-Padding"); got != "" {
			t.Errorf("Add-Padding = %q, want empty", got)
		}
	}))
	defer srv.Close()

	got := newTestClient(t, srv.URL, func(c *Config) { c.Padding = false }).Check(context.Background(), knownPassword)
	if got.Status != StatusClean {
		t.Errorf("Status = %v, want clean", got.Status)
	}
}

func TestCheckUnknown(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "too many requests",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed record",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not-a-record\n"+knownSuffix+":12")
			},
		},
		{
			name: "malformed count on match",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, knownSuffix+":lots")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got := newTestClient(t, srv.URL, nil).Check(context.Background(), knownPassword)
			if got.Status != StatusUnknown {
				t.Fatalf("Status = %v, want unknown", got.Status)
			}
			if got.Breached() != nil {
				t.Error("Breached() should be nil for unknown")
			}
			if got.Count != 0 {
				t.Errorf("Count = %d, want 0", got.Count)
			}
		})
	}
}

func TestCheckTimeoutIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) { c.Timeout = 50 * time.Millisecond })

	start := time.Now()
	got := client.Check(context.Background(), knownPassword)
	if got.Status != StatusUnknown {
		t.Fatalf("Status = %v, want unknown", got.Status)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Check took %v, timeout not applied", elapsed)
	}
}

func TestCheckUnreachableIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got := newTestClient(t, url, nil).Check(context.Background(), knownPassword)
	if got.Status != StatusUnknown {
		t.Errorf("Status = %v, want unknown", got.Status)
	}
}

func TestCheckCancelledContextIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, knownSuffix+":1")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := newTestClient(t, srv.URL, nil).Check(ctx, knownPassword)
	if got.Status != StatusUnknown {
		t.Errorf("Status = %v, want unknown", got.Status)
	}
}

func TestCheckUpstreamBudget(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, knownSuffix+":1")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) {
		c.RPS = 0.001
		c.Burst = 1
		c.Timeout = 100 * time.Millisecond
	})

	if got := client.Check(context.Background(), knownPassword); got.Status != StatusBreached {
		t.Fatalf("first Status = %v, want breached", got.Status)
	}
	if got := client.Check(context.Background(), knownPassword); got.Status != StatusUnknown {
		t.Fatalf("second Status = %v, want unknown", got.Status)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("upstream hits = %d, want 1", n)
	}
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://example.test/"}, nil)
	if c.baseURL != "https://example.test" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.timeout != DefaultConfig().Timeout {
		t.Errorf("timeout = %v, want default", c.timeout)
	}
	if c.limiter != nil {
		t.Error("limiter should be nil when RPS is zero")
	}
}
