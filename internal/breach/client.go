// Package breach checks passwords against a k-anonymity range-query service
// such as Have I Been Pwned. Only the first five hex characters of the SHA-1
// digest ever leave the process.
package breach

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Pwned Passwords range API.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// maxResponseBytes bounds the range response. Padded responses are a few
// hundred KB at most.
const maxResponseBytes = 1 << 20

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Padding   bool
	UserAgent string

	// RPS and Burst throttle calls to the upstream API. RPS <= 0 disables it.
	RPS   float64
	Burst int
}

// DefaultConfig returns the settings used against the public API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   5 * time.Second,
		Padding:   true,
		UserAgent: "passforge",
		RPS:       10,
		Burst:     20,
	}
}

// Client queries the range API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	padding    bool
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Client with a dedicated transport.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		padding:    cfg.Padding,
		userAgent:  cfg.UserAgent,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     logger,
	}

	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}

	return c
}

func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}

// Check reports whether password appears in the breach corpus.
//
// Check never fails: transport, status and parse errors are logged and
// reported as StatusUnknown so callers can degrade gracefully.
func (c *Client) Check(ctx context.Context, password string) Result {
	prefix, suffix := HashParts(password)

	count, err := c.lookup(ctx, prefix, suffix)
	if err != nil {
		c.logger.Warn("breach lookup failed", "prefix", prefix, "error", err)
		return Unknown()
	}

	if count > 0 {
		return Breached(count)
	}
	return Clean()
}

func (c *Client) lookup(ctx context.Context, prefix, suffix string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("wait for upstream budget: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/range/"+prefix, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if c.padding {
		req.Header.Set("Add-Padding", "true")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	count, err := ParseRange(io.LimitReader(resp.Body, maxResponseBytes), suffix)
	if err != nil {
		return 0, fmt.Errorf("parse range response: %w", err)
	}
	return count, nil
}
