// Package ironic wraps the OpenStack Ironic baremetal API for the
// facade. The client only implements the connectivity probe today; the
// node operations are declared stubs.
package ironic

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/metalops/ironic-aio/internal/config"
	"github.com/metalops/ironic-aio/internal/metrics"
)

// MicroversionHeader carries the negotiated API revision on every call.
const MicroversionHeader = "X-OpenStack-Ironic-API-Version"

// Connection describes an established noauth connection to Ironic.
type Connection struct {
	Endpoint   string
	APIVersion string
}

// Client talks to the Ironic API using the settings snapshot it was
// constructed with. Safe for concurrent use.
type Client struct {
	settings config.Settings
	http     *http.Client
	logger   *slog.Logger
	policies []failsafe.Policy[*Connection]
}

// New creates a client for the given settings. The connect timeout and
// retry budget come from the settings snapshot.
func New(settings config.Settings, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	retry := retrypolicy.NewBuilder[*Connection]().
		WithMaxRetries(settings.ConnectRetries).
		Build()
	to := timeout.New[*Connection](settings.ConnectTimeout)

	return &Client{
		settings: settings,
		http:     newHTTPClient(settings.ConnectTimeout),
		logger:   logger,
		// retry outermost, timeout bounds each attempt
		policies: []failsafe.Policy[*Connection]{retry, to},
	}
}

// newHTTPClient builds a hardened HTTP client: TLS verification on,
// redirect cap, bounded timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
		},
	}
}

// Connect establishes a noauth connection to the Ironic API: one
// lightweight GET against the API root carrying the microversion
// header. Any failure is wrapped in ClientError.
func (c *Client) Connect(ctx context.Context) (*Connection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.settings.IronicAPIURL, nil)
	if err != nil {
		return nil, &ClientError{Op: "build request", Err: err}
	}
	req.Header.Set(MicroversionHeader, c.settings.IronicAPIVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ClientError{Op: "connect", Err: err}
	}
	defer resp.Body.Close()

	// Any answer from the endpoint counts as reachable.
	return &Connection{
		Endpoint:   c.settings.IronicAPIURL,
		APIVersion: c.settings.IronicAPIVersion,
	}, nil
}

// CheckConnectivity reports whether the Ironic API is reachable. All
// failure modes — expected connection errors, timeouts, and anything
// unexpected — are absorbed into false; this never returns an error
// and never panics.
func (c *Client) CheckConnectivity(ctx context.Context) (connected bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("panic during connectivity check", slog.Any("panic", r))
			metrics.ConnectivityFailures.WithLabelValues("unexpected").Inc()
			connected = false
		}
	}()

	start := time.Now()
	_, err := failsafe.With[*Connection](c.policies...).
		WithContext(ctx).
		Get(func() (*Connection, error) { return c.Connect(ctx) })
	metrics.ConnectDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		return true
	}

	var clientErr *ClientError
	switch {
	case errors.As(err, &clientErr), errors.Is(err, timeout.ErrExceeded):
		c.logger.Debug("ironic unreachable",
			slog.String("endpoint", c.settings.IronicAPIURL),
			slog.Any("error", err))
		metrics.ConnectivityFailures.WithLabelValues("expected").Inc()
	default:
		c.logger.Warn("unexpected error during connectivity check",
			slog.String("endpoint", c.settings.IronicAPIURL),
			slog.Any("error", err))
		metrics.ConnectivityFailures.WithLabelValues("unexpected").Inc()
	}
	return false
}

// ListNodes returns all baremetal nodes.
//
// TODO: back this with GET /v1/nodes once node listing lands.
func (c *Client) ListNodes(ctx context.Context) ([]Node, error) {
	return nil, fmt.Errorf("list nodes: %w", ErrNotImplemented)
}

// GetNode returns a node by UUID or name.
//
// TODO: back this with GET /v1/nodes/{ident} once node lookup lands.
func (c *Client) GetNode(ctx context.Context, id string) (*Node, error) {
	return nil, fmt.Errorf("get node %q: %w", id, ErrNotImplemented)
}
