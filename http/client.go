package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	cybersource "github.com/paymentlabs/cybersource-go"
	"github.com/paymentlabs/cybersource-go/retry"
)

// Client is the HTTP client for the CyberSource REST API. It wraps a
// standard http.Client whose transport signs every outbound request, decodes
// non-2xx responses into *cybersource.GatewayError, and retries transient
// failures with exponential backoff.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	logger      *zap.Logger
	retryConfig retry.Config
	auth        Authenticator
}

// Option configures a Client.
type Option func(*Client) error

// NewClient creates a client for the configured merchant and environment.
// The authentication scheme follows cfg.AuthType: HMAC HTTP signatures by
// default, RS256 bearer tokens when AuthTypeJWT is selected.
//
// Example:
//
//	client, err := cshttp.NewClient(cybersource.Config{
//	    MerchantID:  "my_merchant",
//	    KeyID:       "08c94330-f618-42a3-b09d-e1e43be5efda",
//	    SecretKey:   "DRgl8dnQ2qzSzFnV+2adhmO7RsSW12Vi7TBqzOSbAMI=",
//	    Environment: cybersource.EnvironmentSandbox,
//	})
func NewClient(cfg cybersource.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	host, err := cfg.Host()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:     "https://" + host,
		logger:      zap.NewNop(),
		retryConfig: retry.DefaultConfig,
	}

	switch cfg.AuthType {
	case cybersource.AuthTypeJWT:
		auth, err := NewJWTAuthenticator(cfg)
		if err != nil {
			return nil, err
		}
		c.auth = auth
	default:
		c.auth = NewSignatureAuthenticator(cfg)
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.HTTPTimeout()}
	}
	c.httpClient.Transport = &SigningTransport{
		Base:          c.httpClient.Transport,
		Authenticator: c.auth,
		Logger:        c.logger,
	}

	return c, nil
}

// WithHTTPClient sets a custom underlying HTTP client. Its transport is
// wrapped by the SigningTransport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

// WithLogger sets the structured logger for request logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithRetry overrides the retry policy for transient failures.
func WithRetry(config retry.Config) Option {
	return func(c *Client) error {
		c.retryConfig = config
		return nil
	}
}

// WithBaseURL overrides the environment-derived base URL. Intended for
// gateway emulators and tests.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if !strings.Contains(raw, "://") {
			return fmt.Errorf("base URL missing scheme: %q", raw)
		}
		c.baseURL = strings.TrimSuffix(raw, "/")
		return nil
	}
}

// WithAuthenticator replaces the config-derived authenticator.
func WithAuthenticator(auth Authenticator) Option {
	return func(c *Client) error {
		c.auth = auth
		return nil
	}
}

// Do executes an API call and decodes the JSON response into result.
// body is marshaled to JSON when non-nil; result may be nil when no response
// payload is expected. Transient gateway failures (429, 5xx) are retried per
// the client's retry policy; signing failures are not, since the same input
// fails the same way.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	_, err := retry.Do(ctx, c.retryConfig, retryableGatewayError,
		func() (struct{}, error) {
			return struct{}{}, c.do(ctx, method, path, payload, result)
		})
	return err
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	return c.Do(ctx, http.MethodGet, path, nil, result)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, result)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, body, result)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.Do(ctx, http.MethodPatch, path, body, result)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// do executes a single attempt.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, result any) error {
	var reader io.Reader
	if len(payload) > 0 {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Info("gateway call",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyError(resp, req.Method, path)
	}

	if result != nil {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, result); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
	}

	return nil
}

// classifyError builds a GatewayError from a non-2xx response.
func classifyError(resp *http.Response, method, path string) error {
	gwErr := &cybersource.GatewayError{
		StatusCode:    resp.StatusCode,
		CorrelationID: resp.Header.Get(HeaderCorrelationID),
		Method:        method,
		Path:          path,
	}
	gwErr.ErrorType, gwErr.Retryable = cybersource.ClassifyStatus(resp.StatusCode)

	data, _ := io.ReadAll(resp.Body)
	var body cybersource.ErrorResponse
	if json.Unmarshal(data, &body) == nil {
		gwErr.Reason = body.Reason
		gwErr.Message = body.Message
	}
	if gwErr.Message == "" && len(data) > 0 {
		gwErr.Message = string(data)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			gwErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return gwErr
}

// retryableGatewayError reports whether an error is a retryable gateway
// failure. Anything that is not a GatewayError (signing failures, transport
// errors surfaced by the RoundTripper, decode errors) is terminal.
func retryableGatewayError(err error) bool {
	var gwErr *cybersource.GatewayError
	if !errors.As(err, &gwErr) {
		return false
	}
	return gwErr.Retryable
}
