package network

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/muurk/servdash/internal/config"
	"github.com/muurk/servdash/internal/logging"
	"github.com/muurk/servdash/internal/models"
	"github.com/muurk/servdash/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	// DefaultCacheDuration is how long lookup and credit responses are reused
	DefaultCacheDuration = 5 * time.Minute

	// DefaultRequestsPerSecond caps the request rate against one server
	DefaultRequestsPerSecond = 20

	apiKeyHeader = "X-Api-Key"
)

// Client talks to a single Radarr, Sonarr or Lidarr server.
type Client struct {
	// Name is the server name from the configuration file
	Name string

	// Backend is the kind of server
	Backend models.Backend

	// BaseURL is the API root (e.g., "http://localhost:7878/api/v3")
	BaseURL string

	// APIToken is sent in the X-Api-Key header
	APIToken string

	// Headers are extra headers sent with every request
	Headers map[string]string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	limiter *rate.Limiter
	cache   *cache.Cache
}

// NewClient creates a client for one configured server.
func NewClient(backend models.Backend, server config.ServarrConfig, prefs config.Preferences) (*Client, error) {
	timeout := prefs.RequestTimeout()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rps := prefs.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	httpClient := &http.Client{Timeout: timeout}
	if server.SSLCertPath != "" {
		tlsConfig, err := loadTLSConfig(server.SSLCertPath)
		if err != nil {
			return nil, fmt.Errorf("server %q: %w", server.Name, err)
		}
		httpClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: tlsConfig,
		}
	}

	return &Client{
		Name:       server.Name,
		Backend:    backend,
		BaseURL:    server.BaseURL(backend),
		APIToken:   server.APIToken,
		Headers:    server.CustomHeaders,
		HTTPClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps*2)),
		cache:      cache.New(DefaultCacheDuration, 2*DefaultCacheDuration),
	}, nil
}

// loadTLSConfig trusts the certificate at path in addition to the system pool.
func loadTLSConfig(path string) (*tls.Config, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ssl_cert_path: %w", err)
	}
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}

// Do performs a request and decodes the response. The returned value is
// nil for requests whose response body is ignored.
func (c *Client) Do(ctx context.Context, req Request) (any, error) {
	res, err := Resolve(req)
	if err != nil {
		return nil, err
	}

	target := c.BaseURL + res.Path
	if len(res.Query) > 0 {
		target += "?" + res.Query.Encode()
	}

	cacheKey := res.Method + " " + target
	if res.Cacheable {
		if v, ok := c.cache.Get(cacheKey); ok {
			logging.Debug("Serving cached response", zap.String("url", target))
			return v, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewNetworkError(c.Name, err)
	}

	var body io.Reader
	if res.Body != nil {
		data, err := encodeBody(res.Body)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("failed to encode request body: %v", err))
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, res.Method, target, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("failed to create request: %v", err))
	}
	c.setHeaders(httpReq, res.Body != nil)

	requestID := uuid.NewString()
	logging.LogHTTPRequest(requestID, c.Name, res.Method, target)
	start := time.Now()

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logging.Error("Request failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, NewNetworkError(c.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(c.Name, err)
	}
	logging.LogHTTPResponse(requestID, resp.StatusCode, time.Since(start))

	if !res.IgnoreStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, NewHTTPError(c.Name, resp.StatusCode, string(data))
	}
	if res.Method != http.MethodGet {
		// Cached lookups may list items the mutation just added.
		c.InvalidateCache()
	}

	if res.Decode == nil {
		return nil, nil
	}
	value, err := res.Decode(data)
	if err != nil {
		return nil, NewParseError(c.Name, "failed to parse response body", err)
	}

	if res.Cacheable {
		c.cache.SetDefault(cacheKey, value)
	}
	return value, nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set(apiKeyHeader, c.APIToken)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}
}

// encodeBody marshals a request body. Raw JSON documents are sent as-is.
func encodeBody(body any) ([]byte, error) {
	if raw, ok := body.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(body)
}

// InvalidateCache drops every cached response. Do calls it after every
// successful mutation.
func (c *Client) InvalidateCache() {
	c.cache.Flush()
}
