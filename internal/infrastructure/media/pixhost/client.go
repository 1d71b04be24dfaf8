package pixhost

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/matchdayhq/leaguedesk/internal/platform/logging"
	"github.com/matchdayhq/leaguedesk/internal/platform/resilience"
)

const (
	defaultBaseURL   = "https://api.pixhost.example.com/v1"
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 1 << 20
	maxUploadBytes   = 8 << 20
	uploadFieldName  = "img"
)

var errPixhostTransient = crerr.New("pixhost transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client uploads team logos and player photos to the image host. It
// implements the usecase.ImageStore contract.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	apiKey         string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (c *Client) Store(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("image data is empty")
	}
	if len(data) > maxUploadBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxUploadBytes)
	}

	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)

	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile(uploadFieldName, sanitizeName(name))
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart body: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	raw, err := c.do(ctx, fasthttp.MethodPost, c.baseURL+"/images", form.FormDataContentType(), body.Bytes())
	if err != nil {
		return "", err
	}

	var decoded uploadResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if strings.TrimSpace(decoded.URL) == "" {
		return "", fmt.Errorf("upload response has no url")
	}

	return decoded.URL, nil
}

func (c *Client) Delete(ctx context.Context, imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil
	}

	target := c.baseURL + "/images?url=" + url.QueryEscape(imageURL)
	if _, err := c.do(ctx, fasthttp.MethodDelete, target, "", nil); err != nil {
		return err
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, fullURL, contentType string, body []byte) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "pixhost circuit breaker rejected request", "state", string(c.breaker.State()))
			return nil, fmt.Errorf("image host is temporarily unavailable: %w", err)
		}
	}

	raw, err := c.executeRequest(ctx, method, fullURL, contentType, body)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errPixhostTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL, contentType string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		raw, retryable, err := c.once(method, fullURL, contentType, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "pixhost request failed", "method", method, "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) once(method, fullURL, contentType string, body []byte) ([]byte, bool, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.apiKey != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+c.apiKey)
	}
	if contentType != "" {
		req.Header.SetContentType(contentType)
	}
	if len(body) > 0 {
		req.SetBody(body)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, true, crerr.Wrapf(errPixhostTransient, "send request: %v", err)
	}

	status := resp.StatusCode()
	raw := append([]byte(nil), resp.Body()...)
	if len(raw) > maxResponseBytes {
		raw = raw[:maxResponseBytes]
	}

	switch {
	case status >= 200 && status < 300:
		return raw, false, nil
	case isRetryableStatus(status):
		return nil, true, crerr.Wrapf(errPixhostTransient, "host status=%d body=%s", status, abbreviateBody(raw))
	default:
		return nil, false, fmt.Errorf("host status=%d body=%s", status, abbreviateBody(raw))
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "upload"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "...(truncated)"
	}
	return body
}
