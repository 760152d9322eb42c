package unsplash

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"time"

	// Thumbnail formats served by the CDN.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/snapsphere/internal/photo"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
	maxImageBytes  = 16 << 20
)

// ErrMissingAccessKey is returned by New when no access key is configured.
var ErrMissingAccessKey = errors.New("unsplash access key is required")

// Client fetches photo listings and thumbnails.
type Client struct {
	http      *http.Client
	baseURL   string
	accessKey string
	timeout   time.Duration
	log       logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for the given access key.
func New(accessKey string, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   DefaultBaseURL,
		accessKey: accessKey,
		log:       discard,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Copy so a caller-supplied client is not mutated.
	hc := *c.http
	hc.Transport = loggingTransport{base: hc.Transport, log: c.log}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.http = &hc

	return c, nil
}

// URL returns the endpoint that Photos would call for term.
func (c *Client) URL(term string) string {
	return BuildURL(c.baseURL, c.accessKey, term)
}

// Photos fetches the default listing (empty term) or search results.
// Every failure is returned as a *FetchError.
func (c *Client) Photos(ctx context.Context, term string) ([]photo.Photo, error) {
	endpoint := c.URL(term)
	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"term":       term,
	})
	log.Debug("fetching photos")

	body, err := c.get(ctx, endpoint, maxBodyBytes)
	if err != nil {
		log.WithError(err).Debug("fetch failed")
		return nil, err
	}

	photos, err := photo.Decode(body)
	if err != nil {
		ferr := &FetchError{URL: c.redacted(endpoint), Err: err}
		log.WithError(ferr).Debug("decode failed")
		return nil, ferr
	}

	log.WithField("count", len(photos)).Debug("fetched photos")
	return photos, nil
}

// Image downloads and decodes a thumbnail.
func (c *Client) Image(ctx context.Context, imageURL string) (image.Image, error) {
	body, err := c.get(ctx, imageURL, maxImageBytes)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: c.redacted(imageURL), Err: fmt.Errorf("decoding image: %w", err)}
	}
	return img, nil
}

func (c *Client) get(ctx context.Context, endpoint string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: c.redacted(endpoint), Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.redacted(endpoint), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: c.redacted(endpoint), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, &FetchError{URL: c.redacted(endpoint), StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

func (c *Client) redacted(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return redactURL(u)
}
