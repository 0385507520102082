// Package pokeapi resolves creature names against the public PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Iron-Ham/teambuilder/internal/errors"
	"github.com/Iron-Ham/teambuilder/internal/logging"
	"github.com/Iron-Ham/teambuilder/internal/roster"
)

const (
	// DefaultBaseURL is the PokeAPI v2 root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// defaultTimeout is the per-request timeout.
	defaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of a response is read. Full pokemon
	// payloads are a few hundred KB.
	maxBodyBytes = 8 << 20
)

// Client resolves a creature name to a record.
type Client interface {
	Lookup(ctx context.Context, name string) (roster.Creature, error)
}

var _ roster.Lookup = (*HTTPClient)(nil)

// HTTPClient implements Client over HTTP. Concurrent lookups for the same
// normalized name share a single request. Nothing is cached.
type HTTPClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logging.Logger
	group      singleflight.Group
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithBaseURL overrides the API root (tests point this at httptest servers).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *HTTPClient) {
		c.userAgent = ua
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// NewHTTPClient creates a client for the public PokeAPI.
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:    DefaultBaseURL,
		userAgent:  "teambuilder",
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("pokeapi")
	return c
}

// Normalize trims and lower-cases a creature name the way the API expects.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// pokemonResponse is the subset of GET /pokemon/{name} that we use.
type pokemonResponse struct {
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Lookup fetches the creature called name. Every failure (non-200 status,
// transport error, malformed payload) is returned as an *errors.LookupError,
// which matches errors.ErrNotFound. There are no retries.
func (c *HTTPClient) Lookup(ctx context.Context, name string) (roster.Creature, error) {
	key := Normalize(name)
	if key == "" {
		return roster.Creature{}, errors.NewLookupError(key, errors.ErrEmptyInput)
	}

	ch := c.group.DoChan(key, func() (any, error) {
		return c.fetch(ctx, key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return roster.Creature{}, res.Err
		}
		creature := res.Val.(roster.Creature)
		if res.Shared {
			creature.Types = append([]string(nil), creature.Types...)
		}
		return creature, nil
	case <-ctx.Done():
		return roster.Creature{}, errors.NewLookupError(key, ctx.Err())
	}
}

func (c *HTTPClient) fetch(ctx context.Context, key string) (roster.Creature, error) {
	endpoint := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(key))
	start := time.Now()
	c.logger.Debug("fetching creature", "name", key, "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return roster.Creature{}, errors.NewLookupError(key, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("lookup request failed", "name", key, "error", err.Error())
		return roster.Creature{}, errors.NewLookupError(key, fmt.Errorf("send request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.logger.Debug("lookup rejected", "name", key, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
		return roster.Creature{}, errors.NewLookupError(key, nil).WithStatusCode(resp.StatusCode)
	}

	var payload pokemonResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		c.logger.Warn("lookup payload unreadable", "name", key, "error", err.Error())
		return roster.Creature{}, errors.NewLookupError(key, fmt.Errorf("decode response: %w", err)).WithStatusCode(resp.StatusCode)
	}
	if payload.Name == "" {
		return roster.Creature{}, errors.NewLookupError(key, fmt.Errorf("response has no name")).WithStatusCode(resp.StatusCode)
	}

	creature := roster.Creature{
		Name:      payload.Name,
		SpriteURL: payload.Sprites.FrontDefault,
		Types:     make([]string, 0, len(payload.Types)),
	}
	for _, t := range payload.Types {
		creature.Types = append(creature.Types, t.Type.Name)
	}

	c.logger.Debug("creature fetched",
		"name", creature.Name,
		"types", strings.Join(creature.Types, ","),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return creature, nil
}
