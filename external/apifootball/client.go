package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rbarros/matchday/internal/platform/logging"
	"github.com/rbarros/matchday/internal/platform/resilience"
	"github.com/rbarros/matchday/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultHost    = "v3.football.api-sports.io"
	maxBodyBytes   = 6 << 20
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 REST API and implements
// usecase.SportDataProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchTeamFixtures(ctx context.Context, teamID, leagueID int64, season int) ([]usecase.ExternalFixture, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team id must be greater than zero")
	}
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}
	if season <= 0 {
		return nil, fmt.Errorf("season must be greater than zero")
	}

	query := map[string]string{
		"team":   strconv.FormatInt(teamID, 10),
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}

	var env envelope[fixtureItem]
	if err := c.doJSON(ctx, "/fixtures", query, &env); err != nil {
		return nil, fmt.Errorf("fetch fixtures team=%d league=%d season=%d: %w", teamID, leagueID, season, err)
	}

	out := make([]usecase.ExternalFixture, 0, len(env.Response))
	for _, item := range env.Response {
		if item.Fixture.ID <= 0 {
			continue
		}
		out = append(out, normalizeFixture(item))
	}

	return out, nil
}

func (c *Client) FetchFixtureByID(ctx context.Context, fixtureID int64) (usecase.ExternalFixture, bool, error) {
	if fixtureID <= 0 {
		return usecase.ExternalFixture{}, false, fmt.Errorf("fixture id must be greater than zero")
	}

	var env envelope[fixtureItem]
	if err := c.doJSON(ctx, "/fixtures", map[string]string{"id": strconv.FormatInt(fixtureID, 10)}, &env); err != nil {
		return usecase.ExternalFixture{}, false, fmt.Errorf("fetch fixture id=%d: %w", fixtureID, err)
	}
	if len(env.Response) == 0 {
		return usecase.ExternalFixture{}, false, nil
	}

	return normalizeFixture(env.Response[0]), true, nil
}

func (c *Client) SearchTeams(ctx context.Context, name, country string) ([]usecase.ExternalTeam, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}

	query := map[string]string{"name": name}
	if country = strings.TrimSpace(country); country != "" {
		query["country"] = country
	}

	var env envelope[teamItem]
	if err := c.doJSON(ctx, "/teams", query, &env); err != nil {
		return nil, fmt.Errorf("search teams name=%q: %w", name, err)
	}

	out := make([]usecase.ExternalTeam, 0, len(env.Response))
	for _, item := range env.Response {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, normalizeTeam(item))
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target interface{ remoteErrors() []string }) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errAPIFootballTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	// Rate-limit and auth failures arrive as HTTP 200 with a populated errors
	// field, so they are checked after decoding.
	if remote := target.remoteErrors(); len(remote) > 0 {
		return fmt.Errorf("provider reported errors: %s", strings.Join(remote, "; "))
	}

	return nil
}

func (e *envelope[T]) remoteErrors() []string { return e.Errors }

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", defaultHost)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errAPIFootballTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
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

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return body
}
