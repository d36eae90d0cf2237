package oddsfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
	"github.com/pickemhq/survivor-pool/internal/platform/resilience"
)

const defaultBaseURL = "https://feed.pickemhq.com/v1"

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errOddsFeedTransient = crerr.New("odds feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches weekly schedules with betting lines from the hosted odds
// feed. It implements schedule.Provider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
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

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type gamePayload struct {
	HomeTeam      string  `json:"homeTeam"`
	AwayTeam      string  `json:"awayTeam"`
	KickoffAt     string  `json:"kickoffAt"`
	HomeSpread    float64 `json:"homeSpread"`
	OverUnder     float64 `json:"overUnder"`
	HomeMoneyline int     `json:"homeMoneyline"`
	AwayMoneyline int     `json:"awayMoneyline"`
	IsComplete    bool    `json:"isComplete"`
	HomeScore     *int    `json:"homeScore,omitempty"`
	AwayScore     *int    `json:"awayScore,omitempty"`
}

type weekEnvelope struct {
	Week     int           `json:"week"`
	Season   int           `json:"season"`
	Games    []gamePayload `json:"games"`
	ByeTeams []string      `json:"byeTeams"`
}

// WeekSchedule implements schedule.Provider against the feed API.
func (c *Client) WeekSchedule(ctx context.Context, sport schedule.Sport, week int) (schedule.Week, error) {
	if week < 1 {
		return schedule.Week{}, fmt.Errorf("week must be at least 1, got %d", week)
	}
	if _, ok := schedule.AllSports[sport]; !ok {
		return schedule.Week{}, fmt.Errorf("unknown sport: %s", sport)
	}

	query := map[string]string{
		"sport": string(sport),
		"week":  strconv.Itoa(week),
	}
	var envelope weekEnvelope
	if err := c.doJSON(ctx, "/schedule", query, &envelope); err != nil {
		return schedule.Week{}, fmt.Errorf("fetch schedule sport=%s week=%d: %w", sport, week, err)
	}

	out := schedule.Week{
		Sport:    sport,
		Number:   week,
		Season:   envelope.Season,
		ByeTeams: make([]string, 0, len(envelope.ByeTeams)),
		Games:    make([]schedule.Game, 0, len(envelope.Games)),
	}
	for _, t := range envelope.ByeTeams {
		out.ByeTeams = append(out.ByeTeams, strings.ToLower(strings.TrimSpace(t)))
	}
	for _, g := range envelope.Games {
		game := schedule.Game{
			HomeTeamID:    strings.ToLower(strings.TrimSpace(g.HomeTeam)),
			AwayTeamID:    strings.ToLower(strings.TrimSpace(g.AwayTeam)),
			HomeSpread:    g.HomeSpread,
			OverUnder:     g.OverUnder,
			HomeMoneyline: g.HomeMoneyline,
			AwayMoneyline: g.AwayMoneyline,
			IsComplete:    g.IsComplete,
			HomeScore:     g.HomeScore,
			AwayScore:     g.AwayScore,
		}
		if g.KickoffAt != "" {
			parsed, err := time.Parse(time.RFC3339, g.KickoffAt)
			if err != nil {
				return schedule.Week{}, crerr.Wrapf(err, "parse kickoff time %q", g.KickoffAt)
			}
			game.KickoffAt = parsed
		}
		if game.HomeTeamID == "" || game.AwayTeamID == "" {
			return schedule.Week{}, crerr.Newf("feed game missing a team: %s@%s", g.AwayTeam, g.HomeTeam)
		}
		out.Games = append(out.Games, game)
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "odds feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("odds feed is temporarily unavailable: %w", err)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errOddsFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errOddsFeedTransient, c.sanitize(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errOddsFeedTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d", errOddsFeedTransient, resp.StatusCode)
			} else {
				return nil, fmt.Errorf("feed status=%d", resp.StatusCode)
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
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "odds feed request failed", "url", c.redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func (c *Client) redactURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "api_key=REDACTED")
}
