package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

// Client fetches typed payloads from the ESPN site and core APIs.
// The zero value is not usable; construct with NewClient.
type Client struct {
	httpClient  *http.Client
	siteBaseURL string
	coreBaseURL string
	proxyPrefix string
	logger      *slog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient replaces the default 30s-timeout client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSiteBaseURL overrides the site API base, mainly for tests.
func WithSiteBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.siteBaseURL = base
	}
}

// WithCoreBaseURL overrides the core API base, mainly for tests.
func WithCoreBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.coreBaseURL = base
	}
}

// WithProxyPrefix enables proxy mode: core API reference URLs are rewritten
// to {prefix}/... before fetching, so a same-origin proxy handles CORS.
func WithProxyPrefix(prefix string) ClientOption {
	return func(c *Client) {
		c.proxyPrefix = prefix
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		siteBaseURL: SiteBaseURL,
		coreBaseURL: CoreBaseURL,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CoreAPIBase exposes the configured core API base, so the web layer's
// same-origin proxy targets the same host as the client.
func (c *Client) CoreAPIBase() string {
	return c.coreBaseURL
}

func (c *Client) siteURL(league League, path string) string {
	return fmt.Sprintf("%s/%s%s", c.siteBaseURL, league, path)
}

// getJSON performs one GET and decodes the body into v. Non-2xx responses
// become *FetchError; undecodable bodies become *ParseError.
func (c *Client) getJSON(ctx context.Context, domain, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Domain: domain, URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Domain: domain, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn("espn request failed", "domain", domain, "url", url, "status", resp.StatusCode)
		return &FetchError{Domain: domain, URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Domain: domain, URL: url, Err: err}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Domain: domain, Err: err}
	}
	return nil
}

// Scoreboard fetches the current scoreboard for a league.
func (c *Client) Scoreboard(ctx context.Context, league League) (*Scoreboard, error) {
	var sb Scoreboard
	url := c.siteURL(league, ScoreboardEndpoint)
	if err := c.getJSON(ctx, "scoreboard", url, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// ScoreboardByWeek fetches the scoreboard for a specific season week.
func (c *Client) ScoreboardByWeek(ctx context.Context, league League, year, seasonType, week int) (*Scoreboard, error) {
	var sb Scoreboard
	url := fmt.Sprintf("%s?seasontype=%d&week=%d&dates=%d",
		c.siteURL(league, ScoreboardEndpoint), seasonType, week, year)
	if err := c.getJSON(ctx, "scoreboard", url, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// GameSummary fetches the full summary document for one game.
func (c *Client) GameSummary(ctx context.Context, league League, gameID string) (*GameSummary, error) {
	var summary GameSummary
	url := fmt.Sprintf("%s?event=%s", c.siteURL(league, SummaryEndpoint), gameID)
	if err := c.getJSON(ctx, "summary", url, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// PlayByPlay fetches the play listing for a game from the core API.
func (c *Client) PlayByPlay(ctx context.Context, league League, gameID string) (*PlayByPlayResponse, error) {
	var pbp PlayByPlayResponse
	url := c.coreBaseURL + fmt.Sprintf(playsPathTemplate, league, gameID, gameID, PlayByPlayLimit)
	if err := c.getJSON(ctx, "play-by-play", url, &pbp); err != nil {
		return nil, err
	}
	return &pbp, nil
}

// AllTeams fetches every team in a league, unwrapped from the nested list
// envelope and sorted by display name.
func (c *Client) AllTeams(ctx context.Context, league League) ([]TeamDetail, error) {
	var list TeamListResponse
	url := fmt.Sprintf("%s?limit=%d", c.siteURL(league, TeamsEndpoint), league.TeamsLimit())
	if err := c.getJSON(ctx, "teams", url, &list); err != nil {
		return nil, err
	}

	var teams []TeamDetail
	for _, sport := range list.Sports {
		for _, lg := range sport.Leagues {
			for _, entry := range lg.Teams {
				teams = append(teams, entry.Team)
			}
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].DisplayName < teams[j].DisplayName
	})
	return teams, nil
}

// TeamInfo fetches one team's detail record. A response without a team
// payload for the ID yields ErrTeamNotFound.
func (c *Client) TeamInfo(ctx context.Context, league League, teamID string) (*TeamDetail, error) {
	var resp TeamInfoResponse
	url := fmt.Sprintf("%s/%s", c.siteURL(league, TeamsEndpoint), teamID)
	if err := c.getJSON(ctx, "team", url, &resp); err != nil {
		return nil, err
	}
	if resp.Team.ID == "" {
		return nil, fmt.Errorf("team %s in %s: %w", teamID, league, ErrTeamNotFound)
	}
	return &resp.Team, nil
}

// Roster fetches a team's position-grouped roster.
func (c *Client) Roster(ctx context.Context, league League, teamID string) (*Roster, error) {
	var roster Roster
	url := fmt.Sprintf("%s/%s/roster", c.siteURL(league, TeamsEndpoint), teamID)
	if err := c.getJSON(ctx, "roster", url, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

// News fetches the league's headline feed.
func (c *Client) News(ctx context.Context, league League) (*NewsResponse, error) {
	var news NewsResponse
	url := c.siteURL(league, NewsEndpoint)
	if err := c.getJSON(ctx, "news", url, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// Rankings fetches poll rankings; only meaningful for college football.
func (c *Client) Rankings(ctx context.Context, league League) (*RankingsResponse, error) {
	var rankings RankingsResponse
	url := c.siteURL(league, RankingsEndpoint)
	if err := c.getJSON(ctx, "rankings", url, &rankings); err != nil {
		return nil, err
	}
	return &rankings, nil
}
