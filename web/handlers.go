package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.temporal.io/sdk/client"

	gridiron "gridiron-dashboard"
	"gridiron-dashboard/espn"
)

// Handlers serves the dashboard API: poller-backed scoreboard and news,
// direct game/team/roster lookups, and the live-tracking workflow surface.
// The Temporal client may be nil; workflow routes then answer in demo mode.
type Handlers struct {
	espn           *espn.Client
	temporalClient client.Client
	logger         *slog.Logger

	// pollerCtx bounds the lifetime of all pollers, not of any request.
	pollerCtx context.Context

	mu         sync.Mutex
	league     espn.League
	scoreboard *gridiron.Poller[*ScoreboardView]
	news       map[espn.League]*gridiron.Poller[*NewsView]
}

func NewHandlers(ctx context.Context, espnClient *espn.Client, temporalClient client.Client, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		espn:           espnClient,
		temporalClient: temporalClient,
		logger:         logger,
		pollerCtx:      ctx,
		news:           make(map[espn.League]*gridiron.Poller[*NewsView]),
	}
}

// Router builds the chi router with the full API surface.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/scoreboard", h.GetScoreboard)
		r.Post("/scoreboard/refresh", h.RefreshScoreboard)
		r.Get("/games/{gameID}", h.GetGame)
		r.Get("/games/{gameID}/plays", h.GetGamePlays)
		r.Get("/teams", h.GetTeams)
		r.Get("/teams/{teamID}", h.GetTeam)
		r.Get("/teams/{teamID}/roster", h.GetRoster)
		r.Get("/news", h.GetNews)
		r.Get("/rankings", h.GetRankings)
		r.Get("/live", h.LiveFeed)
		r.Post("/track", h.StartTracking)
		r.Get("/workflows", h.GetWorkflows)
		r.Delete("/workflows/{workflowID}", h.CancelWorkflow)
		r.Handle("/espn/*", http.StripPrefix("/api/espn", http.HandlerFunc(h.ProxyCoreAPI)))
	})

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// leagueParam reads ?league=, defaulting to nfl.
func leagueParam(r *http.Request) (espn.League, bool) {
	raw := r.URL.Query().Get("league")
	if raw == "" {
		return espn.LeagueNFL, true
	}
	league := espn.League(raw)
	return league, league.Valid()
}

// scoreboardPoller returns the scoreboard poller for a league, starting it
// on first use and restarting it when the league changes. Restarting drops
// the previous league's snapshot, so a stale scoreboard is never served
// against the new league.
func (h *Handlers) scoreboardPoller(league espn.League) *gridiron.Poller[*ScoreboardView] {
	h.mu.Lock()
	defer h.mu.Unlock()

	fetch := func(ctx context.Context) (*ScoreboardView, error) {
		sb, err := h.espn.Scoreboard(ctx, league)
		if err != nil {
			return nil, err
		}
		return BuildScoreboardView(league, sb), nil
	}

	if h.scoreboard == nil {
		h.scoreboard = gridiron.NewPoller("scoreboard", gridiron.PollInterval, fetch,
			gridiron.WithLogger[*ScoreboardView](h.logger))
		h.league = league
		h.scoreboard.Start(h.pollerCtx)
	} else if h.league != league {
		h.league = league
		h.scoreboard.Restart(h.pollerCtx, fetch)
	}
	return h.scoreboard
}

// newsPoller returns the news poller for a league, starting it on demand.
// News pollers are kept per league since the feed is cheap and league
// switches flip back and forth.
func (h *Handlers) newsPoller(league espn.League) *gridiron.Poller[*NewsView] {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p, ok := h.news[league]; ok {
		return p
	}
	fetch := func(ctx context.Context) (*NewsView, error) {
		news, err := h.espn.News(ctx, league)
		if err != nil {
			return nil, err
		}
		return BuildNewsView(league, news, time.Now()), nil
	}
	p := gridiron.NewPoller("news-"+string(league), gridiron.PollInterval, fetch,
		gridiron.WithLogger[*NewsView](h.logger))
	p.Start(h.pollerCtx)
	h.news[league] = p
	return p
}

// GetScoreboard answers with the scoreboard poller snapshot for the
// requested league.
func (h *Handlers) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}
	writeJSON(w, http.StatusOK, h.scoreboardPoller(league).Snapshot())
}

// RefreshScoreboard triggers an out-of-band scoreboard fetch and returns
// the resulting snapshot.
func (h *Handlers) RefreshScoreboard(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}
	p := h.scoreboardPoller(league)
	p.Refresh(r.Context())
	writeJSON(w, http.StatusOK, p.Snapshot())
}

// GetGame fetches the summary for one game directly, with derived win odds.
func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}
	gameID := chi.URLParam(r, "gameID")

	summary, err := h.espn.GameSummary(r.Context(), league, gameID)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BuildGameView(summary))
}

// GetGamePlays fetches and normalizes the play-by-play for one game.
// Scorer identities are resolved inline; failed lookups leave the regex
// fallback name from normalization in place.
func (h *Handlers) GetGamePlays(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}
	gameID := chi.URLParam(r, "gameID")
	ctx := r.Context()

	summary, err := h.espn.GameSummary(ctx, league, gameID)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}
	pbp, err := h.espn.PlayByPlay(ctx, league, gameID)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	homeID, awayID := headerTeamIDs(summary)
	scorers := h.espn.ResolveScorers(ctx, pbp.Items)
	plays := gridiron.NormalizePlays(pbp.Items, homeID, awayID, scorers)

	writeJSON(w, http.StatusOK, map[string]any{
		"gameId": gameID,
		"league": string(league),
		"plays":  plays,
		"isLive": summaryState(summary) == "in",
	})
}

func headerTeamIDs(summary *espn.GameSummary) (homeID, awayID string) {
	if summary == nil || len(summary.Header.Competitions) == 0 {
		return "", ""
	}
	for _, competitor := range summary.Header.Competitions[0].Competitors {
		switch competitor.HomeAway {
		case "home":
			homeID = competitor.Team.ID
		case "away":
			awayID = competitor.Team.ID
		}
	}
	return homeID, awayID
}

func summaryState(summary *espn.GameSummary) string {
	if summary == nil || len(summary.Header.Competitions) == 0 {
		return ""
	}
	return summary.Header.Competitions[0].Status.Type.State
}

// GetTeams lists a league's teams, optionally filtered by ?q= and grouped
// by division for the NFL.
func (h *Handlers) GetTeams(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}

	teams, err := h.espn.AllTeams(r.Context(), league)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		teams = gridiron.SearchTeams(teams, q)
	}

	payload := map[string]any{
		"league": string(league),
		"teams":  teams,
	}
	if league == espn.LeagueNFL && r.URL.Query().Get("q") == "" {
		payload["divisions"] = gridiron.GroupTeamsByDivision(teams)
		payload["divisionOrder"] = gridiron.NFLDivisions
	}
	writeJSON(w, http.StatusOK, payload)
}

// GetTeam fetches one team's detail record.
func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}

	team, err := h.espn.TeamInfo(r.Context(), league, chi.URLParam(r, "teamID"))
	if err != nil {
		if errors.Is(err, espn.ErrTeamNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		h.writeFetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// GetRoster fetches a team's roster filtered by ?position= and ?q=.
func (h *Handlers) GetRoster(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}

	roster, err := h.espn.Roster(r.Context(), league, chi.URLParam(r, "teamID"))
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	players := gridiron.FlattenRoster(roster)
	view := RosterView{
		Team:      roster.Team,
		Players:   gridiron.FilterRoster(players, r.URL.Query().Get("position"), r.URL.Query().Get("q")),
		Positions: gridiron.RosterPositions(players),
	}
	writeJSON(w, http.StatusOK, view)
}

// GetNews answers with the news poller snapshot for the requested league.
func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}
	writeJSON(w, http.StatusOK, h.newsPoller(league).Snapshot())
}

// GetRankings fetches poll rankings directly.
func (h *Handlers) GetRankings(w http.ResponseWriter, r *http.Request) {
	league, ok := leagueParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported league")
		return
	}

	rankings, err := h.espn.Rankings(r.Context(), league)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankings)
}

// writeFetchError maps espn client errors onto the API error envelope.
// Upstream failures surface as 502 so the browser can distinguish provider
// outages from bad requests.
func (h *Handlers) writeFetchError(w http.ResponseWriter, err error) {
	h.logger.Warn("espn fetch failed", "error", err)

	var fetchErr *espn.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Status == http.StatusNotFound {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeError(w, http.StatusBadGateway, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
