package web

import (
	"time"

	gridiron "gridiron-dashboard"
	"gridiron-dashboard/espn"
)

// ScoreboardView is the dashboard-ready shape of one scoreboard fetch:
// events bucketed by day, the resolved week label, bye teams, and the
// number of games currently in progress.
type ScoreboardView struct {
	League     string                `json:"league"`
	WeekLabel  string                `json:"weekLabel"`
	DateGroups []gridiron.DateBucket `json:"dateGroups"`
	ByeTeams   []espn.Team           `json:"byeTeams,omitempty"`
	LiveCount  int                   `json:"liveCount"`
}

// BuildScoreboardView derives the dashboard view from a raw scoreboard.
func BuildScoreboardView(league espn.League, sb *espn.Scoreboard) *ScoreboardView {
	var calendar []espn.CalendarItem
	if len(sb.Leagues) > 0 {
		calendar = sb.Leagues[0].Calendar
	}

	return &ScoreboardView{
		League:     string(league),
		WeekLabel:  gridiron.CurrentWeekLabel(calendar, sb.Season.Type, sb.Week.Number),
		DateGroups: gridiron.GroupEventsByDate(sb.Events),
		ByeTeams:   sb.Week.TeamsOnBye,
		LiveCount:  gridiron.LiveGameCount(sb.Events),
	}
}

// NewsItemView is one article with a relative publish label.
type NewsItemView struct {
	Headline    string `json:"headline"`
	Description string `json:"description,omitempty"`
	Published   string `json:"published"`
	TimeAgo     string `json:"timeAgo"`
	Link        string `json:"link,omitempty"`
	Image       string `json:"image,omitempty"`
}

// NewsView is the derived headline feed for one league.
type NewsView struct {
	League   string         `json:"league"`
	Articles []NewsItemView `json:"articles"`
}

// BuildNewsView flattens the news response into view items with time-ago
// labels computed against now.
func BuildNewsView(league espn.League, news *espn.NewsResponse, now time.Time) *NewsView {
	view := &NewsView{League: string(league)}
	for _, article := range news.Articles {
		item := NewsItemView{
			Headline:    article.Headline,
			Description: article.Description,
			Published:   article.Published.Format(time.RFC3339),
			TimeAgo:     gridiron.TimeAgo(article.Published.Time, now),
			Link:        article.Links.Web.Href,
		}
		if len(article.Images) > 0 {
			item.Image = article.Images[0].URL
		}
		view.Articles = append(view.Articles, item)
	}
	return view
}

// GameView is the per-game detail payload: summary plus derived win odds.
type GameView struct {
	Summary *espn.GameSummary `json:"summary"`
	WinOdds *gridiron.WinOdds `json:"winOdds,omitempty"`
}

// BuildGameView attaches the derived win probability to a summary.
func BuildGameView(summary *espn.GameSummary) *GameView {
	view := &GameView{Summary: summary}
	if odds, ok := gridiron.LatestWinOdds(summary); ok {
		view.WinOdds = &odds
	}
	return view
}

// RosterView is the filtered roster payload with the position tabs.
type RosterView struct {
	Team      espn.TeamDetail       `json:"team"`
	Players   []espn.RosterPlayer   `json:"players"`
	Positions []espn.RosterPosition `json:"positions"`
}
