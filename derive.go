package gridiron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gridiron-dashboard/espn"
)

// DateBucket is one calendar day of scheduled events.
type DateBucket struct {
	Label        string        `json:"label"`
	Date         espn.ESPNTime `json:"date"`
	Events       []espn.Event  `json:"events"`
	AllCompleted bool          `json:"allCompleted"`
}

// GroupEventsByDate partitions events into per-day buckets. A day counts as
// completed only when every event on it is in the "post" state. Buckets with
// upcoming or live games sort ascending by date (soonest first) and precede
// all fully completed days, which sort descending (most recent first).
func GroupEventsByDate(events []espn.Event) []DateBucket {
	index := make(map[string]int)
	var buckets []DateBucket

	for _, event := range events {
		label := event.Date.Format("Monday, January 2")
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, DateBucket{
				Label:        label,
				Date:         event.Date,
				AllCompleted: true,
			})
		}
		buckets[i].Events = append(buckets[i].Events, event)
		if event.Status.Type.State != "post" {
			buckets[i].AllCompleted = false
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.AllCompleted != b.AllCompleted {
			return !a.AllCompleted
		}
		if !a.AllCompleted {
			return a.Date.Time.Before(b.Date.Time)
		}
		return a.Date.Time.After(b.Date.Time)
	})

	return buckets
}

// CurrentWeekLabel resolves the display label for the active week from the
// league calendar. Resolution order: the matching week entry's label, then
// the season-type section's label, then "Week {n}", then "Current Week"
// when even the week number is unknown. Zero seasonType/week mean unknown.
func CurrentWeekLabel(calendar []espn.CalendarItem, seasonType, week int) string {
	fallback := "Current Week"
	if week != 0 {
		fallback = fmt.Sprintf("Week %d", week)
	}

	if len(calendar) == 0 || seasonType == 0 || week == 0 {
		return fallback
	}

	var section *espn.CalendarItem
	for i := range calendar {
		if calendar[i].Value == strconv.Itoa(seasonType) {
			section = &calendar[i]
			break
		}
	}
	if section == nil {
		return fallback
	}
	if len(section.Entries) == 0 {
		if section.Label != "" {
			return section.Label
		}
		return fallback
	}

	for _, entry := range section.Entries {
		if entry.Value == strconv.Itoa(week) {
			return entry.Label
		}
	}
	if section.Label != "" {
		return section.Label
	}
	return fallback
}

// NFLDivisions lists division names in display order.
var NFLDivisions = []string{
	"AFC East", "AFC North", "AFC South", "AFC West",
	"NFC East", "NFC North", "NFC South", "NFC West",
}

// nflDivisionByTeamID maps ESPN NFL team IDs to their division.
var nflDivisionByTeamID = map[string]string{
	// AFC East
	"2": "AFC East", "15": "AFC East", "17": "AFC East", "20": "AFC East",
	// AFC North
	"33": "AFC North", "4": "AFC North", "5": "AFC North", "23": "AFC North",
	// AFC South
	"34": "AFC South", "11": "AFC South", "30": "AFC South", "10": "AFC South",
	// AFC West
	"7": "AFC West", "12": "AFC West", "13": "AFC West", "24": "AFC West",
	// NFC East
	"6": "NFC East", "21": "NFC East", "8": "NFC East", "28": "NFC East",
	// NFC North
	"3": "NFC North", "19": "NFC North", "9": "NFC North", "16": "NFC North",
	// NFC South
	"1": "NFC South", "29": "NFC South", "18": "NFC South", "27": "NFC South",
	// NFC West
	"22": "NFC West", "14": "NFC West", "25": "NFC West", "26": "NFC West",
}

// GroupTeamsByDivision buckets NFL teams by division using the static
// ID table. Teams without a table entry are left out of the grouped view;
// they stay visible in flat and searched listings.
func GroupTeamsByDivision(teams []espn.TeamDetail) map[string][]espn.TeamDetail {
	grouped := make(map[string][]espn.TeamDetail, len(NFLDivisions))
	for _, name := range NFLDivisions {
		grouped[name] = nil
	}
	for _, team := range teams {
		division, ok := nflDivisionByTeamID[team.ID]
		if !ok {
			continue
		}
		grouped[division] = append(grouped[division], team)
	}
	return grouped
}

// SearchTeams narrows a team list by a case-insensitive substring match
// against display name, location, nickname, and abbreviation.
func SearchTeams(teams []espn.TeamDetail, query string) []espn.TeamDetail {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return teams
	}
	var matched []espn.TeamDetail
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.DisplayName), query) ||
			strings.Contains(strings.ToLower(team.Location), query) ||
			strings.Contains(strings.ToLower(team.Name), query) ||
			strings.Contains(strings.ToLower(team.Abbreviation), query) {
			matched = append(matched, team)
		}
	}
	return matched
}

// FlattenRoster collapses the position-grouped roster into one player list.
func FlattenRoster(roster *espn.Roster) []espn.RosterPlayer {
	if roster == nil {
		return nil
	}
	var players []espn.RosterPlayer
	for _, group := range roster.Athletes {
		players = append(players, group.Items...)
	}
	return players
}

// FilterRoster narrows a player list to an exact position code ("all" or ""
// disables the position filter) intersected with a case-insensitive
// substring match against name, jersey number, or position code.
func FilterRoster(players []espn.RosterPlayer, position, query string) []espn.RosterPlayer {
	query = strings.ToLower(strings.TrimSpace(query))
	var filtered []espn.RosterPlayer
	for _, player := range players {
		if position != "" && position != "all" && player.Position.Abbreviation != position {
			continue
		}
		if query != "" && !playerMatches(player, query) {
			continue
		}
		filtered = append(filtered, player)
	}
	return filtered
}

func playerMatches(player espn.RosterPlayer, query string) bool {
	return strings.Contains(strings.ToLower(player.FullName), query) ||
		strings.Contains(strings.ToLower(player.DisplayName), query) ||
		strings.Contains(player.Jersey, query) ||
		strings.Contains(strings.ToLower(player.Position.Abbreviation), query)
}

// positionOrder is the depth-chart ordering used for roster position tabs.
var positionOrder = []string{
	"QB", "RB", "FB", "WR", "TE", "OT", "OG", "C", "OL",
	"DE", "DT", "NT", "DL", "LB", "OLB", "ILB", "MLB",
	"CB", "S", "FS", "SS", "DB", "K", "P", "LS",
}

// RosterPositions returns the unique position codes present on a roster,
// sorted in depth-chart order with unknown codes alphabetical at the end.
func RosterPositions(players []espn.RosterPlayer) []espn.RosterPosition {
	seen := make(map[string]espn.RosterPosition)
	for _, player := range players {
		abbr := player.Position.Abbreviation
		if abbr == "" {
			continue
		}
		if _, ok := seen[abbr]; !ok {
			seen[abbr] = player.Position
		}
	}

	rank := make(map[string]int, len(positionOrder))
	for i, abbr := range positionOrder {
		rank[abbr] = i
	}

	positions := make([]espn.RosterPosition, 0, len(seen))
	for _, pos := range seen {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		ri, iKnown := rank[positions[i].Abbreviation]
		rj, jKnown := rank[positions[j].Abbreviation]
		if iKnown && jKnown {
			return ri < rj
		}
		if iKnown != jKnown {
			return iKnown
		}
		return positions[i].Abbreviation < positions[j].Abbreviation
	})
	return positions
}

// TimeAgo renders a relative publish-time label for news articles.
func TimeAgo(published, now time.Time) string {
	diff := now.Sub(published)
	// Feed timestamps occasionally run ahead of the local clock.
	if diff < 0 {
		diff = 0
	}
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return published.Format("Jan 2")
}

// WinOdds is the derived home/away win chance on a 0-1 scale.
type WinOdds struct {
	HomeWinChance float64 `json:"homeWinChance"`
	AwayWinChance float64 `json:"awayWinChance"`
}

// LatestWinOdds derives the current win probability for a game: the last
// sample of the live win-probability series when one exists, otherwise the
// pre-game predictor projection scaled from percent to 0-1.
func LatestWinOdds(summary *espn.GameSummary) (WinOdds, bool) {
	if summary == nil {
		return WinOdds{}, false
	}
	if n := len(summary.WinProbability); n > 0 {
		last := summary.WinProbability[n-1]
		return WinOdds{
			HomeWinChance: last.HomeWinPercentage,
			AwayWinChance: last.AwayWinPercentage,
		}, true
	}
	if p := summary.Predictor; p != nil && (p.HomeTeam.GameProjection != 0 || p.AwayTeam.GameProjection != 0) {
		return WinOdds{
			HomeWinChance: p.HomeTeam.GameProjection / 100,
			AwayWinChance: p.AwayTeam.GameProjection / 100,
		}, true
	}
	return WinOdds{}, false
}

// LiveGameCount reports how many events are currently in progress.
func LiveGameCount(events []espn.Event) int {
	count := 0
	for _, event := range events {
		if event.Status.Type.State == "in" {
			count++
		}
	}
	return count
}
