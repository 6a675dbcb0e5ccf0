package gridiron

import (
	"regexp"
	"sort"
	"strings"

	"gridiron-dashboard/espn"
)

// PlayCategory buckets free-text play types for visualization.
type PlayCategory string

const (
	CategoryRush      PlayCategory = "rush"
	CategoryPass      PlayCategory = "pass"
	CategoryKick      PlayCategory = "kick"
	CategoryPunt      PlayCategory = "punt"
	CategoryKickoff   PlayCategory = "kickoff"
	CategoryPenalty   PlayCategory = "penalty"
	CategoryTimeout   PlayCategory = "timeout"
	CategoryEndPeriod PlayCategory = "end_period"
	CategoryOther     PlayCategory = "other"
)

// NormalizedPlay is a play in an absolute, team-agnostic frame: yard lines
// run 0-100 with the home goal line at 0 regardless of possession.
type NormalizedPlay struct {
	ID               string       `json:"id"`
	SequenceNumber   int          `json:"sequenceNumber"`
	Type             string       `json:"type"`
	TypeID           string       `json:"typeId"`
	Category         PlayCategory `json:"category"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Quarter          int          `json:"quarter"`
	Clock            string       `json:"clock"`
	AwayScore        int          `json:"awayScore"`
	HomeScore        int          `json:"homeScore"`
	IsScoring        bool         `json:"isScoring"`
	ScoreValue       int          `json:"scoreValue"`
	TeamID           string       `json:"teamId,omitempty"`
	TeamAbbreviation string       `json:"teamAbbreviation,omitempty"`
	StartYardLine    int          `json:"startYardLine"`
	EndYardLine      int          `json:"endYardLine"`
	YardsGained      int          `json:"yardsGained"`
	StartDown        int          `json:"startDown"`
	StartDistance    int          `json:"startDistance"`
	EndDown          int          `json:"endDown"`
	EndDistance      int          `json:"endDistance"`
	Scorer           *espn.Scorer `json:"scorer,omitempty"`
}

// possessingTeamID picks the team the play position is measured against:
// the start position's team, falling back to the play's own team.
func possessingTeamID(play espn.PlayByPlayItem) string {
	if play.Start != nil && play.Start.Team != nil && play.Start.Team.ID != "" {
		return play.Start.Team.ID
	}
	if play.Team != nil {
		return play.Team.ID
	}
	return ""
}

// NormalizePlay converts a raw play into the absolute home-relative frame.
// The API reports yard lines from the possessing team's perspective, so when
// the away team possesses both endpoints flip via x -> 100-x. Yards gained
// prefer the provider's statYardage and otherwise derive from the flipped
// endpoints, which keeps both operands in the same frame.
func NormalizePlay(play espn.PlayByPlayItem, homeTeamID, awayTeamID string, scorer *espn.Scorer) NormalizedPlay {
	possessor := possessingTeamID(play)

	startYardLine := 0
	if play.Start != nil {
		startYardLine = play.Start.YardLine
	}
	endYardLine := startYardLine
	if play.End != nil {
		endYardLine = play.End.YardLine
	}

	if possessor != "" && possessor == awayTeamID {
		startYardLine = 100 - startYardLine
		endYardLine = 100 - endYardLine
	}

	yardsGained := endYardLine - startYardLine
	if play.StatYardage != nil {
		yardsGained = *play.StatYardage
	}

	normalized := NormalizedPlay{
		ID:               play.ID,
		SequenceNumber:   play.SequenceNumber,
		Type:             play.Type.Text,
		TypeID:           play.Type.ID,
		Category:         ClassifyPlay(play.Type.Text),
		Description:      play.Text,
		ShortDescription: play.ShortText,
		Quarter:          play.Period.Number,
		Clock:            play.Clock.DisplayValue,
		AwayScore:        play.AwayScore,
		HomeScore:        play.HomeScore,
		IsScoring:        play.ScoringPlay,
		ScoreValue:       play.ScoreValue,
		StartYardLine:    startYardLine,
		EndYardLine:      endYardLine,
		YardsGained:      yardsGained,
		Scorer:           scorer,
	}
	if normalized.Type == "" {
		normalized.Type = "Unknown"
	}
	if normalized.TypeID == "" {
		normalized.TypeID = "0"
	}
	if normalized.Quarter == 0 {
		normalized.Quarter = 1
	}
	if normalized.ShortDescription == "" {
		normalized.ShortDescription = play.Text
	}
	if play.Team != nil {
		normalized.TeamID = play.Team.ID
		normalized.TeamAbbreviation = play.Team.Abbreviation
	}
	if play.Start != nil {
		normalized.StartDown = play.Start.Down
		normalized.StartDistance = play.Start.Distance
	}
	if play.End != nil {
		normalized.EndDown = play.End.Down
		normalized.EndDistance = play.End.Distance
	}

	// Touchdowns without a resolved scorer fall back to pulling a name out
	// of the play description.
	if normalized.Scorer == nil && play.ScoreValue == 6 {
		if name := ExtractScorerName(play.Text, play.Type.Text); name != "" {
			normalized.Scorer = &espn.Scorer{Name: name}
		}
	}

	return normalized
}

// NormalizePlays normalizes a batch and returns it sorted ascending by
// sequence number regardless of arrival order. Scorers resolved out of band
// are attached by play ID.
func NormalizePlays(items []espn.PlayByPlayItem, homeTeamID, awayTeamID string, scorers map[string]espn.Scorer) []NormalizedPlay {
	plays := make([]NormalizedPlay, 0, len(items))
	for _, item := range items {
		var scorer *espn.Scorer
		if s, ok := scorers[item.ID]; ok {
			scorer = &s
		}
		plays = append(plays, NormalizePlay(item, homeTeamID, awayTeamID, scorer))
	}
	sort.Slice(plays, func(i, j int) bool {
		return plays[i].SequenceNumber < plays[j].SequenceNumber
	})
	return plays
}

// ClassifyPlay buckets a free-text play type. First match wins, so earlier
// patterns take precedence: "punt return" stays a punt even though the text
// also mentions a return, and a sack counts as a pass play.
func ClassifyPlay(typeText string) PlayCategory {
	text := strings.ToLower(typeText)

	switch {
	case strings.Contains(text, "rush") || strings.Contains(text, "run"):
		return CategoryRush
	case strings.Contains(text, "pass") || strings.Contains(text, "sack") || strings.Contains(text, "interception"):
		return CategoryPass
	case strings.Contains(text, "field goal") || strings.Contains(text, "extra point") || strings.Contains(text, "pat"):
		return CategoryKick
	case strings.Contains(text, "punt"):
		return CategoryPunt
	case strings.Contains(text, "kickoff") || strings.Contains(text, "kick off"):
		return CategoryKickoff
	case strings.Contains(text, "penalty"):
		return CategoryPenalty
	case strings.Contains(text, "timeout"):
		return CategoryTimeout
	case strings.Contains(text, "end") && (strings.Contains(text, "quarter") || strings.Contains(text, "half") || strings.Contains(text, "game")):
		return CategoryEndPeriod
	}
	return CategoryOther
}

// Name patterns for scorer extraction. These are best-effort matches over
// the provider's prose and can mis-extract multi-word surnames.
var (
	passScorerPattern    = regexp.MustCompile(`(?i)(?:pass(?:ing)?|to)\s+([A-Z]\.?\s?[A-Za-z'-]+)`)
	passTargetPattern    = regexp.MustCompile(`(?i)to\s+([A-Z]\.?\s?[A-Za-z'-]+)`)
	leadingNamePattern   = regexp.MustCompile(`(?i)^([A-Z]\.?\s?[A-Za-z'-]+)`)
	receptionNamePattern = regexp.MustCompile(`(?i)([A-Z]\.?\s?[A-Za-z'-]+)\s+(?:reception|catch|receiving)`)
	genericNamePattern   = regexp.MustCompile(`^([A-Z]\.?\s?[A-Za-z'-]+)`)
)

// ExtractScorerName pulls a player name out of a touchdown description when
// no structured participant data is available. Passing plays name the
// receiver ("to X. Name"), rushing plays lead with the rusher.
func ExtractScorerName(description, playType string) string {
	lowerDesc := strings.ToLower(description)
	lowerType := strings.ToLower(playType)

	if strings.Contains(lowerType, "pass") || strings.Contains(lowerDesc, "pass") {
		if passScorerPattern.MatchString(description) {
			if m := passTargetPattern.FindStringSubmatch(description); m != nil {
				return m[1]
			}
		}
	}

	if strings.Contains(lowerType, "rush") || strings.Contains(lowerDesc, "rush") || strings.Contains(lowerDesc, "yard run") {
		if m := leadingNamePattern.FindStringSubmatch(description); m != nil {
			return m[1]
		}
	}

	if strings.Contains(lowerType, "receiv") {
		if m := receptionNamePattern.FindStringSubmatch(description); m != nil {
			return m[1]
		}
	}

	if m := genericNamePattern.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return ""
}
