package espn

// PlayByPlayResponse is the paginated play listing from the ESPN core API.
type PlayByPlayResponse struct {
	Count     int              `json:"count"`
	PageIndex int              `json:"pageIndex"`
	PageSize  int              `json:"pageSize"`
	PageCount int              `json:"pageCount"`
	Items     []PlayByPlayItem `json:"items"`
}

type PlayByPlayItem struct {
	ID             string            `json:"id"`
	SequenceNumber int               `json:"sequenceNumber"`
	Type           PlayType          `json:"type"`
	Text           string            `json:"text"`
	ShortText      string            `json:"shortText,omitempty"`
	AwayScore      int               `json:"awayScore"`
	HomeScore      int               `json:"homeScore"`
	Period         PeriodRef         `json:"period"`
	Clock          ClockRef          `json:"clock"`
	ScoringPlay    bool              `json:"scoringPlay"`
	ScoreValue     int               `json:"scoreValue"`
	Start          *PlayPosition     `json:"start,omitempty"`
	End            *PlayPosition     `json:"end,omitempty"`
	StatYardage    *int              `json:"statYardage,omitempty"`
	Team           *PlayTeam         `json:"team,omitempty"`
	Participants   []PlayParticipant `json:"participants,omitempty"`
}

type PlayType struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// PlayPosition is a field position in the possessing team's frame:
// yardLine 0 is that team's own goal line.
type PlayPosition struct {
	Down             int      `json:"down"`
	Distance         int      `json:"distance"`
	YardLine         int      `json:"yardLine"`
	YardsToEndzone   int      `json:"yardsToEndzone,omitempty"`
	Team             *TeamRef `json:"team,omitempty"`
	DownDistanceText string   `json:"downDistanceText,omitempty"`
	PossessionText   string   `json:"possessionText,omitempty"`
}

type PlayTeam struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// PlayParticipant references athlete and position records on the core API
// via opaque $ref URLs that need a secondary fetch.
type PlayParticipant struct {
	Athlete  RefLink `json:"athlete"`
	Position RefLink `json:"position"`
	Type     string  `json:"type"` // "scorer", "rusher", "passer", ...
	Order    int     `json:"order"`
}

type RefLink struct {
	Ref string `json:"$ref"`
}

// ParticipantScorer is the participant type whose athlete scored.
const ParticipantScorer = "scorer"

// Scorer is the resolved identity of a touchdown scorer.
type Scorer struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Headshot string `json:"headshot,omitempty"`
}
