package espn

// GameSummary is the ESPN site API /summary?event={id} response. Only the
// sections the dashboard consumes are modeled; the provider sends much more.
type GameSummary struct {
	Boxscore       Boxscore         `json:"boxscore"`
	GameInfo       GameInfo         `json:"gameInfo"`
	Drives         *Drives          `json:"drives,omitempty"`
	Leaders        []Leader         `json:"leaders,omitempty"`
	ScoringPlays   []ScoringPlay    `json:"scoringPlays,omitempty"`
	WinProbability []WinProbability `json:"winprobability,omitempty"`
	Header         GameHeader       `json:"header"`
	Pickcenter     []Odds           `json:"pickcenter,omitempty"`
	Predictor      *Predictor       `json:"predictor,omitempty"`
}

type GameHeader struct {
	ID           string        `json:"id"`
	Season       Season        `json:"season"`
	Week         int           `json:"week"`
	Competitions []Competition `json:"competitions"`
}

type Boxscore struct {
	Teams []BoxscoreTeam `json:"teams"`
}

type BoxscoreTeam struct {
	Team       Team            `json:"team"`
	Statistics []TeamStatistic `json:"statistics"`
}

type TeamStatistic struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
	Label        string `json:"label"`
}

type GameInfo struct {
	Venue      *Venue   `json:"venue,omitempty"`
	Attendance int      `json:"attendance,omitempty"`
	Weather    *Weather `json:"weather,omitempty"`
}

type Weather struct {
	DisplayValue string `json:"displayValue"`
	Temperature  int    `json:"temperature"`
	ConditionID  string `json:"conditionId"`
}

type Drives struct {
	Current  *Drive  `json:"current,omitempty"`
	Previous []Drive `json:"previous,omitempty"`
}

type Drive struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Team           Team   `json:"team"`
	Yards          int    `json:"yards"`
	IsScore        bool   `json:"isScore"`
	OffensivePlays int    `json:"offensivePlays"`
	Result         string `json:"result"`
	DisplayResult  string `json:"displayResult"`
}

type ScoringPlay struct {
	ID          string          `json:"id"`
	Type        ScoringPlayType `json:"type"`
	Text        string          `json:"text"`
	AwayScore   int             `json:"awayScore"`
	HomeScore   int             `json:"homeScore"`
	Period      PeriodRef       `json:"period"`
	Clock       ClockRef        `json:"clock"`
	Team        Team            `json:"team"`
	ScoringType ScoringType     `json:"scoringType"`
}

type ScoringPlayType struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ScoringType struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type PeriodRef struct {
	Number int `json:"number"`
}

type ClockRef struct {
	DisplayValue string  `json:"displayValue"`
	Value        float64 `json:"value,omitempty"`
}

// WinProbability is one sample of the live win-probability series.
type WinProbability struct {
	TiePercentage     float64 `json:"tiePercentage"`
	HomeWinPercentage float64 `json:"homeWinPercentage"`
	AwayWinPercentage float64 `json:"awayWinPercentage"`
	SecondsLeft       int     `json:"secondsLeft"`
	PlayID            string  `json:"playId"`
}

// Predictor is ESPN's pre-game projection, used when no win-probability
// samples exist yet. GameProjection is a 0-100 percentage.
type Predictor struct {
	Header   string        `json:"header"`
	HomeTeam PredictorTeam `json:"homeTeam"`
	AwayTeam PredictorTeam `json:"awayTeam"`
}

type PredictorTeam struct {
	ID             string  `json:"id"`
	GameProjection float64 `json:"gameProjection"`
	TeamChanceLoss float64 `json:"teamChanceLoss"`
	TeamChanceTie  float64 `json:"teamChanceTie"`
}
