package espn

// Scoreboard is the ESPN site API scoreboard response.
type Scoreboard struct {
	Leagues []LeagueInfo `json:"leagues"`
	Season  Season       `json:"season"`
	Week    Week         `json:"week"`
	Events  []Event      `json:"events"`
}

type LeagueInfo struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Abbreviation string         `json:"abbreviation"`
	Slug         string         `json:"slug"`
	Season       Season         `json:"season"`
	Calendar     []CalendarItem `json:"calendar"`
}

type Season struct {
	Year        int    `json:"year"`
	Type        int    `json:"type"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug"`
}

type Week struct {
	Number     int    `json:"number"`
	TeamsOnBye []Team `json:"teamsOnBye,omitempty"`
}

// CalendarItem is one season-type section of the league calendar
// (1=preseason, 2=regular, 3=postseason, 4=offseason).
type CalendarItem struct {
	Label     string          `json:"label"`
	Value     string          `json:"value"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Entries   []CalendarEntry `json:"entries,omitempty"`
}

type CalendarEntry struct {
	Label          string `json:"label"`
	AlternateLabel string `json:"alternateLabel"`
	Detail         string `json:"detail"`
	Value          string `json:"value"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         ESPNTime      `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Week         EventWeek     `json:"week"`
	Competitions []Competition `json:"competitions"`
	Status       Status        `json:"status"`
}

type EventWeek struct {
	Number int `json:"number"`
}

type Competition struct {
	ID          string       `json:"id"`
	Date        ESPNTime     `json:"date"`
	Attendance  int          `json:"attendance,omitempty"`
	NeutralSite bool         `json:"neutralSite"`
	Venue       *Venue       `json:"venue,omitempty"`
	Competitors []Competitor `json:"competitors"`
	Notes       []Note       `json:"notes,omitempty"`
	Status      Status       `json:"status"`
	Broadcasts  []Broadcast  `json:"broadcasts,omitempty"`
	Leaders     []Leader     `json:"leaders,omitempty"`
	Situation   *Situation   `json:"situation,omitempty"`
	Odds        []Odds       `json:"odds,omitempty"`
}

type Venue struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Address  Address `json:"address"`
	Indoor   bool    `json:"indoor"`
}

type Address struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type Competitor struct {
	ID         string      `json:"id"`
	Order      int         `json:"order"`
	HomeAway   string      `json:"homeAway"`
	Winner     *bool       `json:"winner,omitempty"`
	Team       Team        `json:"team"`
	Score      string      `json:"score"`
	LineScores []LineScore `json:"linescores,omitempty"`
	Records    []Record    `json:"records,omitempty"`
}

type Team struct {
	ID               string `json:"id"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Color            string `json:"color,omitempty"`
	AlternateColor   string `json:"alternateColor,omitempty"`
	Logo             string `json:"logo,omitempty"`
	ConferenceID     string `json:"conferenceId,omitempty"`
}

type LineScore struct {
	DisplayValue string `json:"displayValue"`
}

type Record struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Type         string `json:"type"`
	Summary      string `json:"summary"`
}

type Note struct {
	Type     string `json:"type"`
	Headline string `json:"headline"`
}

type Status struct {
	Clock        float64    `json:"clock"`
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

type StatusType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"` // "pre", "in" or "post"
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail,omitempty"`
	ShortDetail string `json:"shortDetail,omitempty"`
}

type Broadcast struct {
	Market string   `json:"market"`
	Names  []string `json:"names"`
}

type Leader struct {
	Name             string        `json:"name"`
	DisplayName      string        `json:"displayName"`
	ShortDisplayName string        `json:"shortDisplayName"`
	Abbreviation     string        `json:"abbreviation"`
	Leaders          []LeaderEntry `json:"leaders"`
}

type LeaderEntry struct {
	DisplayValue string  `json:"displayValue"`
	Value        float64 `json:"value"`
	Athlete      Athlete `json:"athlete"`
	Team         TeamRef `json:"team"`
}

type Athlete struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	DisplayName string   `json:"displayName"`
	ShortName   string   `json:"shortName"`
	Jersey      string   `json:"jersey,omitempty"`
	Position    Position `json:"position"`
	Team        TeamRef  `json:"team"`
}

type TeamRef struct {
	ID string `json:"id"`
}

type Position struct {
	Abbreviation string `json:"abbreviation"`
}

// Situation carries the live down-and-distance state of an in-progress game.
type Situation struct {
	Down                  int    `json:"down"`
	YardLine              int    `json:"yardLine"`
	Distance              int    `json:"distance"`
	DownDistanceText      string `json:"downDistanceText,omitempty"`
	ShortDownDistanceText string `json:"shortDownDistanceText,omitempty"`
	PossessionText        string `json:"possessionText,omitempty"`
	IsRedZone             bool   `json:"isRedZone"`
	HomeTimeouts          int    `json:"homeTimeouts"`
	AwayTimeouts          int    `json:"awayTimeouts"`
	Possession            string `json:"possession,omitempty"`
}

// Odds represents betting odds information for a competition.
type Odds struct {
	Provider     OddsProvider `json:"provider"`
	Details      string       `json:"details"` // e.g. "MICH -7.5": projected winner and margin
	OverUnder    float64      `json:"overUnder"`
	Spread       float64      `json:"spread"`
	HomeTeamOdds *TeamOdds    `json:"homeTeamOdds,omitempty"`
	AwayTeamOdds *TeamOdds    `json:"awayTeamOdds,omitempty"`
}

type OddsProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// TeamOdds represents odds information for one side of a matchup.
type TeamOdds struct {
	Favorite  bool     `json:"favorite,omitempty"`
	Underdog  bool     `json:"underdog,omitempty"`
	MoneyLine float64  `json:"moneyLine,omitempty"`
	Team      *TeamRef `json:"team,omitempty"`
}
