package espn

// TeamDetail is the expanded team object returned by /teams/{id} and inside
// the /teams list. Distinct from the lighter Team embedded in competitions.
type TeamDetail struct {
	ID               string      `json:"id"`
	Slug             string      `json:"slug"`
	Location         string      `json:"location"`
	Name             string      `json:"name"`
	Nickname         string      `json:"nickname,omitempty"`
	Abbreviation     string      `json:"abbreviation"`
	DisplayName      string      `json:"displayName"`
	ShortDisplayName string      `json:"shortDisplayName"`
	Color            string      `json:"color,omitempty"`
	AlternateColor   string      `json:"alternateColor,omitempty"`
	IsActive         bool        `json:"isActive"`
	Logos            []Logo      `json:"logos,omitempty"`
	Record           *TeamRecord `json:"record,omitempty"`
	StandingSummary  string      `json:"standingSummary,omitempty"`
}

type Logo struct {
	Href   string `json:"href"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type TeamRecord struct {
	Items []TeamRecordItem `json:"items"`
}

type TeamRecordItem struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Summary     string `json:"summary"`
}

// TeamListResponse is the nested envelope around /teams: the list lives at
// sports[0].leagues[0].teams[].team.
type TeamListResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team TeamDetail `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// TeamInfoResponse wraps the single-team endpoint payload.
type TeamInfoResponse struct {
	Team TeamDetail `json:"team"`
}

// Roster is the /teams/{id}/roster response. Athletes arrive grouped by
// position blocks (offense/defense/special teams).
type Roster struct {
	Season   Season        `json:"season"`
	Athletes []RosterGroup `json:"athletes"`
	Coach    []Coach       `json:"coach,omitempty"`
	Team     TeamDetail    `json:"team"`
}

type RosterGroup struct {
	Position string         `json:"position"`
	Items    []RosterPlayer `json:"items"`
}

type RosterPlayer struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	FullName      string          `json:"fullName"`
	DisplayName   string          `json:"displayName"`
	Weight        float64         `json:"weight,omitempty"`
	DisplayWeight string          `json:"displayWeight,omitempty"`
	Height        float64         `json:"height,omitempty"`
	DisplayHeight string          `json:"displayHeight,omitempty"`
	Age           int             `json:"age,omitempty"`
	Jersey        string          `json:"jersey,omitempty"`
	Position      RosterPosition  `json:"position"`
	Experience    *Experience     `json:"experience,omitempty"`
	College       *College        `json:"college,omitempty"`
	Headshot      *Headshot       `json:"headshot,omitempty"`
	Status        *PlayerStatus   `json:"status,omitempty"`
	Injuries      []InjuryListing `json:"injuries,omitempty"`
}

type RosterPosition struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type Experience struct {
	Years int `json:"years"`
}

type College struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
}

type Headshot struct {
	Href string `json:"href"`
	Alt  string `json:"alt,omitempty"`
}

type PlayerStatus struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"` // "active", "injured", ...
	Abbreviation string `json:"abbreviation"`
}

type InjuryListing struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

type Coach struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Experience int    `json:"experience"`
}
