package espn

// NewsResponse is the /news feed for a league.
type NewsResponse struct {
	Header   string        `json:"header"`
	Articles []NewsArticle `json:"articles"`
}

type NewsArticle struct {
	Headline     string         `json:"headline"`
	Description  string         `json:"description"`
	Published    ESPNTime       `json:"published"`
	LastModified ESPNTime       `json:"lastModified"`
	Premium      bool           `json:"premium"`
	Type         string         `json:"type"`
	Byline       string         `json:"byline,omitempty"`
	Links        ArticleLinks   `json:"links"`
	Images       []NewsImage    `json:"images,omitempty"`
	Categories   []NewsCategory `json:"categories,omitempty"`
}

type ArticleLinks struct {
	Web ArticleLink `json:"web"`
}

type ArticleLink struct {
	Href string `json:"href"`
}

type NewsImage struct {
	Name    string `json:"name,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type NewsCategory struct {
	ID          int    `json:"id,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TeamID      int    `json:"teamId,omitempty"`
}

// RankingsResponse is the /rankings poll listing (college football).
type RankingsResponse struct {
	Rankings []Ranking `json:"rankings"`
}

type Ranking struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ShortName     string       `json:"shortName"`
	Type          string       `json:"type"`
	Headline      string       `json:"headline,omitempty"`
	ShortHeadline string       `json:"shortHeadline,omitempty"`
	Current       bool         `json:"current"`
	Ranks         []RankedTeam `json:"ranks"`
}

type RankedTeam struct {
	Current         int        `json:"current"`
	Previous        int        `json:"previous"`
	Points          float64    `json:"points,omitempty"`
	FirstPlaceVotes int        `json:"firstPlaceVotes,omitempty"`
	Trend           string     `json:"trend"` // "up", "down" or "same"
	Team            TeamDetail `json:"team"`
	RecordSummary   string     `json:"recordSummary,omitempty"`
}
