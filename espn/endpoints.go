package espn

const (
	// Base URLs
	SiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football"
	CoreBaseURL = "https://sports.core.api.espn.com"

	// Site API endpoints, relative to {SiteBaseURL}/{league}
	ScoreboardEndpoint = "/scoreboard"
	SummaryEndpoint    = "/summary"
	TeamsEndpoint      = "/teams"
	NewsEndpoint       = "/news"
	RankingsEndpoint   = "/rankings"

	// Core API play-by-play template: league, gameID, gameID
	playsPathTemplate = "/v2/sports/football/leagues/%s/events/%s/competitions/%s/plays?limit=%d"

	// Query limits
	PlayByPlayLimit   = 400
	NFLTeamsLimit     = 50
	CollegeTeamsLimit = 1000
)

// League identifies an ESPN football league slug.
type League string

const (
	LeagueNFL     League = "nfl"
	LeagueCollege League = "college-football"
)

func (l League) Valid() bool {
	return l == LeagueNFL || l == LeagueCollege
}

// TeamsLimit returns the page size needed to fetch every team in one
// request. College football carries far more programs than the NFL.
func (l League) TeamsLimit() int {
	if l == LeagueCollege {
		return CollegeTeamsLimit
	}
	return NFLTeamsLimit
}
