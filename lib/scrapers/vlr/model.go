package vlr

import (
	"strings"
	"time"
)

// EventStatus is the lifecycle state shown on an event card.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusUnknown   EventStatus = "unknown"
)

// ParseEventStatus maps a card's status label to an EventStatus,
// ignoring case. Unrecognized labels map to EventStatusUnknown.
func ParseEventStatus(text string) EventStatus {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "upcoming":
		return EventStatusUpcoming
	case "ongoing":
		return EventStatusOngoing
	case "completed":
		return EventStatusCompleted
	default:
		return EventStatusUnknown
	}
}

// EventType selects which column of the events listing to read.
type EventType string

const (
	EventTypeUpcoming  EventType = "upcoming"
	EventTypeCompleted EventType = "completed"
)

// Region is a regional filter segment of the events listing URL.
// RegionAll requests the unfiltered listing.
type Region string

const (
	RegionAll          Region = ""
	RegionNorthAmerica Region = "north-america"
	RegionEurope       Region = "europe"
	RegionBrazil       Region = "brazil"
	RegionAsiaPacific  Region = "asia-pacific"
	RegionKorea        Region = "korea"
	RegionJapan        Region = "japan"
	RegionLatinAmerica Region = "latin-america"
	RegionOceania      Region = "oceania"
	RegionMena         Region = "mena"
	RegionGameChangers Region = "game-changers"
	RegionCollegiate   Region = "collegiate"
)

// AgentStatsTimespan selects the window the agent statistics table on a
// player profile is computed over.
type AgentStatsTimespan string

const (
	Timespan30Days AgentStatsTimespan = "30d"
	Timespan60Days AgentStatsTimespan = "60d"
	Timespan90Days AgentStatsTimespan = "90d"
	TimespanAll    AgentStatsTimespan = "all"
)

// Event is one card from the events listing.
type Event struct {
	ID      int         `json:"id"`
	Slug    string      `json:"slug"`
	Href    string      `json:"href"`
	Title   string      `json:"title"`
	Status  EventStatus `json:"status"`
	Prize   string      `json:"prize"`
	Dates   string      `json:"dates"`
	Region  string      `json:"region"`
	IconURL string      `json:"icon_url"`
}

// EventsPage is one page of the events listing plus its pager state.
type EventsPage struct {
	Events     []Event `json:"events"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
}

// MatchListTeam is one side of a match on an event's match list.
type MatchListTeam struct {
	Name     string `json:"name"`
	IsWinner bool   `json:"is_winner"`
	Score    *int   `json:"score,omitempty"`
}

// MatchListItem is one match row on an event's match list. Time is nil
// when either the date heading or the row's own time failed to parse.
type MatchListItem struct {
	ID              int             `json:"id"`
	Slug            string          `json:"slug"`
	Href            string          `json:"href"`
	Time            *time.Time      `json:"time,omitempty"`
	Teams           []MatchListTeam `json:"teams"`
	Tags            []string        `json:"tags"`
	EventText       string          `json:"event_text"`
	EventSeriesText string          `json:"event_series_text"`
}

// MatchHistoryTeam is one side of a row on a player's or team's match
// history page.
type MatchHistoryTeam struct {
	Name    string `json:"name"`
	Tag     string `json:"tag"`
	LogoURL string `json:"logo_url"`
	Score   *int   `json:"score,omitempty"`
}

// MatchHistoryItem is one row on a player's or team's match history
// page.
type MatchHistoryItem struct {
	ID               int                `json:"id"`
	Slug             string             `json:"slug"`
	Href             string             `json:"href"`
	LeagueIconURL    string             `json:"league_icon_url"`
	LeagueText       string             `json:"league_text"`
	LeagueSeriesText string             `json:"league_series_text"`
	Teams            []MatchHistoryTeam `json:"teams"`
	Vods             []string           `json:"vods"`
	Time             *time.Time         `json:"time,omitempty"`
}

// MatchStream is a stream or VOD link on a match page.
type MatchStream struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// MatchHeaderTeam is one of the two teams in a match page header. A
// header with a missing or unparsable score yields a nil Score, not a
// zero.
type MatchHeaderTeam struct {
	ID      int    `json:"id"`
	Slug    string `json:"slug"`
	Href    string `json:"href"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
	Score   *int   `json:"score,omitempty"`
}

// MatchHeader is the summary block at the top of a match page.
type MatchHeader struct {
	EventID         int               `json:"event_id"`
	EventSlug       string            `json:"event_slug"`
	EventTitle      string            `json:"event_title"`
	EventSeriesName string            `json:"event_series_name"`
	EventIconURL    string            `json:"event_icon_url"`
	Time            time.Time         `json:"time"`
	Patch           string            `json:"patch"`
	Note            string            `json:"note"`
	Status          string            `json:"status"`
	Format          string            `json:"format"`
	Teams           []MatchHeaderTeam `json:"teams"`
}

// MatchGameRound is one round marker in a game's round strip.
// WinningTeamID refers to a header team; WinningSide is "t" or "ct".
type MatchGameRound struct {
	Round         int    `json:"round"`
	WinningTeamID int    `json:"winning_team_id"`
	WinningSide   string `json:"winning_side"`
}

// MatchGamePlayer is one scoreboard row in a game. Every stat is
// optional; live pages render most of them blank.
type MatchGamePlayer struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Nation      string   `json:"nation"`
	Agent       string   `json:"agent"`
	Rating      *float64 `json:"rating,omitempty"`
	ACS         *int     `json:"acs,omitempty"`
	Kills       *int     `json:"kills,omitempty"`
	Deaths      *int     `json:"deaths,omitempty"`
	Assists     *int     `json:"assists,omitempty"`
	KDDiff      *int     `json:"kd_diff,omitempty"`
	KAST        *float64 `json:"kast,omitempty"`
	ADR         *float64 `json:"adr,omitempty"`
	HSPercent   *float64 `json:"hs_percent,omitempty"`
	FirstKills  *int     `json:"first_kills,omitempty"`
	FirstDeaths *int     `json:"first_deaths,omitempty"`
	FKDiff      *int     `json:"fk_diff,omitempty"`
}

// MatchGameTeam is one team's game-level header plus its scoreboard.
type MatchGameTeam struct {
	Name     string            `json:"name"`
	Score    *int              `json:"score,omitempty"`
	ScoreT   *int              `json:"score_t,omitempty"`
	ScoreCT  *int              `json:"score_ct,omitempty"`
	IsWinner bool              `json:"is_winner"`
	Players  []MatchGamePlayer `json:"players"`
}

// MatchGame is one map of a match. PickedByTeamID is nil when neither
// team picked the map.
type MatchGame struct {
	Map            string           `json:"map"`
	Duration       string           `json:"duration"`
	PickedByTeamID *int             `json:"picked_by_team_id,omitempty"`
	Teams          []MatchGameTeam  `json:"teams"`
	Rounds         []MatchGameRound `json:"rounds"`
}

// HeadToHeadMatch is one entry in the head-to-head module of a match
// page. WinnerIndex is 0 or 1, indexing the header teams.
type HeadToHeadMatch struct {
	MatchID      int    `json:"match_id"`
	MatchSlug    string `json:"match_slug"`
	EventName    string `json:"event_name"`
	EventSeries  string `json:"event_series"`
	EventIconURL string `json:"event_icon_url"`
	Team1Score   int    `json:"team1_score"`
	Team2Score   int    `json:"team2_score"`
	WinnerIndex  int    `json:"winner_index"`
	Date         string `json:"date"`
}

// PastMatch is one entry of a team's recent-matches card on a match
// page.
type PastMatch struct {
	MatchID      int    `json:"match_id"`
	MatchSlug    string `json:"match_slug"`
	OpponentName string `json:"opponent_name"`
	OpponentLogo string `json:"opponent_logo"`
	ScoreFor     int    `json:"score_for"`
	ScoreAgainst int    `json:"score_against"`
	IsWin        bool   `json:"is_win"`
	Date         string `json:"date"`
}

// TeamPastMatches groups the recent-matches card of one header team.
type TeamPastMatches struct {
	TeamID  int         `json:"team_id"`
	Matches []PastMatch `json:"matches"`
}

// UnknownPlayerID is the sentinel stored when a name printed on a
// performance table cannot be resolved against any scoreboard player.
const UnknownPlayerID = 0

// KillMatrixEntry is one killer/victim cell of the performance tab's
// kill matrix.
type KillMatrixEntry struct {
	KillerID int `json:"killer_id"`
	VictimID int `json:"victim_id"`
	Kills    int `json:"kills"`
	Deaths   int `json:"deaths"`
}

// PlayerPerformance is one row of the performance tab's advanced stats
// table.
type PlayerPerformance struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Kills2     int    `json:"kills_2"`
	Kills3     int    `json:"kills_3"`
	Kills4     int    `json:"kills_4"`
	Kills5     int    `json:"kills_5"`
	Clutch1v1  int    `json:"clutch_1v1"`
	Clutch1v2  int    `json:"clutch_1v2"`
	Clutch1v3  int    `json:"clutch_1v3"`
	Clutch1v4  int    `json:"clutch_1v4"`
	Clutch1v5  int    `json:"clutch_1v5"`
	EconRating int    `json:"econ_rating"`
	Plants     int    `json:"plants"`
	Defuses    int    `json:"defuses"`
}

// MatchPerformance is the parsed performance tab of a match.
type MatchPerformance struct {
	KillMatrix  []KillMatrixEntry   `json:"kill_matrix"`
	PlayerStats []PlayerPerformance `json:"player_stats"`
}

// TeamEconomy is one team's row of the economy tab. Each buy-type
// column splits a "total (won)" cell into its two counts.
type TeamEconomy struct {
	Name         string `json:"name"`
	PistolWon    int    `json:"pistol_won"`
	EcoCount     int    `json:"eco_count"`
	EcoWon       int    `json:"eco_won"`
	SemiEcoCount int    `json:"semi_eco_count"`
	SemiEcoWon   int    `json:"semi_eco_won"`
	SemiBuyCount int    `json:"semi_buy_count"`
	SemiBuyWon   int    `json:"semi_buy_won"`
	FullBuyCount int    `json:"full_buy_count"`
	FullBuyWon   int    `json:"full_buy_won"`
}

// MatchEconomy is the parsed economy tab of a match.
type MatchEconomy struct {
	Teams []TeamEconomy `json:"teams"`
}

// MatchDetail is a fully parsed match page. Performance and Economy
// are nil when their tab could not be fetched or parsed; the rest of
// the match is still returned.
type MatchDetail struct {
	ID          int               `json:"id"`
	Header      MatchHeader       `json:"header"`
	Streams     []MatchStream     `json:"streams"`
	Vods        []MatchStream     `json:"vods"`
	Games       []MatchGame       `json:"games"`
	HeadToHead  []HeadToHeadMatch `json:"head_to_head"`
	PastMatches []TeamPastMatches `json:"past_matches"`
	Performance *MatchPerformance `json:"performance,omitempty"`
	Economy     *MatchEconomy     `json:"economy,omitempty"`
}

// Social is one external link on a player or team header. Platform is
// inferred from the link's host.
type Social struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Text     string `json:"text"`
}

// PlacementEntry is one stage line of an event placement.
type PlacementEntry struct {
	Stage     string `json:"stage"`
	Placement string `json:"placement"`
	Prize     string `json:"prize"`
	TeamName  string `json:"team_name,omitempty"`
}

// EventPlacement is one event card in a profile's placements module.
type EventPlacement struct {
	EventID    int              `json:"event_id"`
	EventSlug  string           `json:"event_slug"`
	EventHref  string           `json:"event_href"`
	EventName  string           `json:"event_name"`
	Year       string           `json:"year"`
	Placements []PlacementEntry `json:"placements"`
}

// PlayerInfo is the header block of a player profile.
type PlayerInfo struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	RealName    string   `json:"real_name"`
	AvatarURL   string   `json:"avatar_url"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Socials     []Social `json:"socials"`
}

// PlayerTeam is one membership entry on a player profile.
type PlayerTeam struct {
	ID      int    `json:"id"`
	Slug    string `json:"slug"`
	Href    string `json:"href"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
	Role    string `json:"role"`
}

// PlayerAgentStats is one row of the agent statistics table on a
// player profile. UsagePercent and KAST are fractions in [0, 1].
type PlayerAgentStats struct {
	Agent        string  `json:"agent"`
	UsageCount   int     `json:"usage_count"`
	UsagePercent float64 `json:"usage_percent"`
	RoundsPlayed int     `json:"rounds_played"`
	Rating       float64 `json:"rating"`
	ACS          float64 `json:"acs"`
	KD           float64 `json:"kd"`
	ADR          float64 `json:"adr"`
	KAST         float64 `json:"kast"`
	KPR          float64 `json:"kpr"`
	APR          float64 `json:"apr"`
	FKPR         float64 `json:"fkpr"`
	FDPR         float64 `json:"fdpr"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	FirstKills   int     `json:"first_kills"`
	FirstDeaths  int     `json:"first_deaths"`
}

// NewsItem is one entry of the recent-news module on a player profile.
type NewsItem struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

// Player is a fully parsed player profile.
type Player struct {
	Info            PlayerInfo         `json:"info"`
	CurrentTeams    []PlayerTeam       `json:"current_teams"`
	PastTeams       []PlayerTeam       `json:"past_teams"`
	AgentStats      []PlayerAgentStats `json:"agent_stats"`
	News            []NewsItem         `json:"news"`
	EventPlacements []EventPlacement   `json:"event_placements"`
	TotalWinnings   string             `json:"total_winnings"`
}

// TeamInfo is the header block of a team profile.
type TeamInfo struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	LogoURL     string   `json:"logo_url"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Socials     []Social `json:"socials"`
}

// TeamRosterMember is one entry of a team's roster card. Role defaults
// to "player" when the card shows no role line.
type TeamRosterMember struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Href        string `json:"href"`
	Alias       string `json:"alias"`
	RealName    string `json:"real_name"`
	CountryCode string `json:"country_code"`
	AvatarURL   string `json:"avatar_url"`
	Role        string `json:"role"`
	IsCaptain   bool   `json:"is_captain"`
}

// Team is a fully parsed team profile.
type Team struct {
	Info            TeamInfo           `json:"info"`
	Roster          []TeamRosterMember `json:"roster"`
	EventPlacements []EventPlacement   `json:"event_placements"`
	TotalWinnings   string             `json:"total_winnings"`
}

// TeamTransaction is one row of a team's transactions page. Date is
// nil when the site prints "Unknown" or an unparsable date.
type TeamTransaction struct {
	Date           *time.Time `json:"date,omitempty"`
	Action         string     `json:"action"`
	PlayerID       int        `json:"player_id"`
	PlayerSlug     string     `json:"player_slug"`
	PlayerAlias    string     `json:"player_alias"`
	PlayerRealName string     `json:"player_real_name"`
	PlayerCountry  string     `json:"player_country"`
	Position       string     `json:"position"`
	ReferenceURL   string     `json:"reference_url"`
}
