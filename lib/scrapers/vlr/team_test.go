package vlr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTeam(t *testing.T) {
	doc := loadFixture(t, "team.html")
	team, err := ParseTeam(doc, 474)
	require.NoError(t, err)

	info := team.Info
	require.Equal(t, 474, info.ID)
	require.Equal(t, "Team Liquid", info.Name)
	require.Equal(t, "TL", info.Tag)
	require.Equal(t, "https://owcdn.net/img/tl.png", info.LogoURL)
	require.Equal(t, "Europe", info.Country)
	require.Equal(t, "eu", info.CountryCode)
	require.Equal(t, []Social{
		{Platform: "twitter", URL: "https://twitter.com/TeamLiquid", Text: "@TeamLiquid"},
		{Platform: "teamliquid.com", URL: "https://www.teamliquid.com", Text: "teamliquid.com"},
	}, info.Socials)

	// the TBD placeholder card has no player link and is skipped
	require.Len(t, team.Roster, 2)
	nats := team.Roster[0]
	require.Equal(t, 4004, nats.ID)
	require.Equal(t, "nats", nats.Slug)
	require.Equal(t, "https://www.vlr.gg/player/4004/nats", nats.Href)
	require.Equal(t, "nAts", nats.Alias)
	require.Equal(t, "Ayaz Akhmetshin", nats.RealName)
	require.Equal(t, "ru", nats.CountryCode)
	require.Equal(t, "https://www.vlr.gg/img/base/ph/sil.png", nats.AvatarURL)
	require.Equal(t, "player", nats.Role)
	require.True(t, nats.IsCaptain)

	sliggy := team.Roster[1]
	require.Equal(t, 2454, sliggy.ID)
	require.Equal(t, "head coach", sliggy.Role)
	require.False(t, sliggy.IsCaptain)

	require.Len(t, team.EventPlacements, 2)
	kickoff := team.EventPlacements[0]
	require.Equal(t, 2501, kickoff.EventID)
	require.Equal(t, "champions-tour-2025-emea-kickoff", kickoff.EventSlug)
	require.Equal(t, "Champions Tour 2025: EMEA Kickoff", kickoff.EventName)
	require.Equal(t, "2025", kickoff.Year)
	require.Equal(t, []PlacementEntry{{
		Stage:     "Playoffs",
		Placement: "3rd",
		Prize:     "$12,000",
	}}, kickoff.Placements)

	// no dash means the whole line is the stage
	champions := team.EventPlacements[1]
	require.Equal(t, 2097, champions.EventID)
	require.Equal(t, []PlacementEntry{{Stage: "Group Stage"}}, champions.Placements)

	require.Equal(t, "$1,802,341", team.TotalWinnings)
}

func TestParseTeamTransactions(t *testing.T) {
	doc := loadFixture(t, "transactions.html")
	transactions := ParseTeamTransactions(doc)
	require.Len(t, transactions, 2)

	join := transactions[0]
	require.NotNil(t, join.Date)
	require.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), *join.Date)
	require.Equal(t, "join", join.Action)
	require.Equal(t, 4004, join.PlayerID)
	require.Equal(t, "nats", join.PlayerSlug)
	require.Equal(t, "nAts", join.PlayerAlias)
	require.Equal(t, "Ayaz Akhmetshin", join.PlayerRealName)
	require.Equal(t, "ru", join.PlayerCountry)
	require.Equal(t, "player", join.Position)
	require.Equal(t, "https://twitter.com/TeamLiquid/status/1790000000000000000", join.ReferenceURL)

	// "Unknown" dates stay nil, empty reference cells stay empty
	leave := transactions[1]
	require.Nil(t, leave.Date)
	require.Equal(t, "leave", leave.Action)
	require.Equal(t, 438, leave.PlayerID)
	require.Equal(t, "Nivera", leave.PlayerAlias)
	require.Empty(t, leave.ReferenceURL)
}
