package vlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlayer(t *testing.T) {
	doc := loadFixture(t, "player.html")
	player, err := ParsePlayer(doc, 4004)
	require.NoError(t, err)

	info := player.Info
	require.Equal(t, 4004, info.ID)
	require.Equal(t, "nAts", info.Name)
	require.Equal(t, "Ayaz Akhmetshin", info.RealName)
	require.Equal(t, "https://www.vlr.gg/img/base/ph/sil.png", info.AvatarURL)
	require.Equal(t, "Russia", info.Country)
	require.Equal(t, "ru", info.CountryCode)
	require.Equal(t, []Social{
		{Platform: "twitter", URL: "https://twitter.com/natsuwuw", Text: "@natsuwuw"},
		{Platform: "twitch", URL: "https://www.twitch.tv/nats", Text: "twitch.tv/nats"},
	}, info.Socials)

	require.Len(t, player.CurrentTeams, 1)
	current := player.CurrentTeams[0]
	require.Equal(t, 474, current.ID)
	require.Equal(t, "team-liquid", current.Slug)
	require.Equal(t, "https://www.vlr.gg/team/474/team-liquid", current.Href)
	require.Equal(t, "Team Liquid", current.Name)
	require.Equal(t, "https://owcdn.net/img/tl.png", current.LogoURL)
	require.Equal(t, "joined in May 2024", current.Role)

	require.Len(t, player.PastTeams, 1)
	require.Equal(t, 2593, player.PastTeams[0].ID)
	require.Equal(t, "Gambit Esports", player.PastTeams[0].Name)
	require.Equal(t, "2020 – 2022", player.PastTeams[0].Role)

	// the colspan separator row is not an agent
	require.Len(t, player.AgentStats, 2)
	viper := player.AgentStats[0]
	require.Equal(t, "Viper", viper.Agent)
	require.Equal(t, 95, viper.UsageCount)
	require.Equal(t, 0.2, viper.UsagePercent)
	require.Equal(t, 1124, viper.RoundsPlayed)
	require.Equal(t, 1.18, viper.Rating)
	require.Equal(t, 231.4, viper.ACS)
	require.Equal(t, 1.31, viper.KD)
	require.Equal(t, 148.2, viper.ADR)
	require.Equal(t, 0.74, viper.KAST)
	require.Equal(t, 0.81, viper.KPR)
	require.Equal(t, 0.29, viper.APR)
	require.Equal(t, 0.11, viper.FKPR)
	require.Equal(t, 0.08, viper.FDPR)
	require.Equal(t, 912, viper.Kills)
	require.Equal(t, 698, viper.Deaths)
	require.Equal(t, 321, viper.Assists)
	require.Equal(t, 124, viper.FirstKills)
	require.Equal(t, 91, viper.FirstDeaths)

	cypher := player.AgentStats[1]
	require.Equal(t, "Cypher", cypher.Agent)
	require.Equal(t, 0, cypher.UsageCount)
	require.Equal(t, 0.0, cypher.UsagePercent)
	require.Equal(t, 412, cypher.RoundsPlayed)

	require.Equal(t, []NewsItem{{
		Title: "nAts joins Team Liquid",
		Date:  "May 15, 2024",
		URL:   "https://www.vlr.gg/407150/nats-joins-team-liquid",
	}}, player.News)

	require.Len(t, player.EventPlacements, 1)
	placement := player.EventPlacements[0]
	require.Equal(t, 2097, placement.EventID)
	require.Equal(t, "valorant-champions-2024", placement.EventSlug)
	require.Equal(t, "Valorant Champions 2024", placement.EventName)
	require.Equal(t, "2024", placement.Year)
	require.Equal(t, []PlacementEntry{{
		Stage:     "Playoffs",
		Placement: "5th–6th",
		Prize:     "$20,000",
		TeamName:  "Team Liquid",
	}}, placement.Placements)

	require.Equal(t, "$284,158", player.TotalWinnings)
}

func TestParsePlayerMissingHeader(t *testing.T) {
	doc := loadFixture(t, "team.html")
	_, err := ParsePlayer(doc, 4004)
	require.ErrorIs(t, err, ErrElementNotFound)
}
