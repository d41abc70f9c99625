package vlr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAssetURL(t *testing.T) {
	require.Equal(t, "https://owcdn.net/img/x.png", normalizeAssetURL("//owcdn.net/img/x.png"))
	require.Equal(t, "https://www.vlr.gg/img/x.png", normalizeAssetURL("/img/x.png"))
	require.Equal(t, "https://cdn.example.com/x.png", normalizeAssetURL("https://cdn.example.com/x.png"))
	require.Empty(t, normalizeAssetURL(""))
}

func TestSplitIDSlug(t *testing.T) {
	id, slug, err := splitIDSlug("/event/2501/champions-tour-2025-emea-kickoff", "/event/")
	require.NoError(t, err)
	require.Equal(t, 2501, id)
	require.Equal(t, "champions-tour-2025-emea-kickoff", slug)

	// stage suffixes after the slug are dropped
	id, slug, err = splitIDSlug("/event/2501/champions-tour-2025-emea-kickoff/playoffs", "/event/")
	require.NoError(t, err)
	require.Equal(t, 2501, id)
	require.Equal(t, "champions-tour-2025-emea-kickoff", slug)

	_, _, err = splitIDSlug("/event/tba/placeholder", "/event/")
	require.Error(t, err)

	_, _, err = splitIDSlug("", "/event/")
	require.ErrorIs(t, err, ErrElementNotFound)
}

func TestInferPlatform(t *testing.T) {
	cases := map[string]string{
		"https://twitter.com/TeamLiquid":   "twitter",
		"https://x.com/TeamLiquid":         "twitter",
		"https://www.twitch.tv/nats":       "twitch",
		"https://youtu.be/abc":             "youtube",
		"https://www.instagram.com/liquid": "instagram",
		"https://discord.gg/liquid":        "discord",
		"https://www.teamliquid.com":       "teamliquid.com",
	}
	for link, platform := range cases {
		require.Equal(t, platform, inferPlatform(link), link)
	}
}

func TestParseSiteTime(t *testing.T) {
	parsed, err := parseSiteTime("Sat, Jan 4, 2025", listDateLayout, listDateLayoutAbbrev)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = parseSiteTime("Sun, February 2, 2025", listDateLayout, listDateLayoutAbbrev)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC), parsed)

	_, err = parseSiteTime("sometime soon", listDateLayout, listDateLayoutAbbrev)
	require.Error(t, err)
}

func TestParseEventStatus(t *testing.T) {
	require.Equal(t, EventStatusOngoing, ParseEventStatus("Ongoing"))
	require.Equal(t, EventStatusUpcoming, ParseEventStatus(" upcoming "))
	require.Equal(t, EventStatusCompleted, ParseEventStatus("completed"))
	require.Equal(t, EventStatusUnknown, ParseEventStatus("postponed"))
	require.Equal(t, EventStatusUnknown, ParseEventStatus(""))
}
