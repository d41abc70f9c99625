package vlr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMatchHistory(t *testing.T) {
	doc := loadFixture(t, "history.html")
	items, err := ParseMatchHistory(doc)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	require.Equal(t, 510122, first.ID)
	require.Equal(t, "sentinels-vs-100-thieves-champions-tour-2025-americas-stage-1-w1", first.Slug)
	require.Equal(t, "https://owcdn.net/img/americas.png", first.LeagueIconURL)
	require.Equal(t, "Champions Tour 2025: Americas Stage 1", first.LeagueText)
	require.Equal(t, "Regular Season: Week 1", first.LeagueSeriesText)
	require.Len(t, first.Teams, 2)
	require.Equal(t, "Sentinels", first.Teams[0].Name)
	require.Equal(t, "SEN", first.Teams[0].Tag)
	require.Equal(t, 2, *first.Teams[0].Score)
	require.Equal(t, "100 Thieves", first.Teams[1].Name)
	require.Equal(t, 1, *first.Teams[1].Score)
	require.Equal(t, "https://www.vlr.gg/img/base/ph/sil.png", first.Teams[1].LogoURL)
	require.Equal(t, []string{"Map 1", "Map 2"}, first.Vods)
	require.NotNil(t, first.Time)
	require.Equal(t, time.Date(2025, time.March, 22, 23, 0, 0, 0, time.UTC), *first.Time)

	// no clock on the second row, so no timestamp
	second := items[1]
	require.Nil(t, second.Time)
	require.Equal(t, "LEVIATÁN", second.Teams[1].Name)
	require.Equal(t, 0, *second.Teams[0].Score)
	require.Empty(t, second.Vods)
}
