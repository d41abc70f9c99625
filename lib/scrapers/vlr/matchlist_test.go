package vlr

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestParseEventMatchlist(t *testing.T) {
	doc := loadFixture(t, "matchlist.html")
	items, err := ParseEventMatchlist(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	require.Equal(t, 530235, first.ID)
	require.Equal(t, "team-liquid-vs-karmine-corp-champions-tour-2025-emea-kickoff-ko", first.Slug)
	require.NotNil(t, first.Time)
	require.Equal(t, time.Date(2025, time.January, 4, 15, 0, 0, 0, time.UTC), *first.Time)
	require.Len(t, first.Teams, 2)
	require.Equal(t, "Team Liquid", first.Teams[0].Name)
	require.True(t, first.Teams[0].IsWinner)
	require.NotNil(t, first.Teams[0].Score)
	require.Equal(t, 2, *first.Teams[0].Score)
	require.False(t, first.Teams[1].IsWinner)
	require.Equal(t, 0, *first.Teams[1].Score)
	require.Equal(t, []string{"Youtube"}, first.Tags)
	require.Equal(t, "Champions Tour 2025: EMEA Kickoff", first.EventText)
	require.Equal(t, "Group Stage: Round 1", first.EventSeriesText)

	// a row with no usable clock keeps the nil timestamp
	second := items[1]
	require.Nil(t, second.Time)
	require.Nil(t, second.Teams[0].Score)
	require.Nil(t, second.Teams[1].Score)

	// rows after the second heading inherit the new date
	third := items[2]
	require.NotNil(t, third.Time)
	require.Equal(t, time.Date(2025, time.February, 2, 1, 30, 0, 0, time.UTC), *third.Time)
	require.Equal(t, []string{"Youtube", "Twitch"}, third.Tags)
}

func TestParseEventMatchlistBadHeading(t *testing.T) {
	raw := `<div id="wrapper">
		<div class="wf-label mod-large">sometime soon</div>
		<div class="wf-card"><a href="/1/x" class="match-item"></a></div>
	</div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)

	_, err = ParseEventMatchlist(context.Background(), doc)
	require.Error(t, err)
}
