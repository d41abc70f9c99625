package vlr

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseMatchPerformance(t *testing.T) {
	detail, err := ParseMatch(loadFixture(t, "match.html"), 530300)
	require.NoError(t, err)

	doc := loadFixture(t, "performance.html")
	performance, err := ParseMatchPerformance(context.Background(), doc, &detail)
	require.NoError(t, err)

	require.Len(t, performance.KillMatrix, 6)
	require.Equal(t, KillMatrixEntry{
		KillerID: 4004,
		VictimID: 12345,
		Kills:    12,
		Deaths:   8,
	}, performance.KillMatrix[0])
	// "Shin" is not on the scoreboard and cannot be resolved
	require.Equal(t, UnknownPlayerID, performance.KillMatrix[2].VictimID)
	require.Equal(t, 7, performance.KillMatrix[2].Kills)
	require.Equal(t, 29873, performance.KillMatrix[3].KillerID)
	require.Equal(t, 0, performance.KillMatrix[5].Kills)
	require.Equal(t, 0, performance.KillMatrix[5].Deaths)

	want := []PlayerPerformance{
		{
			PlayerID:   4004,
			PlayerName: "nAts",
			Kills2:     3,
			Kills3:     1,
			Clutch1v1:  2,
			Clutch1v2:  1,
			EconRating: 58,
			Plants:     4,
			Defuses:    1,
		},
		{
			PlayerID:   12345,
			PlayerName: "Wailers",
			Kills2:     2,
			Clutch1v1:  1,
			EconRating: 44,
			Plants:     6,
		},
	}
	if diff := cmp.Diff(want, performance.PlayerStats); diff != "" {
		t.Errorf("player stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlayerNameIndexDeterministic(t *testing.T) {
	detail, err := ParseMatch(loadFixture(t, "match.html"), 530300)
	require.NoError(t, err)

	first := buildPlayerNameIndex(&detail)
	second := buildPlayerNameIndex(&detail)
	require.Equal(t, 4004, first["nAts"])
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("index mismatch between runs (-first +second):\n%s", diff)
	}
}

func TestParseMatchEconomy(t *testing.T) {
	doc := loadFixture(t, "economy.html")
	economy, err := ParseMatchEconomy(doc)
	require.NoError(t, err)

	want := &MatchEconomy{Teams: []TeamEconomy{
		{
			Name:         "Team Liquid",
			PistolWon:    3,
			EcoCount:     9,
			EcoWon:       3,
			SemiEcoCount: 11,
			SemiEcoWon:   6,
			SemiBuyCount: 14,
			SemiBuyWon:   8,
			FullBuyCount: 28,
			FullBuyWon:   17,
		},
		{
			Name:         "Karmine Corp",
			PistolWon:    2,
			EcoCount:     10,
			EcoWon:       2,
			SemiEcoCount: 9,
			SemiEcoWon:   4,
			SemiBuyCount: 16,
			SemiBuyWon:   7,
			FullBuyCount: 27,
			FullBuyWon:   14,
		},
	}}
	if diff := cmp.Diff(want, economy); diff != "" {
		t.Errorf("economy mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMatchPerformanceMissingTables(t *testing.T) {
	// the main match page has no performance tables in its "all" section
	detail, err := ParseMatch(loadFixture(t, "match.html"), 530300)
	require.NoError(t, err)

	_, err = ParseMatchPerformance(context.Background(), loadFixture(t, "match.html"), &detail)
	require.ErrorIs(t, err, ErrElementNotFound)
}
