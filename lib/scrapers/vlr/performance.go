package vlr

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"

	"vlrscraper/lib/htmlutil"
)

// buildPlayerNameIndex maps scoreboard player names to their ids so
// the performance tables, which only print names, can be joined back.
// Two players with the same display name collide; the later one wins.
func buildPlayerNameIndex(detail *MatchDetail) map[string]int {
	index := make(map[string]int)
	for _, game := range detail.Games {
		for _, team := range game.Teams {
			for _, player := range team.Players {
				if player.ID != 0 && player.Name != "" {
					index[player.Name] = player.ID
				}
			}
		}
	}
	return index
}

// resolvePlayerID looks a printed name up in the scoreboard index. An
// unresolved name yields UnknownPlayerID and a warning naming the
// closest scoreboard name, which is usually enough to spot an encoding
// or whitespace mismatch.
func resolvePlayerID(ctx context.Context, index map[string]int, name string) int {
	if id, ok := index[name]; ok {
		return id
	}
	closest, similarity := "", 0.0
	for candidate := range index {
		s := matchr.JaroWinkler(name, candidate, true)
		if s > similarity {
			closest, similarity = candidate, s
		}
	}
	slog.WarnContext(
		ctx, "could not resolve player name on performance tab",
		"name", name,
		"closest", closest,
	)
	return UnknownPlayerID
}

// findAllGameSection returns the aggregated "all maps" section of a
// stats tab.
func findAllGameSection(column *goquery.Selection) (*goquery.Selection, error) {
	var section *goquery.Selection
	column.Find("div.vm-stats div.vm-stats-game").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.AttrOr("data-game-id", "") == "all" {
			section = el
			return false
		}
		return true
	})
	if section == nil {
		return nil, elementNotFound("aggregated all-maps section")
	}
	return section, nil
}

// ParseMatchPerformance reads the performance tab of a match: the
// killer/victim matrix and the advanced stats table, both joined back
// to player ids via the scoreboard names in detail.
func ParseMatchPerformance(ctx context.Context, doc *goquery.Document, detail *MatchDetail) (*MatchPerformance, error) {
	column, err := matchColumn(doc)
	if err != nil {
		return nil, err
	}
	allGame, err := findAllGameSection(column)
	if err != nil {
		return nil, err
	}
	index := buildPlayerNameIndex(detail)

	matrixTable := allGame.Find("table.mod-normal").First()
	if matrixTable.Length() == 0 {
		return nil, elementNotFound("kill matrix table (table.mod-normal)")
	}
	killMatrix := parseKillMatrix(ctx, matrixTable, index)

	advTable := allGame.Find("table.mod-adv-stats").First()
	if advTable.Length() == 0 {
		return nil, elementNotFound("advanced stats table (table.mod-adv-stats)")
	}
	playerStats := parseAdvancedStats(ctx, advTable, index)

	return &MatchPerformance{
		KillMatrix:  killMatrix,
		PlayerStats: playerStats,
	}, nil
}

// parseKillMatrix reads the killer/victim grid. The first row names
// the victims; each later row is one killer with a [kills, deaths,
// diff] cell per victim.
func parseKillMatrix(ctx context.Context, table *goquery.Selection, index map[string]int) []KillMatrixEntry {
	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		return nil
	}

	var victimIDs []int
	rows.Eq(0).Find("td").Each(func(i int, cell *goquery.Selection) {
		if i == 0 {
			// empty corner cell
			return
		}
		victimIDs = append(victimIDs, resolvePlayerID(ctx, index, htmlutil.SelectText(cell, "div.team > div")))
	})

	var entries []KillMatrixEntry
	for r := 1; r < rows.Length(); r++ {
		cells := rows.Eq(r).Find("td")
		if cells.Length() == 0 {
			continue
		}
		killerID := resolvePlayerID(ctx, index, htmlutil.SelectText(cells.Eq(0), "div.team > div"))

		for ci := 1; ci < cells.Length(); ci++ {
			squares := cells.Eq(ci).Find("div.stats-sq")
			victimID := UnknownPlayerID
			if ci-1 < len(victimIDs) {
				victimID = victimIDs[ci-1]
			}
			entries = append(entries, KillMatrixEntry{
				KillerID: killerID,
				VictimID: victimID,
				Kills:    atoiOr(htmlutil.FirstText(squares.Eq(0)), 0),
				Deaths:   atoiOr(htmlutil.FirstText(squares.Eq(1)), 0),
			})
		}
	}
	return entries
}

// parseAdvancedStats reads the multikill/clutch table. Player rows
// have exactly 14 cells; shorter rows are team separators and are
// skipped.
func parseAdvancedStats(ctx context.Context, table *goquery.Selection, index map[string]int) []PlayerPerformance {
	var stats []PlayerPerformance
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 14 {
			return
		}
		name := htmlutil.SelectText(cells.Eq(0), "div.team > div")
		if name == "" {
			return
		}

		cell := func(i int) int {
			return atoiOr(htmlutil.FirstText(cells.Eq(i)), 0)
		}
		stats = append(stats, PlayerPerformance{
			PlayerID:   resolvePlayerID(ctx, index, name),
			PlayerName: name,
			Kills2:     cell(2),
			Kills3:     cell(3),
			Kills4:     cell(4),
			Kills5:     cell(5),
			Clutch1v1:  cell(6),
			Clutch1v2:  cell(7),
			Clutch1v3:  cell(8),
			Clutch1v4:  cell(9),
			Clutch1v5:  cell(10),
			EconRating: cell(11),
			Plants:     cell(12),
			Defuses:    cell(13),
		})
	})
	return stats
}

// ParseMatchEconomy reads the economy tab of a match.
func ParseMatchEconomy(doc *goquery.Document) (*MatchEconomy, error) {
	column, err := matchColumn(doc)
	if err != nil {
		return nil, err
	}
	allGame, err := findAllGameSection(column)
	if err != nil {
		return nil, err
	}
	table := allGame.Find("table.mod-econ").First()
	if table.Length() == 0 {
		return nil, elementNotFound("economy table (table.mod-econ)")
	}

	var teams []TeamEconomy
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		// Team rows have 6 cells: name, pistols won, then one
		// "total (won)" cell per buy type.
		if cells.Length() < 6 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		if name == "" {
			return
		}

		sq := func(i int) string {
			return htmlutil.JoinedTextOf(cells.Eq(i).Find("div.stats-sq").First(), " ")
		}
		ecoCount, ecoWon := splitRoundsWon(sq(2))
		semiEcoCount, semiEcoWon := splitRoundsWon(sq(3))
		semiBuyCount, semiBuyWon := splitRoundsWon(sq(4))
		fullBuyCount, fullBuyWon := splitRoundsWon(sq(5))

		teams = append(teams, TeamEconomy{
			Name:         name,
			PistolWon:    atoiOr(sq(1), 0),
			EcoCount:     ecoCount,
			EcoWon:       ecoWon,
			SemiEcoCount: semiEcoCount,
			SemiEcoWon:   semiEcoWon,
			SemiBuyCount: semiBuyCount,
			SemiBuyWon:   semiBuyWon,
			FullBuyCount: fullBuyCount,
			FullBuyWon:   fullBuyWon,
		})
	})
	return &MatchEconomy{Teams: teams}, nil
}

// splitRoundsWon splits a "9 (3)" style cell into its total and won
// counts. Cells without the parenthesized part yield zeros.
func splitRoundsWon(text string) (int, int) {
	total, won, found := strings.Cut(text, "(")
	if !found {
		return 0, 0
	}
	won = strings.TrimSuffix(strings.TrimSpace(won), ")")
	return atoiOr(total, 0), atoiOr(won, 0)
}
