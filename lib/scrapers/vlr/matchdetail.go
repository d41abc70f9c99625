package vlr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
)

// Match fetches a match page plus its performance and economy tabs.
// The two tabs are fetched concurrently and degrade independently: a
// missing or broken tab leaves the corresponding field nil and logs a
// warning, while the main page is authoritative and any failure there
// fails the whole call.
func (c *Client) Match(ctx context.Context, id int) (MatchDetail, error) {
	ctx, span := tracer.Start(ctx, "client:Match")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/%d", id))
	if err != nil {
		return MatchDetail{}, err
	}

	var (
		wg               sync.WaitGroup
		perfDoc, econDoc *goquery.Document
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		perfDoc = c.fetchMatchTab(ctx, id, "performance")
	}()
	go func() {
		defer wg.Done()
		econDoc = c.fetchMatchTab(ctx, id, "economy")
	}()
	wg.Wait()

	return ParseMatchDetail(ctx, doc, perfDoc, econDoc, id)
}

// ParseMatchDetail assembles a full match from already-fetched
// documents. A nil or unparsable tab document leaves the corresponding
// section nil; the main document is authoritative and its failure fails
// the call.
func ParseMatchDetail(ctx context.Context, doc, perfDoc, econDoc *goquery.Document, id int) (MatchDetail, error) {
	detail, err := ParseMatch(doc, id)
	if err != nil {
		return MatchDetail{}, err
	}

	if perfDoc != nil {
		performance, err := ParseMatchPerformance(ctx, perfDoc, &detail)
		if err != nil {
			slog.WarnContext(ctx, "failed to parse performance tab", "match", id, "err", err)
		} else {
			detail.Performance = performance
		}
	}
	if econDoc != nil {
		economy, err := ParseMatchEconomy(econDoc)
		if err != nil {
			slog.WarnContext(ctx, "failed to parse economy tab", "match", id, "err", err)
		} else {
			detail.Economy = economy
		}
	}

	return detail, nil
}

func (c *Client) fetchMatchTab(ctx context.Context, id int, tab string) *goquery.Document {
	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/%d/?tab=%s", id, tab))
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch match tab", "match", id, "tab", tab, "err", err)
		return nil
	}
	return doc
}

// matchColumn narrows a match page document to the content column all
// match modules live in.
func matchColumn(doc *goquery.Document) (*goquery.Selection, error) {
	column := doc.Find("div.col.mod-3").First()
	if column.Length() == 0 {
		return nil, elementNotFound("match page column (div.col.mod-3)")
	}
	return column, nil
}

// ParseMatch reads the main document of a match page. The performance
// and economy fields stay nil; see ParseMatchPerformance and
// ParseMatchEconomy for the tab documents.
func ParseMatch(doc *goquery.Document, id int) (MatchDetail, error) {
	column, err := matchColumn(doc)
	if err != nil {
		return MatchDetail{}, err
	}

	headerEl := column.Find("div.match-header").First()
	if headerEl.Length() == 0 {
		return MatchDetail{}, elementNotFound("match header")
	}
	header, err := parseMatchHeader(headerEl)
	if err != nil {
		return MatchDetail{}, err
	}

	var streams []MatchStream
	column.Find("div.match-streams div.match-streams-container div.match-streams-btn").
		Each(func(_ int, el *goquery.Selection) {
			streams = append(streams, MatchStream{
				Name: htmlutil.SelectText(el, "div.match-streams-btn-embed span"),
				Link: htmlutil.SelectAttr(el, "a.match-streams-btn-external", "href"),
			})
		})

	var vods []MatchStream
	column.Find("div.match-vods div.match-streams-container a").
		Each(func(_ int, el *goquery.Selection) {
			vods = append(vods, MatchStream{
				Name: htmlutil.FirstText(el),
				Link: el.AttrOr("href", ""),
			})
		})

	var games []MatchGame
	column.Find("div.vm-stats div.vm-stats-container div.vm-stats-game").
		Each(func(_ int, el *goquery.Selection) {
			// The "all" section aggregates the per-map tables and
			// only matters on the performance and economy tabs.
			if el.AttrOr("data-game-id", "") == "all" {
				return
			}
			games = append(games, parseGame(header, el))
		})

	return MatchDetail{
		ID:          id,
		Header:      header,
		Streams:     streams,
		Vods:        vods,
		Games:       games,
		HeadToHead:  parseHeadToHead(column),
		PastMatches: parsePastMatches(header, column),
	}, nil
}

func parseMatchHeader(header *goquery.Selection) (MatchHeader, error) {
	eventIconEl := header.Find("div.match-header-super a.match-header-event img").First()
	if eventIconEl.Length() == 0 {
		return MatchHeader{}, elementNotFound("event icon (match-header-event img)")
	}

	// The scheduled time is the one field downstream consumers can
	// never do without, so it is the one hard requirement here.
	dateEl := header.Find("div.match-header-super div.match-header-date div.moment-tz-convert").First()
	if dateEl.Length() == 0 {
		return MatchHeader{}, elementNotFound("match date element (moment-tz-convert)")
	}
	date, err := parseSiteTime(dateEl.AttrOr("data-utc-ts", ""), machineTimestampLayout)
	if err != nil {
		return MatchHeader{}, fmt.Errorf("parse match date: %w", err)
	}

	var notes []string
	header.Find("div.match-header-vs-note").Each(func(_ int, el *goquery.Selection) {
		notes = append(notes, htmlutil.FirstText(el))
	})
	status, format := "", ""
	if len(notes) > 0 {
		status = notes[0]
	}
	if len(notes) > 1 {
		format = notes[1]
	}

	eventHref := htmlutil.SelectAttr(header, "div.match-header-super a.match-header-event", "href")
	eventID, eventSlug, _ := splitIDSlug(eventHref, "/event/")

	patch := strings.TrimPrefix(
		htmlutil.SelectText(header, "div.match-header-super div.match-header-date > div:nth-child(3)"),
		"Patch ",
	)
	note := htmlutil.FirstText(
		header.Find("div.match-header-super div.match-header-date").First().
			Children().Not("div.moment-tz-convert").First(),
	)

	return MatchHeader{
		EventID:         eventID,
		EventSlug:       eventSlug,
		EventTitle:      htmlutil.SelectText(header, "div.match-header-super a.match-header-event div div:first-child"),
		EventSeriesName: htmlutil.SelectText(header, "div.match-header-super a.match-header-event div div.match-header-event-series"),
		EventIconURL:    normalizeAssetURL(eventIconEl.AttrOr("src", "")),
		Time:            date,
		Patch:           patch,
		Note:            note,
		Status:          status,
		Format:          format,
		Teams:           parseHeaderTeams(header),
	}, nil
}

// parseHeaderTeams assembles the two header teams positionally. The
// team links define how many teams there are; names, icons and scores
// are matched by position and left at their zero value when the page
// renders fewer of them (a TBD slot on an upcoming match, say).
func parseHeaderTeams(header *goquery.Selection) []MatchHeaderTeam {
	links := header.Find("div.match-header-vs a.match-header-link")
	icons := header.Find("div.match-header-vs a.match-header-link img")
	names := header.Find("div.match-header-vs a.match-header-link div.wf-title-med")

	scoreEls := header.
		Find("div.match-header-vs div.match-header-vs-score div.match-header-vs-score span").
		Not("span.match-header-vs-score-colon")
	scores := []*int{nil, nil}
	if scoreEls.Length() == 2 {
		scores[0] = intPtr(htmlutil.FirstText(scoreEls.Eq(0)))
		scores[1] = intPtr(htmlutil.FirstText(scoreEls.Eq(1)))
	}

	teams := make([]MatchHeaderTeam, 0, links.Length())
	links.Each(func(i int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		id, slug, _ := splitIDSlug(href, "/team/")
		team := MatchHeaderTeam{
			ID:   id,
			Slug: slug,
			Href: absoluteURL(href),
		}
		if i < icons.Length() {
			team.IconURL = normalizeAssetURL(icons.Eq(i).AttrOr("src", ""))
		}
		if i < names.Length() {
			team.Name = htmlutil.FirstText(names.Eq(i))
		}
		if i < len(scores) {
			team.Score = scores[i]
		}
		teams = append(teams, team)
	})
	return teams
}

func parseGame(header MatchHeader, game *goquery.Selection) MatchGame {
	var pickedBy *int
	picked := game.Find("div.vm-stats-game-header div.map span.picked").First()
	switch {
	case picked.HasClass("mod-1") && len(header.Teams) > 0:
		pickedBy = &header.Teams[0].ID
	case picked.HasClass("mod-2") && len(header.Teams) > 1:
		pickedBy = &header.Teams[1].ID
	}

	players := parseGamePlayers(game)

	var teams []MatchGameTeam
	game.Find("div.vm-stats-game-header div.team").Each(func(i int, teamEl *goquery.Selection) {
		team := MatchGameTeam{
			Name:     htmlutil.SelectText(teamEl, "div.team-name"),
			Score:    intPtr(htmlutil.SelectText(teamEl, "div.score")),
			ScoreT:   intPtr(htmlutil.SelectText(teamEl, "span.mod-t")),
			ScoreCT:  intPtr(htmlutil.SelectText(teamEl, "span.mod-ct")),
			IsWinner: teamEl.Find("div.score").First().HasClass("mod-win"),
		}
		if i < len(players) {
			team.Players = players[i]
		}
		teams = append(teams, team)
	})

	return MatchGame{
		Map:            htmlutil.SelectText(game, "div.vm-stats-game-header div.map div:first-child span"),
		Duration:       htmlutil.SelectText(game, "div.vm-stats-game-header div.map-duration"),
		PickedByTeamID: pickedBy,
		Teams:          teams,
		Rounds:         parseGameRounds(header, game),
	}
}

// parseGamePlayers reads the per-team scoreboard tables of a game. The
// two mod-overview tables appear in header team order; rows without a
// player cell are separators.
func parseGamePlayers(game *goquery.Selection) [2][]MatchGamePlayer {
	var players [2][]MatchGamePlayer
	game.Find("table.mod-overview").Each(func(i int, tbl *goquery.Selection) {
		if i >= len(players) {
			return
		}
		tbl.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			nameCol := row.Find("td.mod-player").First()
			if nameCol.Length() == 0 {
				return
			}
			players[i] = append(players[i], parseGamePlayer(row, nameCol))
		})
	})
	return players
}

func parseGamePlayer(row, nameCol *goquery.Selection) MatchGamePlayer {
	href := htmlutil.SelectAttr(nameCol, "a", "href")
	id, slug, _ := splitIDSlug(href, "/player/")

	cells := row.Find("td.mod-stat")
	// Per-stat cells hold a T side, a CT side and a "both" span; the
	// scoreboard columns here are the aggregated "both" values.
	stat := func(i int) string {
		return htmlutil.SelectText(cells.Eq(i), "span.side.mod-both")
	}

	return MatchGamePlayer{
		ID:          id,
		Slug:        slug,
		Name:        htmlutil.SelectText(nameCol, "a div:first-child"),
		Nation:      strings.TrimSpace(nameCol.Find("i.flag").First().AttrOr("title", "")),
		Agent:       row.Find("td.mod-agents div span img").First().AttrOr("title", ""),
		Rating:      floatPtr(stat(0)),
		ACS:         intPtr(stat(1)),
		Kills:       intPtr(stat(2)),
		Deaths:      intPtr(stat(3)),
		Assists:     intPtr(stat(4)),
		KDDiff:      intPtr(stat(5)),
		KAST:        pctPtr(stat(6)),
		ADR:         floatPtr(stat(7)),
		HSPercent:   pctPtr(stat(8)),
		FirstKills:  intPtr(stat(9)),
		FirstDeaths: intPtr(stat(10)),
		FKDiff:      intPtr(stat(11)),
	}
}

// parseGameRounds reads the round strip of one game. The winner of a
// round is the header team at the same position as the filled square;
// rounds with no filled square (not yet played) are omitted.
func parseGameRounds(header MatchHeader, game *goquery.Selection) []MatchGameRound {
	var rounds []MatchGameRound
	game.Find("div.vlr-rounds div.vlr-rounds-row").Each(func(_ int, row *goquery.Selection) {
		row.Find("div.vlr-rounds-row-col").Each(func(i int, col *goquery.Selection) {
			if i == 0 || col.HasClass("mod-spacing") {
				return
			}
			winnerIndex := -1
			winningSide := "ct"
			col.Find("div.rnd-sq").Each(func(sq int, sqEl *goquery.Selection) {
				if winnerIndex == -1 && sqEl.HasClass("mod-win") {
					winnerIndex = sq
					if sqEl.HasClass("mod-t") {
						winningSide = "t"
					}
				}
			})
			if winnerIndex < 0 || winnerIndex >= len(header.Teams) {
				return
			}
			rounds = append(rounds, MatchGameRound{
				Round:         atoiOr(htmlutil.SelectText(col, "div.rnd-num"), 0),
				WinningTeamID: header.Teams[winnerIndex].ID,
				WinningSide:   winningSide,
			})
		})
	})
	return rounds
}

// parseHeadToHead reads prior meetings of the two teams. Entries
// missing an id or either score are skipped; the module is
// informational and partial results are fine.
func parseHeadToHead(column *goquery.Selection) []HeadToHeadMatch {
	var matches []HeadToHeadMatch
	column.Find("div.match-h2h a.wf-module-item.mod-h2h").Each(func(_ int, el *goquery.Selection) {
		href := el.AttrOr("href", "")
		id, slug, err := splitIDSlug(href, "/")
		if err != nil {
			return
		}

		rf := el.Find("span.rf").First()
		team1Score := intPtr(htmlutil.FirstText(rf))
		team2Score := intPtr(htmlutil.SelectText(el, "span.ra"))
		if team1Score == nil || team2Score == nil {
			return
		}
		winnerIndex := 1
		if rf.HasClass("mod-win") {
			winnerIndex = 0
		}

		matches = append(matches, HeadToHeadMatch{
			MatchID:      id,
			MatchSlug:    slug,
			EventName:    htmlutil.SelectText(el, "div.match-h2h-matches-event-name"),
			EventSeries:  htmlutil.SelectText(el, "div.match-h2h-matches-event-series"),
			EventIconURL: normalizeAssetURL(htmlutil.SelectAttr(el, "div.match-h2h-matches-event img", "src")),
			Team1Score:   *team1Score,
			Team2Score:   *team2Score,
			WinnerIndex:  winnerIndex,
			Date:         htmlutil.SelectText(el, "div.match-h2h-matches-date"),
		})
	})
	return matches
}

// parsePastMatches reads the recent-matches card of each header team.
// Cards appear in header team order.
func parsePastMatches(header MatchHeader, column *goquery.Selection) []TeamPastMatches {
	var all []TeamPastMatches
	column.Find("div.match-histories").Each(func(i int, card *goquery.Selection) {
		teamID := 0
		if i < len(header.Teams) {
			teamID = header.Teams[i].ID
		}

		var matches []PastMatch
		card.Find("a.match-histories-item").Each(func(_ int, el *goquery.Selection) {
			href := el.AttrOr("href", "")
			id, slug, err := splitIDSlug(href, "/")
			if err != nil {
				return
			}
			scoreFor := intPtr(htmlutil.SelectText(el, "span.rf"))
			scoreAgainst := intPtr(htmlutil.SelectText(el, "span.ra"))
			if scoreFor == nil || scoreAgainst == nil {
				return
			}
			matches = append(matches, PastMatch{
				MatchID:      id,
				MatchSlug:    slug,
				OpponentName: htmlutil.SelectText(el, "span.match-histories-item-opponent-name"),
				OpponentLogo: normalizeAssetURL(htmlutil.SelectAttr(el, "img.match-histories-item-opponent-logo", "src")),
				ScoreFor:     *scoreFor,
				ScoreAgainst: *scoreAgainst,
				IsWin:        el.HasClass("mod-win"),
				Date:         htmlutil.SelectText(el, "div.match-histories-item-date"),
			})
		})
		all = append(all, TeamPastMatches{TeamID: teamID, Matches: matches})
	})
	return all
}
