package vlr

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
	"vlrscraper/lib/textutil"
)

// Player fetches a player profile. timespan selects the window of the
// agent statistics table; the zero value falls back to Timespan60Days,
// matching what the site serves by default.
func (c *Client) Player(ctx context.Context, id int, timespan AgentStatsTimespan) (Player, error) {
	ctx, span := tracer.Start(ctx, "client:Player")
	defer span.End()

	if timespan == "" {
		timespan = Timespan60Days
	}
	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/player/%d/?timespan=%s", id, timespan))
	if err != nil {
		return Player{}, err
	}
	return ParsePlayer(doc, id)
}

// ParsePlayer reads a player profile document. Profile modules are
// located by their heading text rather than position, so a missing
// module (no news, no past teams) degrades to an empty slice.
func ParsePlayer(doc *goquery.Document, id int) (Player, error) {
	info, err := parsePlayerHeader(doc, id)
	if err != nil {
		return Player{}, err
	}
	return Player{
		Info:            info,
		CurrentTeams:    parsePlayerTeams(headingCard(doc, "Current Teams")),
		PastTeams:       parsePlayerTeams(headingCard(doc, "Past Teams")),
		AgentStats:      parsePlayerAgentStats(doc),
		News:            parsePlayerNews(headingCard(doc, "Recent News")),
		EventPlacements: parsePlayerPlacements(doc),
		TotalWinnings:   parseTotalWinnings(doc),
	}, nil
}

func parsePlayerHeader(doc *goquery.Document, id int) (PlayerInfo, error) {
	header := doc.Find("div.player-header").First()
	if header.Length() == 0 {
		return PlayerInfo{}, elementNotFound("player header")
	}
	return PlayerInfo{
		ID:          id,
		Name:        htmlutil.SelectText(header, "h1.wf-title"),
		RealName:    htmlutil.SelectText(header, "h2.player-real-name"),
		AvatarURL:   normalizeAssetURL(htmlutil.SelectAttr(header, "div.wf-avatar img", "src")),
		Country:     htmlutil.JoinedText(header, "div.ge-text-light", " "),
		CountryCode: htmlutil.PrefixedClass(header, "div.ge-text-light i.flag", "mod-"),
		Socials:     parseSocials(header.Find("a")),
	}, nil
}

// headingCard locates a profile module by its heading text and returns
// the card that follows the heading. Returns an empty selection when
// the profile has no such module.
func headingCard(doc *goquery.Document, title string) *goquery.Selection {
	var card *goquery.Selection
	doc.Find("div.wf-label.mod-large").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !textutil.ContainsName(htmlutil.JoinedTextOf(label, " "), title) {
			return true
		}
		card = label.Next()
		return false
	})
	if card == nil {
		return doc.Selection.Slice(0, 0)
	}
	return card
}

func parsePlayerTeams(card *goquery.Selection) []PlayerTeam {
	var teams []PlayerTeam
	card.Find("a.wf-module-item").Each(func(_ int, item *goquery.Selection) {
		href := item.AttrOr("href", "")
		id, slug, err := splitIDSlug(href, "/team/")
		if err != nil {
			return
		}
		teams = append(teams, PlayerTeam{
			ID:      id,
			Slug:    slug,
			Href:    absoluteURL(href),
			Name:    htmlutil.SelectText(item, "div.team-name"),
			LogoURL: normalizeAssetURL(htmlutil.SelectAttr(item, "img", "src")),
			Role:    htmlutil.JoinedText(item, "div.ge-text-light", " "),
		})
	})
	return teams
}

// parsePlayerAgentStats reads the per-agent statistics table. Agent
// rows have 17 columns; anything shorter is a header or separator row
// and is skipped.
func parsePlayerAgentStats(doc *goquery.Document) []PlayerAgentStats {
	var stats []PlayerAgentStats
	doc.Find("table.wf-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 17 {
			return
		}
		agentEl := cells.Eq(0).Find("img").First()
		agent := agentEl.AttrOr("title", "")
		if agent == "" {
			agent = agentEl.AttrOr("alt", "")
		}
		if agent == "" {
			return
		}

		usageCount, usagePercent := splitAgentUsage(htmlutil.JoinedTextOf(cells.Eq(1), " "))
		cellInt := func(i int) int {
			return atoiOr(htmlutil.FirstText(cells.Eq(i)), 0)
		}
		cellFloat := func(i int) float64 {
			if f := floatPtr(htmlutil.FirstText(cells.Eq(i))); f != nil {
				return *f
			}
			return 0
		}
		kast := 0.0
		if f := pctPtr(htmlutil.FirstText(cells.Eq(7))); f != nil {
			kast = *f
		}

		stats = append(stats, PlayerAgentStats{
			Agent:        agent,
			UsageCount:   usageCount,
			UsagePercent: usagePercent,
			RoundsPlayed: cellInt(2),
			Rating:       cellFloat(3),
			ACS:          cellFloat(4),
			KD:           cellFloat(5),
			ADR:          cellFloat(6),
			KAST:         kast,
			KPR:          cellFloat(8),
			APR:          cellFloat(9),
			FKPR:         cellFloat(10),
			FDPR:         cellFloat(11),
			Kills:        cellInt(12),
			Deaths:       cellInt(13),
			Assists:      cellInt(14),
			FirstKills:   cellInt(15),
			FirstDeaths:  cellInt(16),
		})
	})
	return stats
}

// splitAgentUsage splits the "(95) 20%" usage cell into the raw count
// and the usage fraction. Either half may be missing on sparse rows.
func splitAgentUsage(text string) (int, float64) {
	countText, pctText, found := strings.Cut(text, ")")
	if !found {
		return 0, 0
	}
	count := atoiOr(strings.TrimPrefix(strings.TrimSpace(countText), "("), 0)
	pct := 0.0
	if f := pctPtr(pctText); f != nil {
		pct = *f
	}
	return count, pct
}

func parsePlayerNews(card *goquery.Selection) []NewsItem {
	var news []NewsItem
	card.Find("a.wf-module-item").Each(func(_ int, item *goquery.Selection) {
		href := item.AttrOr("href", "")
		if href == "" {
			return
		}
		news = append(news, NewsItem{
			Title: htmlutil.FirstText(item),
			Date:  htmlutil.LastTextOf(item),
			URL:   absoluteURL(href),
		})
	})
	return news
}

func parsePlayerPlacements(doc *goquery.Document) []EventPlacement {
	var placements []EventPlacement
	doc.Find("a.player-event-item").Each(func(_ int, a *goquery.Selection) {
		teamName := htmlutil.SelectText(a, "div.player-event-item-team")
		placement, ok := parsePlacementItem(a, "span.player-event-item-series", teamName)
		if ok {
			placements = append(placements, placement)
		}
	})
	return placements
}
