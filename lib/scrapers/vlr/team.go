package vlr

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
	"vlrscraper/lib/textutil"
)

// Team fetches a team profile: header, roster and event placements.
func (c *Client) Team(ctx context.Context, id int) (Team, error) {
	ctx, span := tracer.Start(ctx, "client:Team")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/team/%d", id))
	if err != nil {
		return Team{}, err
	}
	return ParseTeam(doc, id)
}

// ParseTeam reads a team profile document. The id comes from the
// caller since the page itself only links outward.
func ParseTeam(doc *goquery.Document, id int) (Team, error) {
	info, err := parseTeamHeader(doc, id)
	if err != nil {
		return Team{}, err
	}
	return Team{
		Info:            info,
		Roster:          parseTeamRoster(doc),
		EventPlacements: parseTeamPlacements(doc),
		TotalWinnings:   parseTotalWinnings(doc),
	}, nil
}

func parseTeamHeader(doc *goquery.Document, id int) (TeamInfo, error) {
	header := doc.Find("div.team-header").First()
	if header.Length() == 0 {
		return TeamInfo{}, elementNotFound("team header")
	}
	return TeamInfo{
		ID:          id,
		Name:        htmlutil.SelectText(header, "h1.wf-title"),
		Tag:         htmlutil.SelectText(header, "h2.wf-title.team-header-tag"),
		LogoURL:     normalizeAssetURL(htmlutil.SelectAttr(header, "div.team-header-logo img", "src")),
		Country:     htmlutil.JoinedText(header, "div.team-header-country", " "),
		CountryCode: htmlutil.PrefixedClass(header, "div.team-header-country i.flag", "mod-"),
		Socials:     parseSocials(header.Find("div.team-header-links a")),
	}, nil
}

// parseSocials keeps the links of a profile header that carry both an
// href and a visible label; decorative anchors are dropped.
func parseSocials(links *goquery.Selection) []Social {
	var socials []Social
	links.Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		text := htmlutil.JoinedTextOf(a, " ")
		if href == "" || text == "" {
			return
		}
		socials = append(socials, Social{
			Platform: inferPlatform(href),
			URL:      href,
			Text:     text,
		})
	})
	return socials
}

// parseTeamRoster reads the roster cards, players and staff alike.
// Cards without a player link are decorative and skipped.
func parseTeamRoster(doc *goquery.Document) []TeamRosterMember {
	var roster []TeamRosterMember
	doc.Find("div.team-roster-item").Each(func(_ int, item *goquery.Selection) {
		href := htmlutil.SelectAttr(item, "a", "href")
		id, slug, err := splitIDSlug(href, "/player/")
		if err != nil {
			return
		}
		role := htmlutil.JoinedText(item, "div.team-roster-item-name-role", " ")
		if role == "" {
			role = "player"
		}
		roster = append(roster, TeamRosterMember{
			ID:          id,
			Slug:        slug,
			Href:        absoluteURL(href),
			Alias:       htmlutil.JoinedText(item, "div.team-roster-item-name-alias", " "),
			RealName:    htmlutil.JoinedText(item, "div.team-roster-item-name-real", " "),
			CountryCode: htmlutil.PrefixedClass(item, "i.flag", "mod-"),
			AvatarURL:   normalizeAssetURL(htmlutil.SelectAttr(item, "div.team-roster-item-img img", "src")),
			Role:        role,
			IsCaptain:   item.Find("i.fa-star").Length() > 0,
		})
	})
	return roster
}

func parseTeamPlacements(doc *goquery.Document) []EventPlacement {
	var placements []EventPlacement
	doc.Find("a.team-event-item").Each(func(_ int, a *goquery.Selection) {
		placement, ok := parsePlacementItem(a, "span.team-event-item-series", "")
		if ok {
			placements = append(placements, placement)
		}
	})
	return placements
}

// parsePlacementItem reads one event card of a placements module. The
// series line reads "Stage – Placement"; cards without the en-dash
// carry the whole line as the stage.
func parsePlacementItem(a *goquery.Selection, seriesSelector, teamName string) (EventPlacement, bool) {
	href := a.AttrOr("href", "")
	eventID, eventSlug, err := splitIDSlug(href, "/event/")
	if err != nil {
		return EventPlacement{}, false
	}

	stage := htmlutil.JoinedText(a, seriesSelector, " ")
	placement := ""
	if s, p, found := textutil.CutName(stage, "–"); found {
		stage, placement = s, p
	}

	prize := ""
	a.Find("span[style]").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if !textutil.ContainsName(span.AttrOr("style", ""), "font-weight") {
			return true
		}
		prize = htmlutil.JoinedTextOf(span, " ")
		return false
	})

	return EventPlacement{
		EventID:   eventID,
		EventSlug: eventSlug,
		EventHref: absoluteURL(href),
		EventName: htmlutil.SelectText(a, "div.text-of"),
		Year:      htmlutil.JoinedTextOf(a.Children().Last(), " "),
		Placements: []PlacementEntry{{
			Stage:     stage,
			Placement: placement,
			Prize:     prize,
			TeamName:  teamName,
		}},
	}, true
}

// parseTotalWinnings finds the "Total Winnings" module label and reads
// the amount from its next sibling.
func parseTotalWinnings(doc *goquery.Document) string {
	winnings := ""
	doc.Find("div.wf-module-label").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !textutil.ContainsName(htmlutil.JoinedTextOf(label, " "), "Total Winnings") {
			return true
		}
		winnings = htmlutil.JoinedTextOf(label.Next(), " ")
		return false
	})
	return winnings
}

// TeamTransactions fetches the roster transaction log of a team.
func (c *Client) TeamTransactions(ctx context.Context, teamID int) ([]TeamTransaction, error) {
	ctx, span := tracer.Start(ctx, "client:TeamTransactions")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/team/transactions/%d/", teamID))
	if err != nil {
		return nil, err
	}
	return ParseTeamTransactions(doc), nil
}

// ParseTeamTransactions reads the transaction rows of a team's
// transactions page. The site prints "Unknown" for undated entries;
// those rows keep a nil date.
func ParseTeamTransactions(doc *goquery.Document) []TeamTransaction {
	var transactions []TeamTransaction
	doc.Find("tr.txn-item").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")

		var date *time.Time
		if text := htmlutil.JoinedTextOf(cells.Eq(0), ""); text != "" && text != "Unknown" {
			if parsed, err := parseSiteTime(text, historyDateLayout); err == nil {
				date = &parsed
			}
		}

		playerID, playerSlug, playerAlias := 0, "", ""
		playerLink := row.Find(`a[href^="/player/"]`).First()
		if href, ok := playerLink.Attr("href"); ok {
			playerID, playerSlug, _ = splitIDSlug(href, "/player/")
			playerAlias = htmlutil.JoinedTextOf(playerLink, " ")
		}

		transactions = append(transactions, TeamTransaction{
			Date:           date,
			Action:         htmlutil.JoinedText(row, "td.txn-item-action", " "),
			PlayerID:       playerID,
			PlayerSlug:     playerSlug,
			PlayerAlias:    playerAlias,
			PlayerRealName: htmlutil.JoinedText(row, "div.ge-text-light", " "),
			PlayerCountry:  htmlutil.PrefixedClass(row, "i.flag", "mod-"),
			Position:       htmlutil.JoinedTextOf(cells.Eq(4), " "),
			ReferenceURL:   htmlutil.SelectAttr(cells.Last(), "a[href]", "href"),
		})
	})
	return transactions
}
