package vlr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
)

// PlayerMatchlist fetches one page of a player's match history.
func (c *Client) PlayerMatchlist(ctx context.Context, playerID, page int) ([]MatchHistoryItem, error) {
	ctx, span := tracer.Start(ctx, "client:PlayerMatchlist")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/player/matches/%d/?page=%d", playerID, page))
	if err != nil {
		return nil, err
	}
	return ParseMatchHistory(doc)
}

// TeamMatchlist fetches one page of a team's match history.
func (c *Client) TeamMatchlist(ctx context.Context, teamID, page int) ([]MatchHistoryItem, error) {
	ctx, span := tracer.Start(ctx, "client:TeamMatchlist")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/team/matches/%d/?page=%d", teamID, page))
	if err != nil {
		return nil, err
	}
	return ParseMatchHistory(doc)
}

// ParseMatchHistory reads the match rows of a player's or team's match
// history page; both pages share the same row markup.
func ParseMatchHistory(doc *goquery.Document) ([]MatchHistoryItem, error) {
	var (
		items    []MatchHistoryItem
		parseErr error
	)
	doc.Find("div#wrapper div.col a.m-item").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		item, err := parseMatchHistoryItem(el)
		if err != nil {
			parseErr = err
			return false
		}
		items = append(items, item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return items, nil
}

func parseMatchHistoryItem(el *goquery.Selection) (MatchHistoryItem, error) {
	href := el.AttrOr("href", "")
	idText, slug, ok := strings.Cut(strings.TrimPrefix(href, "/"), "/")
	if href == "" || !ok {
		return MatchHistoryItem{}, elementNotFound("match history row href")
	}

	teamEls := el.Find("div.m-item-team")
	logoEls := el.Find("div.m-item-logo img")
	scoreEls := el.Find("div.m-item-result span")
	count := teamEls.Length()
	if logoEls.Length() < count {
		count = logoEls.Length()
	}
	if scoreEls.Length() < count {
		count = scoreEls.Length()
	}
	teams := make([]MatchHistoryTeam, 0, count)
	for i := 0; i < count; i++ {
		teamEl := teamEls.Eq(i)
		teams = append(teams, MatchHistoryTeam{
			Name:    htmlutil.SelectText(teamEl, "span.m-item-team-name"),
			Tag:     htmlutil.SelectText(teamEl, "span.m-item-team-tag"),
			LogoURL: normalizeAssetURL(logoEls.Eq(i).AttrOr("src", "")),
			Score:   intPtr(htmlutil.LastTextOf(scoreEls.Eq(i))),
		})
	}

	var vods []string
	el.Find("div.m-item-vods div.wf-tag span.full").Each(func(_ int, vodEl *goquery.Selection) {
		if vod := htmlutil.LastTextOf(vodEl); vod != "" {
			vods = append(vods, vod)
		}
	})

	// The timestamp only exists when both halves parse; rows for
	// matches without a scheduled time stay nil.
	var matchTime *time.Time
	dateEl := el.Find("div.m-item-date").First()
	date, dateErr := parseSiteTime(htmlutil.SelectText(dateEl, "div"), historyDateLayout)
	clock, clockErr := parseSiteTime(htmlutil.LastTextOf(dateEl), listTimeLayout)
	if dateErr == nil && clockErr == nil {
		combined := combineDateTime(date, clock)
		matchTime = &combined
	}

	eventEl := el.Find("div.m-item-event").Last()
	return MatchHistoryItem{
		ID:               atoiOr(idText, 0),
		Slug:             slug,
		Href:             absoluteURL(href),
		LeagueIconURL:    normalizeAssetURL(htmlutil.SelectAttr(el, "div.m-item-thumb img", "src")),
		LeagueText:       htmlutil.SelectText(el, "div.m-item-event div"),
		LeagueSeriesText: htmlutil.LastTextOf(eventEl),
		Teams:            teams,
		Vods:             vods,
		Time:             matchTime,
	}, nil
}
