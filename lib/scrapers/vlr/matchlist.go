package vlr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
)

// EventMatchlist fetches every match row of an event's matches page.
func (c *Client) EventMatchlist(ctx context.Context, eventID int) ([]MatchListItem, error) {
	ctx, span := tracer.Start(ctx, "client:EventMatchlist")
	defer span.End()

	doc, err := c.fetchDocument(ctx, fmt.Sprintf("/event/matches/%d", eventID))
	if err != nil {
		return nil, err
	}
	return ParseEventMatchlist(ctx, doc)
}

// ParseEventMatchlist reads an event's matches page. The page is a
// flat sequence of date headings and match rows; each row inherits the
// nearest preceding heading as its date. An unparsable heading aborts
// the whole parse since every later row would carry the wrong day; an
// unparsable row is skipped with a warning.
func ParseEventMatchlist(ctx context.Context, doc *goquery.Document) ([]MatchListItem, error) {
	var (
		items       []MatchListItem
		currentDate *time.Time
		headingErr  error
	)

	selector := "div#wrapper div.wf-label.mod-large, div#wrapper div.wf-card a.match-item"
	doc.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.HasClass("wf-label") {
			// Heading text may be followed by a "Today" marker
			// element; only the leading text node is the date.
			label := htmlutil.FirstText(el)
			date, err := parseSiteTime(label, listDateLayout, listDateLayoutAbbrev)
			if err != nil {
				headingErr = fmt.Errorf("parse date heading: %w", err)
				return false
			}
			currentDate = &date
			return true
		}

		item, err := parseMatchListItem(el, currentDate)
		if err != nil {
			slog.WarnContext(ctx, "skipping unparsable match row", "err", err)
			return true
		}
		items = append(items, item)
		return true
	})
	if headingErr != nil {
		return nil, headingErr
	}
	return items, nil
}

func parseMatchListItem(el *goquery.Selection, date *time.Time) (MatchListItem, error) {
	href := el.AttrOr("href", "")
	id, slug, err := splitIDSlug(href, "/")
	if err != nil {
		return MatchListItem{}, err
	}

	// The row's own clock only becomes a usable timestamp together
	// with the surrounding date heading.
	var matchTime *time.Time
	if date != nil {
		clock, err := parseSiteTime(htmlutil.SelectText(el, "div.match-item-time"), listTimeLayout)
		if err == nil {
			combined := combineDateTime(*date, clock)
			matchTime = &combined
		}
	}

	var teams []MatchListTeam
	el.Find("div.match-item-vs div.match-item-vs-team").Each(func(_ int, teamEl *goquery.Selection) {
		teams = append(teams, MatchListTeam{
			Name:     htmlutil.SelectText(teamEl, "div.match-item-vs-team-name div.text-of"),
			IsWinner: teamEl.HasClass("mod-winner"),
			Score:    intPtr(htmlutil.SelectText(teamEl, "div.match-item-vs-team-score")),
		})
	})

	var tags []string
	el.Find("div.match-item-vod div.wf-tag").Each(func(_ int, tagEl *goquery.Selection) {
		if tag := htmlutil.LastTextOf(tagEl); tag != "" {
			tags = append(tags, tag)
		}
	})

	eventEls := el.Find("div.match-item-event.text-of")
	return MatchListItem{
		ID:              id,
		Slug:            slug,
		Href:            absoluteURL(href),
		Time:            matchTime,
		Teams:           teams,
		Tags:            tags,
		EventText:       htmlutil.LastTextOf(eventEls.Last()),
		EventSeriesText: htmlutil.FirstText(eventEls.Find("div.match-item-event-series.text-of").First()),
	}, nil
}
