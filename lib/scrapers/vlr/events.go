package vlr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"vlrscraper/lib/htmlutil"
)

// Events fetches one page of the events listing filtered by region.
// eventType selects the upcoming or the completed column of the page.
func (c *Client) Events(ctx context.Context, eventType EventType, region Region, page int) (EventsPage, error) {
	ctx, span := tracer.Start(ctx, "client:Events")
	defer span.End()

	if page < 1 {
		page = 1
	}
	path := fmt.Sprintf("/events/%s?page=%d", region, page)
	doc, err := c.fetchDocument(ctx, path)
	if err != nil {
		return EventsPage{}, err
	}

	return EventsPage{
		Events:     ParseEvents(ctx, doc, eventType),
		Page:       page,
		TotalPages: parseTotalPages(doc, eventType),
	}, nil
}

// ParseEvents reads the event cards of one column of an events listing
// document. Cards whose link carries no usable numeric id are skipped
// with a warning; the rest of the column still parses.
func ParseEvents(ctx context.Context, doc *goquery.Document, eventType EventType) []Event {
	column := "div.events-container-col:first-child"
	if eventType == EventTypeCompleted {
		column = "div.events-container-col:last-child"
	}
	selector := fmt.Sprintf("div#wrapper div.events-container %s a.event-item", column)

	var events []Event
	doc.Find(selector).Each(func(_ int, item *goquery.Selection) {
		event, err := parseEventItem(ctx, item)
		if err != nil {
			slog.WarnContext(ctx, "skipping unparsable event card", "err", err)
			return
		}
		events = append(events, event)
	})
	return events
}

func parseEventItem(ctx context.Context, item *goquery.Selection) (Event, error) {
	href := item.AttrOr("href", "")
	id, slug, err := splitIDSlug(href, "/event/")
	if err != nil {
		return Event{}, err
	}

	inner := item.Find("div.event-item-inner").First()
	statusText := htmlutil.SelectText(
		inner, "div.event-item-desc-item span.event-item-desc-item-status",
	)
	status := ParseEventStatus(statusText)
	if status == EventStatusUnknown && statusText != "" {
		slog.WarnContext(ctx, "unrecognized event status", "event", id, "status", statusText)
	}

	return Event{
		ID:      id,
		Slug:    slug,
		Href:    absoluteURL(href),
		Title:   htmlutil.SelectText(inner, "div.event-item-title"),
		Status:  status,
		Prize:   htmlutil.SelectText(inner, "div.event-item-desc-item.mod-prize"),
		Dates:   htmlutil.SelectText(inner, "div.event-item-desc-item.mod-dates"),
		Region:  htmlutil.PrefixedClass(inner, "div.event-item-desc-item.mod-location i.flag", "mod-"),
		IconURL: normalizeAssetURL(htmlutil.SelectAttr(item, "div.event-item-thumb img", "src")),
	}, nil
}

// parseTotalPages reads the pager under the selected column. A listing
// short enough to have no pager is a single page.
func parseTotalPages(doc *goquery.Document, eventType EventType) int {
	pagerSel := "div.action-container-pages:first-child"
	if eventType == EventTypeCompleted {
		pagerSel = "div.action-container-pages:last-child"
	}
	last := doc.Find("div#wrapper " + pagerSel).First().Find("span, a").Last()
	pages, err := strconv.Atoi(htmlutil.FirstText(last))
	if err != nil || pages < 1 {
		return 1
	}
	return pages
}
