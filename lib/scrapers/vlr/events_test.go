package vlr

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestParseEvents(t *testing.T) {
	doc := loadFixture(t, "events.html")

	upcoming := ParseEvents(context.Background(), doc, EventTypeUpcoming)
	// the TBA card has no numeric id and is skipped
	require.Len(t, upcoming, 1)
	event := upcoming[0]
	require.Equal(t, 2501, event.ID)
	require.Equal(t, "champions-tour-2025-emea-kickoff", event.Slug)
	require.Equal(t, "https://www.vlr.gg/event/2501/champions-tour-2025-emea-kickoff", event.Href)
	require.Equal(t, "Champions Tour 2025: EMEA Kickoff", event.Title)
	require.Equal(t, EventStatusOngoing, event.Status)
	require.Equal(t, "$100,000", event.Prize)
	require.Equal(t, "Jan 14–26", event.Dates)
	require.Equal(t, "eu", event.Region)
	require.Equal(t, "https://owcdn.net/img/emea.png", event.IconURL)

	completed := ParseEvents(context.Background(), doc, EventTypeCompleted)
	require.Len(t, completed, 1)
	require.Equal(t, 2097, completed[0].ID)
	require.Equal(t, EventStatusCompleted, completed[0].Status)
	require.Equal(t, "kr", completed[0].Region)
	require.Equal(t, "https://www.vlr.gg/img/vlr/tmp/vlr.png", completed[0].IconURL)
}

func TestParseEventsUnrecognizedStatus(t *testing.T) {
	raw := `<div id="wrapper"><div class="events-container">
		<div class="events-container-col">
			<a href="/event/3001/test-cup" class="event-item">
				<div class="event-item-inner">
					<div class="event-item-title">Test Cup</div>
					<div class="event-item-desc-item">
						<span class="event-item-desc-item-status">postponed</span>
					</div>
				</div>
			</a>
		</div>
		<div class="events-container-col"></div>
	</div></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)

	// the card still parses, its status just maps to the unknown value
	events := ParseEvents(context.Background(), doc, EventTypeUpcoming)
	require.Len(t, events, 1)
	require.Equal(t, EventStatusUnknown, events[0].Status)
	require.Equal(t, "Test Cup", events[0].Title)
}

func TestParseTotalPages(t *testing.T) {
	doc := loadFixture(t, "events.html")
	require.Equal(t, 2, parseTotalPages(doc, EventTypeUpcoming))
	require.Equal(t, 17, parseTotalPages(doc, EventTypeCompleted))

	// a listing without a pager is a single page
	empty := loadFixture(t, "team.html")
	require.Equal(t, 1, parseTotalPages(empty, EventTypeUpcoming))
}
