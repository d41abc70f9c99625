package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vlrscraper/lib/scrapers/vlr"
)

var eventsRegion *string
var eventsPage *int

func init() {
	eventsRegion = eventsCmd.Flags().String("region", "", "Region filter, e.g. 'europe' or 'north-america'. Empty means all regions.")
	eventsPage = eventsCmd.Flags().Int("page", 1, "The listing page to fetch.")
	rootCmd.AddCommand(eventsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events <upcoming|completed> [--region <region>] [--page <n>]",
	Short: "Lists events from the events page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eventType := vlr.EventTypeUpcoming
		if args[0] == "completed" {
			eventType = vlr.EventTypeCompleted
		}

		client := newClient()
		page, err := client.Events(cmd.Context(), eventType, vlr.Region(*eventsRegion), *eventsPage)
		if err != nil {
			fatal("failed to fetch events", err)
		}
		if *jsonOutput {
			printJson(page)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Title", "Status", "Prize", "Dates", "Region"})
		for _, event := range page.Events {
			t.AppendRow(table.Row{
				event.ID, event.Title, event.Status, event.Prize, event.Dates, event.Region,
			})
		}
		t.AppendFooter(table.Row{"", "", "", "", "page", formatPage(page.Page, page.TotalPages)})
		t.Render()
	},
}
