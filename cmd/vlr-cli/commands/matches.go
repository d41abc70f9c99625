package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vlrscraper/lib/scrapers/vlr"
)

var historyPage *int

func init() {
	historyPage = historyCmd.Flags().Int("page", 1, "The history page to fetch.")
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(historyCmd)
}

var matchesCmd = &cobra.Command{
	Use:   "matches <event-id>",
	Short: "Lists the matches of an event.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eventID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("event id must be a number", err)
		}

		client := newClient()
		items, err := client.EventMatchlist(cmd.Context(), eventID)
		if err != nil {
			fatal("failed to fetch event matchlist", err)
		}
		if *jsonOutput {
			printJson(items)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Time", "Match", "Score", "Series"})
		for _, item := range items {
			t.AppendRow(table.Row{
				item.ID,
				formatTimePtr(item.Time),
				formatListTeams(item.Teams),
				formatListScores(item.Teams),
				item.EventSeriesText,
			})
		}
		t.Render()
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <team|player> <id> [--page <n>]",
	Short: "Lists the match history of a team or player.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("id must be a number", err)
		}

		client := newClient()
		var items []vlr.MatchHistoryItem
		switch args[0] {
		case "team":
			items, err = client.TeamMatchlist(cmd.Context(), id, *historyPage)
		case "player":
			items, err = client.PlayerMatchlist(cmd.Context(), id, *historyPage)
		default:
			fatal("unknown history kind", fmt.Errorf("%q is not 'team' or 'player'", args[0]))
		}
		if err != nil {
			fatal("failed to fetch match history", err)
		}
		if *jsonOutput {
			printJson(items)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Time", "Match", "Score", "League"})
		for _, item := range items {
			var names, scores []string
			for _, team := range item.Teams {
				names = append(names, team.Name)
				scores = append(scores, formatIntPtr(team.Score))
			}
			t.AppendRow(table.Row{
				item.ID,
				formatTimePtr(item.Time),
				strings.Join(names, " vs "),
				strings.Join(scores, ":"),
				item.LeagueText,
			})
		}
		t.Render()
	},
}

func formatListTeams(teams []vlr.MatchListTeam) string {
	var names []string
	for _, team := range teams {
		names = append(names, team.Name)
	}
	return strings.Join(names, " vs ")
}

func formatListScores(teams []vlr.MatchListTeam) string {
	var scores []string
	for _, team := range teams {
		scores = append(scores, formatIntPtr(team.Score))
	}
	return strings.Join(scores, ":")
}
