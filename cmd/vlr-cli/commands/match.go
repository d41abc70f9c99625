package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vlrscraper/lib/scrapers/vlr"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <match-id>",
	Short: "Shows a match: header, per-map scoreboards and economy.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matchID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("match id must be a number", err)
		}

		client := newClient()
		detail, err := client.Match(cmd.Context(), matchID)
		if err != nil {
			fatal("failed to fetch match", err)
		}
		if *jsonOutput {
			printJson(detail)
			return
		}

		header := detail.Header
		fmt.Printf("%s / %s\n", header.EventTitle, header.EventSeriesName)
		fmt.Printf("%s  %s %s\n", header.Time.Format("2006-01-02 15:04 MST"), header.Status, header.Format)
		for _, team := range header.Teams {
			fmt.Printf("  %s (%s)\n", team.Name, formatIntPtr(team.Score))
		}

		for _, game := range detail.Games {
			fmt.Printf("\n%s (%s)\n", game.Map, game.Duration)
			renderGame(game)
		}

		if detail.Economy != nil {
			fmt.Println("\neconomy")
			renderEconomy(detail.Economy)
		}
	},
}

func renderGame(game vlr.MatchGame) {
	t := newTable()
	t.AppendHeader(table.Row{"Player", "Agent", "R", "ACS", "K", "D", "A", "ADR"})
	for _, team := range game.Teams {
		for _, player := range team.Players {
			rating := "-"
			if player.Rating != nil {
				rating = strconv.FormatFloat(*player.Rating, 'f', 2, 64)
			}
			adr := "-"
			if player.ADR != nil {
				adr = strconv.FormatFloat(*player.ADR, 'f', 1, 64)
			}
			t.AppendRow(table.Row{
				player.Name,
				player.Agent,
				rating,
				formatIntPtr(player.ACS),
				formatIntPtr(player.Kills),
				formatIntPtr(player.Deaths),
				formatIntPtr(player.Assists),
				adr,
			})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func renderEconomy(economy *vlr.MatchEconomy) {
	t := newTable()
	t.AppendHeader(table.Row{"Team", "Pistols", "Eco", "Semi-eco", "Semi-buy", "Full buy"})
	for _, team := range economy.Teams {
		t.AppendRow(table.Row{
			team.Name,
			team.PistolWon,
			fmt.Sprintf("%d (%d)", team.EcoCount, team.EcoWon),
			fmt.Sprintf("%d (%d)", team.SemiEcoCount, team.SemiEcoWon),
			fmt.Sprintf("%d (%d)", team.SemiBuyCount, team.SemiBuyWon),
			fmt.Sprintf("%d (%d)", team.FullBuyCount, team.FullBuyWon),
		})
	}
	t.Render()
}
