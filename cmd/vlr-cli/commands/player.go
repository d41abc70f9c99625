package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vlrscraper/lib/scrapers/vlr"
)

var playerTimespan *string

func init() {
	playerTimespan = playerCmd.Flags().String("timespan", "", "Agent stats window: 30d, 60d, 90d or all.")
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <player-id> [--timespan <window>]",
	Short: "Shows a player profile with teams and agent statistics.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		playerID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("player id must be a number", err)
		}

		client := newClient()
		player, err := client.Player(cmd.Context(), playerID, vlr.AgentStatsTimespan(*playerTimespan))
		if err != nil {
			fatal("failed to fetch player", err)
		}
		if *jsonOutput {
			printJson(player)
			return
		}

		info := player.Info
		fmt.Printf("%s (%s), %s\n", info.Name, info.RealName, info.Country)
		for _, team := range player.CurrentTeams {
			fmt.Printf("  %s, %s\n", team.Name, team.Role)
		}
		if player.TotalWinnings != "" {
			fmt.Printf("  winnings: %s\n", player.TotalWinnings)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Agent", "Use", "RND", "Rating", "ACS", "K:D", "ADR", "KAST"})
		for _, stats := range player.AgentStats {
			t.AppendRow(table.Row{
				stats.Agent,
				fmt.Sprintf("%.0f%%", stats.UsagePercent*100),
				stats.RoundsPlayed,
				fmt.Sprintf("%.2f", stats.Rating),
				fmt.Sprintf("%.1f", stats.ACS),
				fmt.Sprintf("%.2f", stats.KD),
				fmt.Sprintf("%.1f", stats.ADR),
				fmt.Sprintf("%.0f%%", stats.KAST*100),
			})
		}
		t.Render()
	},
}
