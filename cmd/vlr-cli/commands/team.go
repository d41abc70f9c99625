package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(transactionsCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <team-id>",
	Short: "Shows a team profile with roster and event placements.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("team id must be a number", err)
		}

		client := newClient()
		team, err := client.Team(cmd.Context(), teamID)
		if err != nil {
			fatal("failed to fetch team", err)
		}
		if *jsonOutput {
			printJson(team)
			return
		}

		info := team.Info
		fmt.Printf("%s [%s], %s\n", info.Name, info.Tag, info.Country)
		if team.TotalWinnings != "" {
			fmt.Printf("  winnings: %s\n", team.TotalWinnings)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Alias", "Name", "Role", "Captain"})
		for _, member := range team.Roster {
			captain := ""
			if member.IsCaptain {
				captain = "yes"
			}
			t.AppendRow(table.Row{member.ID, member.Alias, member.RealName, member.Role, captain})
		}
		t.Render()

		if len(team.EventPlacements) > 0 {
			p := newTable()
			p.AppendHeader(table.Row{"Year", "Event", "Stage", "Placement", "Prize"})
			for _, event := range team.EventPlacements {
				for _, placement := range event.Placements {
					p.AppendRow(table.Row{
						event.Year, event.EventName,
						placement.Stage, placement.Placement, placement.Prize,
					})
				}
			}
			p.Render()
		}
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <team-id>",
	Short: "Shows the roster transaction log of a team.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		teamID, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("team id must be a number", err)
		}

		client := newClient()
		transactions, err := client.TeamTransactions(cmd.Context(), teamID)
		if err != nil {
			fatal("failed to fetch transactions", err)
		}
		if *jsonOutput {
			printJson(transactions)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Date", "Action", "Player", "Name", "Position"})
		for _, txn := range transactions {
			date := "unknown"
			if txn.Date != nil {
				date = txn.Date.Format("2006-01-02")
			}
			t.AppendRow(table.Row{date, txn.Action, txn.PlayerAlias, txn.PlayerRealName, txn.Position})
		}
		t.Render()
	},
}
