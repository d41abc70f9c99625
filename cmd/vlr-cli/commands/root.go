package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vlrscraper/lib/restyutil"
	"vlrscraper/lib/scrapers/vlr"
	"vlrscraper/lib/telemetry"
)

var jsonOutput *bool
var debug *bool

var rootCmd = &cobra.Command{
	Use:   "vlr-cli",
	Short: "vlr-cli scrapes events, matches, players and teams off vlr.gg.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *debug {
			telemetry.InitSlog(true)
		}
	},
}

func init() {
	jsonOutput = rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON instead of tables.")
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging and request dumps.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func newClient() *vlr.Client {
	options := vlr.ClientOptions{}
	if *debug {
		options.InstrumentOutput = restyutil.NewFilesystemOutput(".dev/resty/vlr-cli")
	}
	client, err := vlr.NewClient(options)
	if err != nil {
		fatal("failed to initialize client", err)
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printJson(value any) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fatal("failed to marshal output", err)
	}
	fmt.Println(string(out))
}
