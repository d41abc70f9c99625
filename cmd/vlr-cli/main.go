package main

import (
	"context"
	"vlrscraper/cmd/vlr-cli/commands"
	"vlrscraper/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "vlr-cli")
	telemetry.InitSlog(false)
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
