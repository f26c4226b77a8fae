package main

import (
	"context"
	"log/slog"

	"appstore-scraper/cmd/appstore-cli/cmd"
	"appstore-scraper/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	if err := telemetry.SetupFromEnv(context.Background(), "appstore-cli"); err != nil {
		slog.Warn("could not set up telemetry", "err", err)
	}
	cmd.Execute()
}
