package main

import (
	"context"
	"update-oclint-rules/cmd/update-oclint-rules/commands"
	"update-oclint-rules/internal/serviceutil"
	"update-oclint-rules/internal/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	otel, err := telemetry.SetupFromEnv(ctx, "update-oclint-rules")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer otel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
