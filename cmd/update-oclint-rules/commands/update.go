package commands

import (
	"log/slog"
	"time"
	"update-oclint-rules/internal/serviceutil"
	"update-oclint-rules/internal/telemetry"
	"update-oclint-rules/internal/updater"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Scrapes the documentation and writes the rules listing and the profile.",
	Args:  cobra.NoArgs,
	Run:   runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	client := createClient(cfg)

	t1 := time.Now()
	_, err := updater.Run(cmd.Context(), client, updater.Options{
		CategorySeverities: cfg.CategorySeverities,
		RulesPath:          cfg.RulesPath,
		ProfilePath:        cfg.ProfilePath,
		Telemetry:          telemetry.SlogAPI{},
	})
	if err != nil {
		serviceutil.Fatal("failed to update rules", err)
	}
	t2 := time.Now()

	slog.Info("update time", "seconds", t2.Sub(t1).Seconds())
}
