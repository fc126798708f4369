package commands

import (
	"log/slog"
	"update-oclint-rules/internal/serviceutil"
	"update-oclint-rules/internal/updater"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks that the rules listing and the profile enable the same rules.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		report, err := updater.Verify(cfg.RulesPath, cfg.ProfilePath)
		if err != nil {
			serviceutil.Fatal("failed to read generated files", err)
		}
		err = report.Err()
		if err != nil {
			serviceutil.Fatal("generated files disagree", err)
		}

		slog.Info("generated files agree", "rules", report.RuleCount, "profile", report.ProfileCount)
	},
}
