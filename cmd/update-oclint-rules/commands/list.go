package commands

import (
	"update-oclint-rules/internal/serviceutil"
	"update-oclint-rules/internal/telemetry"
	"update-oclint-rules/internal/updater"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Scrapes the documentation and prints the rules without writing anything.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := createClient(cfg)

		summary, err := updater.Collect(cmd.Context(), client, cfg.CategorySeverities, telemetry.SlogAPI{})
		if err != nil {
			serviceutil.Fatal("failed to collect rules", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Name", "Category", "Severity", "Type", "Since"})
		for _, rule := range summary.Rules {
			since := ""
			if rule.Since != nil {
				since = rule.Since.String()
			}
			t.AppendRow(table.Row{rule.Name, rule.Category, rule.Severity.String(), rule.Type.String(), since})
		}
		t.AppendFooter(table.Row{"", "", "", "Total", len(summary.Rules)})
		t.Render()
	},
}
