package commands

import (
	"slices"
	"sort"
	"update-oclint-rules/internal/oclint"
	"update-oclint-rules/internal/serviceutil"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Lists the rule categories on the documentation site and their configured severity.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := createClient(cfg)

		available, err := client.FetchCategories(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch categories", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Category", "Severity", "Page"})
		for _, name := range available {
			value, ok := cfg.CategorySeverities[name]
			if !ok {
				t.AppendRow(table.Row{name, color.YellowString("missing"), ""})
				continue
			}
			severity, err := oclint.SeverityFromInt(value)
			if err != nil {
				serviceutil.Fatal("invalid category severity", err)
			}
			category := oclint.Category{Name: name, Severity: severity}
			t.AppendRow(table.Row{name, severity.String(), category.Basename()})
		}

		var unknown []string
		for name := range cfg.CategorySeverities {
			if !slices.Contains(available, name) {
				unknown = append(unknown, name)
			}
		}
		sort.Strings(unknown)
		for _, name := range unknown {
			t.AppendRow(table.Row{name, cfg.CategorySeverities[name], color.RedString("not on site")})
		}

		t.Render()
	},
}
