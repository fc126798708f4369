package commands

import (
	"context"
	"fmt"
	"os"
	"update-oclint-rules/internal/config"
	"update-oclint-rules/internal/scrapers/oclintdocs"
	"update-oclint-rules/internal/serviceutil"
	"update-oclint-rules/internal/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	dumpDir    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "The config file to read, a missing file means defaults.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.PersistentFlags().StringVar(&dumpDir, "dump", "", "Write every http exchange to this directory, overrides dump_dir.")
}

var rootCmd = &cobra.Command{
	Use:   "update-oclint-rules",
	Short: "update-oclint-rules regenerates the OCLint rules listing and quality profile from the OCLint documentation.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.ReportResourceUsage(telemetry.SlogAPI{})
	},
	Run: runUpdate,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if dumpDir != "" {
		cfg.DumpDir = dumpDir
	}
	return cfg
}

func createClient(cfg config.Config) *oclintdocs.Client {
	opts := oclintdocs.Options{
		BaseUrl:          cfg.BaseUrl,
		Timeout:          cfg.RequestTimeout(),
		CloudflareBypass: cfg.CloudflareBypass,
	}
	if cfg.DumpDir != "" {
		output, err := telemetry.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			serviceutil.Fatal("failed to create dump directory", err)
		}
		opts.Output = output
	}

	client, err := oclintdocs.NewClient(opts, telemetry.SlogAPI{})
	if err != nil {
		serviceutil.Fatal("failed to initialize docs client", err)
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
