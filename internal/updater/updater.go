package updater

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"update-oclint-rules/internal/assert"
	"update-oclint-rules/internal/oclint"
	"update-oclint-rules/internal/profile"
	"update-oclint-rules/internal/rulesfile"
	"update-oclint-rules/internal/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("update-oclint-rules/updater")

const (
	report_updater_missing_severity = "updater.missing-severity"
	report_updater_missing_type     = "updater.missing-type"
)

// Docs is the source of rule documentation.
type Docs interface {
	FetchCategories(ctx context.Context) ([]string, error)
	FetchRules(ctx context.Context, category oclint.Category) ([]oclint.Rule, error)
}

type Options struct {
	CategorySeverities map[string]int
	RulesPath          string
	ProfilePath        string
	Telemetry          telemetry.API
}

type Summary struct {
	// Rules is sorted by name.
	Rules []oclint.Rule
	// MissingSeverities are the categories on the site without a severity.
	MissingSeverities []string
	// UntypedRules are the keys of rules that fell back to the default type.
	UntypedRules []string
}

// Collect scrapes every category that has a severity, one request at a time.
func Collect(ctx context.Context, docs Docs, severities map[string]int, tel telemetry.API) (Summary, error) {
	assert.NotNil(docs)
	assert.NotNil(tel)
	tel = telemetry.NewScopedAPI("updater", tel)

	ctx, span := tracer.Start(ctx, "updater:Collect")
	defer span.End()

	available, err := docs.FetchCategories(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch categories: %w", err)
	}

	var summary Summary
	summary.MissingSeverities = oclint.MissingSeverities(available, severities)
	for _, name := range summary.MissingSeverities {
		tel.ReportWarning(report_updater_missing_severity, fmt.Sprintf("Rule %q is missing severity", name))
	}

	categories, err := oclint.CategoriesFromSeverities(severities)
	if err != nil {
		return Summary{}, err
	}

	for _, category := range categories {
		rules, err := docs.FetchRules(ctx, category)
		if err != nil {
			return Summary{}, fmt.Errorf("fetch rules for %s: %w", category.Name, err)
		}
		summary.Rules = append(summary.Rules, rules...)
	}
	oclint.SortRules(summary.Rules)

	for _, rule := range summary.Rules {
		if _, known := oclint.LookupType(rule.Key); known {
			continue
		}
		closest, similarity := oclint.ClosestKnownRule(rule.Key)
		tel.ReportWarning(
			report_updater_missing_type,
			fmt.Sprintf("rule %q has no type, using %s", rule.Key, oclint.TYPE_CODE_SMELL),
			fmt.Sprintf("closest known rule %q (%.2f)", closest, similarity),
		)
		summary.UntypedRules = append(summary.UntypedRules, rule.Key)
	}

	span.SetAttributes(
		attribute.Int("rules", len(summary.Rules)),
		attribute.Int("missing_severities", len(summary.MissingSeverities)),
	)
	return summary, nil
}

// Run scrapes the documentation and writes both artifacts.
func Run(ctx context.Context, docs Docs, opts Options) (Summary, error) {
	summary, err := Collect(ctx, docs, opts.CategorySeverities, opts.Telemetry)
	if err != nil {
		return Summary{}, err
	}

	slog.Info(fmt.Sprintf("Found %d rules.", len(summary.Rules)))
	opts.Telemetry.ReportCount("updater.rules", int64(len(summary.Rules)))

	slog.Info("writing available rules", "path", opts.RulesPath)
	err = writeFile(opts.RulesPath, func(w io.Writer) error {
		return rulesfile.Write(w, summary.Rules)
	})
	if err != nil {
		return Summary{}, fmt.Errorf("write rules: %w", err)
	}

	slog.Info("writing profile", "path", opts.ProfilePath)
	err = writeFile(opts.ProfilePath, func(w io.Writer) error {
		return profile.Write(w, profile.Build(summary.Rules))
	})
	if err != nil {
		return Summary{}, fmt.Errorf("write profile: %w", err)
	}

	return summary, nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
