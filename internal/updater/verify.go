package updater

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"update-oclint-rules/internal/profile"
	"update-oclint-rules/internal/rulesfile"
)

type VerifyReport struct {
	RuleCount    int
	ProfileCount int
	// keys in the listing that the profile does not enable
	MissingFromProfile []string
	// keys the profile enables that the listing does not define
	MissingFromRules []string
	DuplicateRules   []string
}

func (r VerifyReport) Err() error {
	var errs []error
	for _, key := range r.MissingFromProfile {
		errs = append(errs, fmt.Errorf("rule %q is not enabled in the profile", key))
	}
	for _, key := range r.MissingFromRules {
		errs = append(errs, fmt.Errorf("profile enables unknown rule %q", key))
	}
	for _, key := range r.DuplicateRules {
		errs = append(errs, fmt.Errorf("rule %q is defined more than once", key))
	}
	return errors.Join(errs...)
}

// Verify checks that a rules listing and a profile describe the same rules.
func Verify(rulesPath, profilePath string) (VerifyReport, error) {
	rulesFile, err := os.Open(rulesPath)
	if err != nil {
		return VerifyReport{}, err
	}
	defer rulesFile.Close()
	definitions, err := rulesfile.Parse(rulesFile)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("parse %s: %w", rulesPath, err)
	}

	profileFile, err := os.Open(profilePath)
	if err != nil {
		return VerifyReport{}, err
	}
	defer profileFile.Close()
	p, err := profile.Read(profileFile)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("parse %s: %w", profilePath, err)
	}

	ruleKeys := make([]string, len(definitions))
	for i, d := range definitions {
		ruleKeys[i] = d.Key
	}
	return compareKeys(ruleKeys, p.Keys()), nil
}

func compareKeys(ruleKeys, profileKeys []string) VerifyReport {
	report := VerifyReport{
		RuleCount:    len(ruleKeys),
		ProfileCount: len(profileKeys),
	}

	seen := map[string]struct{}{}
	for _, key := range ruleKeys {
		if _, ok := seen[key]; ok {
			if !slices.Contains(report.DuplicateRules, key) {
				report.DuplicateRules = append(report.DuplicateRules, key)
			}
			continue
		}
		seen[key] = struct{}{}
		if !slices.Contains(profileKeys, key) {
			report.MissingFromProfile = append(report.MissingFromProfile, key)
		}
	}
	for _, key := range profileKeys {
		if _, ok := seen[key]; !ok {
			report.MissingFromRules = append(report.MissingFromRules, key)
		}
	}

	return report
}
