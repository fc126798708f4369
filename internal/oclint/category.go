package oclint

import (
	"fmt"
	"slices"
	"strings"
)

type Category struct {
	Name     string
	Severity Severity
}

// Basename is the page name of the category on the documentation site.
func (c Category) Basename() string {
	return fmt.Sprintf("%s.html", strings.ToLower(c.Name))
}

// DefaultCategorySeverities is maintained by hand, every category listed on the
// documentation index should have an entry here.
var DefaultCategorySeverities = map[string]int{
	"Basic":      3,
	"Cocoa":      1,
	"Convention": 2,
	"Design":     2,
	"Empty":      3,
	"Migration":  1,
	"Naming":     2,
	"Redundant":  1,
	"Size":       3,
	"Unused":     0,
}

// CategoriesFromSeverities returns the categories sorted by name.
func CategoriesFromSeverities(severities map[string]int) ([]Category, error) {
	categories := make([]Category, 0, len(severities))
	for name, value := range severities {
		severity, err := SeverityFromInt(value)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		categories = append(categories, Category{Name: name, Severity: severity})
	}
	slices.SortFunc(categories, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return categories, nil
}

// MissingSeverities returns the categories in `available` that have no
// severity, in the order they were given.
func MissingSeverities(available []string, severities map[string]int) []string {
	var missing []string
	for _, name := range available {
		if _, ok := severities[name]; ok {
			continue
		}
		if slices.Contains(missing, name) {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}
