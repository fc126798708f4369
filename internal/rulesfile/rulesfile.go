// Package rulesfile reads and writes the flat rules listing that the sonar
// plugin loads its rule repository from.
package rulesfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"update-oclint-rules/internal/oclint"
)

const listingTemplate = `Available issues:

OCLint
======
{{ range . }}
{{ .Key }}
----------

Summary: {{ .Description }}

Type: {{ .Type }}
Severity: {{ printf "%d" .Severity }}
Category: {{ .Category }}
{{ end }}`

var listing = template.Must(template.New("rules").Parse(listingTemplate))

// Write writes the listing for `rules` in the given order.
func Write(w io.Writer, rules []oclint.Rule) error {
	return listing.Execute(w, rules)
}

// Definition is a rule as it is read back from a listing.
type Definition struct {
	Key         string
	Name        string
	Description string
	Type        string
	Severity    oclint.Severity
	Category    string
}

var (
	ignoredLine   = regexp.MustCompile(`^(=.*|Priority:.*)$`)
	separatorLine = regexp.MustCompile(`^-{4,}`)
)

const (
	summaryPrefix  = "Summary:"
	typePrefix     = "Type:"
	severityPrefix = "Severity:"
	categoryPrefix = "Category:"
)

// Parse reads a listing. A separator line opens a rule named by the line
// before it, everything from `Summary:` up to the `Type:` or `Severity:` line
// is the description and `Category:` closes the rule.
func Parse(r io.Reader) ([]Definition, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		definitions   []Definition
		current       *Definition
		description   []string
		inDescription bool
		previousLine  string
		lineNo        int
	)

	finishDescription := func() {
		if current != nil && inDescription {
			current.Description = strings.TrimRight(strings.Join(description, "\n"), "\n")
		}
		inDescription = false
		description = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		switch {
		case ignoredLine.MatchString(line):
			finishDescription()
		case separatorLine.MatchString(line):
			finishDescription()
			key := strings.TrimSpace(previousLine)
			if key == "" {
				return nil, fmt.Errorf("line %d: separator without a rule name", lineNo)
			}
			current = &Definition{Key: key, Name: capitalize(key)}
		case strings.HasPrefix(line, summaryPrefix):
			if current == nil {
				return nil, fmt.Errorf("line %d: summary outside of a rule", lineNo)
			}
			inDescription = true
			description = []string{strings.TrimPrefix(strings.TrimPrefix(line, summaryPrefix), " ")}
		case strings.HasPrefix(line, typePrefix):
			finishDescription()
			if current != nil {
				current.Type = strings.TrimSpace(strings.TrimPrefix(line, typePrefix))
			}
		case strings.HasPrefix(line, severityPrefix):
			finishDescription()
			if current == nil {
				return nil, fmt.Errorf("line %d: severity outside of a rule", lineNo)
			}
			value, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, severityPrefix)))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			severity, err := oclint.SeverityFromInt(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current.Severity = severity
		case strings.HasPrefix(line, categoryPrefix):
			finishDescription()
			if current == nil {
				return nil, fmt.Errorf("line %d: category outside of a rule", lineNo)
			}
			current.Category = strings.TrimSpace(strings.TrimPrefix(line, categoryPrefix))
			if current.Type == "" {
				current.Type = oclint.TYPE_CODE_SMELL.String()
			}
			definitions = append(definitions, *current)
			current = nil
		default:
			if inDescription {
				description = append(description, line)
			}
		}

		previousLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return definitions, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
