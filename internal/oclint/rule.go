package oclint

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
	"update-oclint-rules/internal/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-version"
	"golang.org/x/net/html"
)

type Rule struct {
	// Key is the name as oclint reports it, ex. "high npath complexity".
	Key string
	// Name is the display name, ex. "High npath complexity".
	Name string
	// Description is the html of the rule documentation without the
	// version and name labels.
	Description string
	Category    string
	Severity    Severity
	Type        Type
	// Since is nil when the page does not say (or says something unparseable).
	Since *version.Version
}

const (
	sinceLabel = "Since:"
	nameLabel  = "Name:"
)

// RuleFromSelection reads a rule out of its section on a category page.
//
// Simple and advanced rule pages differ only in which trailing blocks exist
// (thresholds, suppress, references) so every p, pre and dl is carried over
// to the description in document order.
func RuleFromSelection(category Category, sel *goquery.Selection) (Rule, error) {
	elements := sel.Find("p, pre, dl").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("dl").Length() == 0
	}).Nodes

	var since *version.Version
	if len(elements) > 0 && isLabel(elements[0], sinceLabel) {
		since = parseSince(labelValue(elements[0], sinceLabel))
		elements = elements[1:]
	}

	nameIdx := slices.IndexFunc(elements, func(n *html.Node) bool {
		return isLabel(n, nameLabel)
	})
	if nameIdx < 0 {
		return Rule{}, fmt.Errorf("rule in category %q: could not find %q label", category.Name, nameLabel)
	}
	key := labelValue(elements[nameIdx], nameLabel)
	if key == "" {
		return Rule{}, fmt.Errorf("rule in category %q: empty name", category.Name)
	}
	elements = slices.Delete(elements, nameIdx, nameIdx+1)

	lines := make([]string, 0, len(elements))
	for _, n := range elements {
		lines = append(lines, renderDescriptionElement(n))
	}

	return Rule{
		Key:         key,
		Name:        capitalize(key),
		Description: strings.Join(lines, "\n"),
		Category:    category.Name,
		Severity:    category.Severity,
		Type:        TypeOf(key),
		Since:       since,
	}, nil
}

// isLabel reports whether the node is a paragraph of the form
// <p><strong>Label: value</strong></p>.
func isLabel(n *html.Node, label string) bool {
	if n.Data != "p" {
		return false
	}
	strong := goquery.NewDocumentFromNode(n).Find("p > strong").First()
	if strong.Length() == 0 {
		return false
	}
	return strings.HasPrefix(htmlutil.NormalizedText(strong.Nodes[0]), label)
}

func labelValue(n *html.Node, label string) string {
	strong := goquery.NewDocumentFromNode(n).Find("p > strong").First()
	if strong.Length() == 0 {
		return ""
	}
	text := htmlutil.NormalizedText(strong.Nodes[0])
	return strings.TrimSpace(strings.TrimPrefix(text, label))
}

func parseSince(text string) *version.Version {
	v, err := version.NewVersion(text)
	if err != nil {
		return nil
	}
	return v
}

func renderDescriptionElement(n *html.Node) string {
	switch n.Data {
	case "pre":
		// highlighting spans are dropped and the code is kept verbatim
		return "<pre>" + strings.Trim(htmlutil.GetText(n), "\n") + "</pre>"
	case "dl":
		var items []string
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			items = append(items, fmt.Sprintf(
				"<%s> %s</%s>",
				child.Data, htmlutil.NormalizedText(child), child.Data,
			))
		}
		return "<dl>" + strings.Join(items, " ") + "</dl>"
	default:
		return htmlutil.RenderElement(n)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// SortRules sorts rules by display name, ties are broken by category so the
// output stays stable between runs.
func SortRules(rules []Rule) {
	slices.SortStableFunc(rules, func(a, b Rule) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
}
