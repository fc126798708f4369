package rulesfile

import (
	"bytes"
	"strings"
	"testing"
	"update-oclint-rules/internal/oclint"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testRules = []oclint.Rule{
	{
		Key:         "bitwise operator in conditional",
		Name:        "Bitwise operator in conditional",
		Description: "<p>Checks for bitwise operations in conditionals.</p>\n<pre>void example(int a, int b)\n{\n\n    if (a & b) {}\n}</pre>",
		Category:    "Basic",
		Severity:    oclint.SEVERITY_CRITICAL,
		Type:        oclint.TYPE_CODE_SMELL,
	},
	{
		Key:         "broken oddness check",
		Name:        "Broken oddness check",
		Description: "<p>Checks for oddness checks.</p>",
		Category:    "Basic",
		Severity:    oclint.SEVERITY_CRITICAL,
		Type:        oclint.TYPE_BUG,
	},
	{
		Key:      "unused method parameter",
		Name:     "Unused method parameter",
		Category: "Unused",
		Severity: oclint.SEVERITY_INFO,
		Type:     oclint.TYPE_CODE_SMELL,
	},
}

const expectedListing = `Available issues:

OCLint
======

bitwise operator in conditional
----------

Summary: <p>Checks for bitwise operations in conditionals.</p>
<pre>void example(int a, int b)
{

    if (a & b) {}
}</pre>

Type: CODE_SMELL
Severity: 3
Category: Basic

broken oddness check
----------

Summary: <p>Checks for oddness checks.</p>

Type: BUG
Severity: 3
Category: Basic

unused method parameter
----------

Summary: 

Type: CODE_SMELL
Severity: 0
Category: Unused
`

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	err := Write(&out, testRules)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expectedListing, out.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseWritten(t *testing.T) {
	definitions, err := Parse(strings.NewReader(expectedListing))
	if err != nil {
		t.Fatal(err)
	}

	expected := make([]Definition, len(testRules))
	for i, r := range testRules {
		expected[i] = Definition{
			Key:         r.Key,
			Name:        r.Name,
			Description: r.Description,
			Type:        r.Type.String(),
			Severity:    r.Severity,
			Category:    r.Category,
		}
	}
	if diff := cmp.Diff(expected, definitions); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseWithoutType(t *testing.T) {
	listing := `Available issues:

OCLint
======

avoid branching statement as last in loop
----------

Summary: Name: avoid branching statement as last in loop

Severity: 2
Category: OCLint

unused method parameter
----------

Severity: 0
Category: OCLint
`
	definitions, err := Parse(strings.NewReader(listing))
	if err != nil {
		t.Fatal(err)
	}

	expected := []Definition{
		{
			Key:         "avoid branching statement as last in loop",
			Name:        "Avoid branching statement as last in loop",
			Description: "Name: avoid branching statement as last in loop",
			Type:        "CODE_SMELL",
			Severity:    oclint.SEVERITY_MAJOR,
			Category:    "OCLint",
		},
		{
			Key:      "unused method parameter",
			Name:     "Unused method parameter",
			Type:     "CODE_SMELL",
			Severity: oclint.SEVERITY_INFO,
			Category: "OCLint",
		},
	}
	if diff := cmp.Diff(expected, definitions); diff != "" {
		t.Fatal(diff)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []string{
		"Summary: outside\n",
		"rule\n----------\nSeverity: high\n",
		"rule\n----------\nSeverity: 12\n",
		"\n----------\n",
	}
	for _, listing := range testCases {
		_, err := Parse(strings.NewReader(listing))
		require.Error(t, err, listing)
	}
}
