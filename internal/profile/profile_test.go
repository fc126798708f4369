package profile

import (
	"bytes"
	"strings"
	"testing"
	"update-oclint-rules/internal/oclint"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const expectedProfile = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<profile>
  <name>OCLint</name>
  <language>objc</language>
  <rules>
    <rule>
      <repositoryKey>OCLint</repositoryKey>
      <key>bitwise operator in conditional</key>
    </rule>
    <rule>
      <repositoryKey>OCLint</repositoryKey>
      <key>empty do/while statement</key>
    </rule>
  </rules>
</profile>
`

func TestWrite(t *testing.T) {
	p := Build([]oclint.Rule{
		{Key: "bitwise operator in conditional", Name: "Bitwise operator in conditional"},
		{Key: "empty do/while statement", Name: "Empty do/while statement"},
	})

	var out bytes.Buffer
	err := Write(&out, p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(expectedProfile, out.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader(expectedProfile))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ProfileName, p.Name)
	require.Equal(t, Language, p.Language)
	require.Equal(t, []string{"bitwise operator in conditional", "empty do/while statement"}, p.Keys())

	_, err = Read(strings.NewReader("<profile><rules>"))
	require.Error(t, err)
}

func TestBuildEmpty(t *testing.T) {
	var out bytes.Buffer
	err := Write(&out, Build(nil))
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, out.String(), "<rules></rules>")
}
