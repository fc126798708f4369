// Package profile builds the default quality profile that enables every
// scraped rule in the sonar plugin.
package profile

import (
	"encoding/xml"
	"fmt"
	"io"
	"update-oclint-rules/internal/oclint"
)

const (
	RepositoryKey = "OCLint"
	ProfileName   = "OCLint"
	Language      = "objc"
)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

type Rule struct {
	RepositoryKey string `xml:"repositoryKey"`
	Key           string `xml:"key"`
}

type Profile struct {
	XMLName  xml.Name `xml:"profile"`
	Name     string   `xml:"name"`
	Language string   `xml:"language"`
	Rules    []Rule   `xml:"rules>rule"`
}

// Build creates a profile enabling `rules`, keeping their order.
func Build(rules []oclint.Rule) Profile {
	profileRules := make([]Rule, len(rules))
	for i, r := range rules {
		profileRules[i] = Rule{
			RepositoryKey: RepositoryKey,
			Key:           r.Key,
		}
	}
	return Profile{
		Name:     ProfileName,
		Language: Language,
		Rules:    profileRules,
	}
}

func (p Profile) Keys() []string {
	keys := make([]string, len(p.Rules))
	for i, r := range p.Rules {
		keys[i] = r.Key
	}
	return keys
}

func Write(w io.Writer, p Profile) error {
	body, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", header, body)
	return err
}

func Read(r io.Reader) (Profile, error) {
	var p Profile
	err := xml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
