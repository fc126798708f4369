package config

import (
	"fmt"
	"maps"
	"os"
	"time"
	"update-oclint-rules/internal/configutil"
	"update-oclint-rules/internal/oclint"

	"dario.cat/mergo"
)

const (
	DefaultBaseUrl     = "http://docs.oclint.org/en/stable/rules"
	DefaultRulesPath   = "sonar-objective-c-plugin/src/main/resources/org/sonar/plugins/oclint/rules.txt"
	DefaultProfilePath = "sonar-objective-c-plugin/src/main/resources/org/sonar/plugins/oclint/profile-oclint.xml"
	DefaultTimeout     = 30
)

type Config struct {
	BaseUrl     string `json:"base_url"`
	RulesPath   string `json:"rules_path"`
	ProfilePath string `json:"profile_path"`
	// Timeout is the per request timeout in seconds.
	Timeout          int  `json:"timeout"`
	CloudflareBypass bool `json:"cloudflare_bypass"`
	// CategorySeverities is merged over oclint.DefaultCategorySeverities.
	CategorySeverities map[string]int `json:"category_severities"`
	// DumpDir is where raw http exchanges are written, empty disables dumping.
	DumpDir string `json:"dump_dir"`
}

func Default() Config {
	return Config{
		BaseUrl:            DefaultBaseUrl,
		RulesPath:          DefaultRulesPath,
		ProfilePath:        DefaultProfilePath,
		Timeout:            DefaultTimeout,
		CategorySeverities: maps.Clone(oclint.DefaultCategorySeverities),
	}
}

// Load reads the config at `path` (and its local override) on top of the
// defaults, a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	fromFile, err := configutil.ReadConfig[Config](path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	err = mergo.Merge(&cfg, fromFile, mergo.WithOverride)
	if err != nil {
		return Config{}, fmt.Errorf("merge config: %w", err)
	}
	// mergo drops zero values, a severity of 0 (INFO) must still override
	maps.Copy(cfg.CategorySeverities, fromFile.CategorySeverities)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.BaseUrl == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.RulesPath == "" || c.ProfilePath == "" {
		return fmt.Errorf("rules_path and profile_path must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}
	for name, value := range c.CategorySeverities {
		if _, err := oclint.SeverityFromInt(value); err != nil {
			return fmt.Errorf("category_severities.%s: %w", name, err)
		}
	}
	return nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
