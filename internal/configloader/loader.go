// Package configloader resolves the ruffdocs configuration: built-in
// defaults overlaid with an optional project config file.
package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CalumY/ruffdocs/pkg/checker"
	"github.com/CalumY/ruffdocs/pkg/pytools"
)

// ProjectConfigName is the config file discovered in the working directory.
const ProjectConfigName = ".ruffdocs.yml"

// Config is the resolved configuration for a check run.
type Config struct {
	// DocsDir holds the static documentation pages.
	DocsDir string `yaml:"docs_dir"`

	// RulesDir holds the generated rule pages. It must exist and be
	// non-empty before a check run.
	RulesDir string `yaml:"rules_dir"`

	// Language is the fence tag identifying checkable fragments.
	Language string `yaml:"language"`

	// TargetVersions are the language versions the formatter targets.
	TargetVersions []string `yaml:"target_versions"`

	// FormatterCommand and CheckerCommand are the external tool
	// invocations, executable first.
	FormatterCommand []string `yaml:"formatter_command"`
	CheckerCommand   []string `yaml:"checker_command"`

	// GenerateCommand regenerates the rule pages (--generate-docs).
	GenerateCommand []string `yaml:"generate_command"`

	// TimeoutSeconds bounds each rule-check submission.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Exemptions are the per-document allow lists.
	Exemptions checker.Exemptions `yaml:"exemptions"`
}

// CheckTimeout returns the per-submission timeout as a duration.
func (c *Config) CheckTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return pytools.DefaultCheckTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DocsDir:          "docs",
		RulesDir:         filepath.Join("docs", "rules"),
		Language:         checker.TargetLanguage,
		TargetVersions:   pytools.DefaultTargetVersions,
		FormatterCommand: []string{"black"},
		CheckerCommand:   []string{"ruff"},
		GenerateCommand:  []string{"python", "scripts/generate_mkdocs.py"},
		TimeoutSeconds:   int(pytools.DefaultCheckTimeout / time.Second),
		Exemptions:       *checker.DefaultExemptions(),
	}
}

// Load resolves the configuration. An explicit path must exist; otherwise
// the project config is discovered in workDir and its absence means pure
// defaults. Keys present in the file override defaults; unknown keys are
// rejected.
func Load(explicitPath, workDir string) (*Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = filepath.Join(workDir, ProjectConfigName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// decodeStrict unmarshals YAML over cfg, failing on unknown fields so typos
// surface instead of silently falling back to defaults.
func decodeStrict(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		return err
	}
	return nil
}
