// Package config loads kwcheck settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".kwcheck.yaml"

// DefaultContentDir holds the content documents unless configured otherwise.
const DefaultContentDir = "data"

// Config holds the settings of one kwcheck run.
type Config struct {
	ContentDir  string            `yaml:"contentDir"`
	Documents   map[string]string `yaml:"documents"`
	Optional    []string          `yaml:"optional"`
	Suggestions bool              `yaml:"suggestions"`
	ReportFile  string            `yaml:"reportFile"`
	MetricsFile string            `yaml:"metricsFile"`
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		Optional: []string{
			string(domain.DocPartners),
			string(domain.DocShop),
			string(domain.DocIntegrations),
		},
		Suggestions: true,
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file yields the defaults unless explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration on top of the defaults. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every document reference names a known document.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return errors.New("contentDir must not be empty")
	}
	for key, name := range c.Documents {
		if !isKind(key) {
			return fmt.Errorf("documents: unknown document %q", key)
		}
		if name == "" {
			return fmt.Errorf("documents: empty file name for %q", key)
		}
	}
	for _, key := range c.Optional {
		if !isKind(key) {
			return fmt.Errorf("optional: unknown document %q", key)
		}
	}
	return nil
}

// DocumentNames returns the configured file name overrides.
func (c *Config) DocumentNames() map[domain.DocumentKind]string {
	names := make(map[domain.DocumentKind]string, len(c.Documents))
	for key, name := range c.Documents {
		names[domain.DocumentKind(key)] = name
	}
	return names
}

// OptionalKinds returns the documents whose absence is tolerated.
func (c *Config) OptionalKinds() []domain.DocumentKind {
	kinds := make([]domain.DocumentKind, 0, len(c.Optional))
	for _, key := range c.Optional {
		kinds = append(kinds, domain.DocumentKind(key))
	}
	return kinds
}

func isKind(key string) bool {
	for _, k := range domain.DocumentKinds {
		if string(k) == key {
			return true
		}
	}
	return false
}
