package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Schema struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	// IgnoreRootTypes keeps only non root types of the schema
	IgnoreRootTypes bool `yaml:"ignoreRootTypes"`
}

type RenameType struct {
	Schema string `yaml:"schema"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

type RenameField struct {
	Schema string `yaml:"schema"`
	Type   string `yaml:"type"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

type RemoveTypes struct {
	Schema string   `yaml:"schema"`
	Names  []string `yaml:"names"`
}

type Output struct {
	Schema     string `yaml:"schema"`
	Provenance string `yaml:"provenance"`
}

const (
	RootFieldsKeepFirst = "keep-first"
	RootFieldsRename    = "rename"
)

// Config describes a stitching run
type Config struct {
	Schemas    []Schema `yaml:"schemas"`
	Extensions []string `yaml:"extensions"`

	RenameTypes     []RenameType  `yaml:"renameTypes"`
	RenameFields    []RenameField `yaml:"renameFields"`
	RemoveTypes     []RemoveTypes `yaml:"removeTypes"`
	StripDirectives []string      `yaml:"stripDirectives"`
	// ApplyRenameDirectives renames types annotated with @rename(name: "...")
	ApplyRenameDirectives bool `yaml:"applyRenameDirectives"`

	RootFields string `yaml:"rootFields"`
	LogLevel   string `yaml:"logLevel"`

	Output Output `yaml:"output"`
}

// Load reads config file, unknown keys are rejected
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	return Parse(bytes.NewReader(b))
}

func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("config is empty")
		}
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if len(c.Schemas) == 0 {
		return errors.New("at least one schema is required")
	}

	seen := make(map[string]struct{})
	for i, s := range c.Schemas {
		if s.Name == "" {
			return fmt.Errorf("schemas[%d]: name is required", i)
		}
		if s.Path == "" {
			return fmt.Errorf("schemas[%d]: path is required", i)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("schemas[%d]: name %s is used more than once", i, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	for i, r := range c.RenameTypes {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("renameTypes[%d]: from and to are required", i)
		}
	}

	for i, r := range c.RenameFields {
		if r.Type == "" || r.From == "" || r.To == "" {
			return fmt.Errorf("renameFields[%d]: type, from and to are required", i)
		}
	}

	switch c.RootFields {
	case "", RootFieldsKeepFirst, RootFieldsRename:
	default:
		return fmt.Errorf("rootFields: unknown policy %q", c.RootFields)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns configured log level, info by default
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("logLevel: %w", err)
	}
	return l, nil
}
