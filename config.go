//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults used when no configuration is provided.
const (
	DefaultSourceURL           = "https://github.com/FortAwesome/Font-Awesome/blob/6.x/metadata/icons.json"
	DefaultJSONOutputPath      = "icons.json"
	DefaultGeneratedOutputPath = "FontAwesomeIconMap.swift"
	DefaultUserAgent           = "iconmap"
)

// Config holds the settings of a single run.
type Config struct {
	// SourceURL is the repository URL of the icon metadata file.
	SourceURL string `yaml:"sourceUrl" env:"ICONMAP_SOURCE_URL"`
	// JSONOutputPath is where the downloaded JSON is stored.
	JSONOutputPath string `yaml:"jsonOutputPath" env:"ICONMAP_JSON_OUTPUT_PATH"`
	// GeneratedOutputPath is where the generated source file is written.
	GeneratedOutputPath string `yaml:"generatedOutputPath" env:"ICONMAP_GENERATED_OUTPUT_PATH"`
	// Schema of the JSON file: "auto", "mapping" or "list".
	Schema Schema `yaml:"schema" env:"ICONMAP_SCHEMA"`
	// MapName is the name of the generated dictionary.
	MapName string `yaml:"mapName" env:"ICONMAP_MAP_NAME"`
	// Author is credited in the header of the generated file.
	Author string `yaml:"author" env:"ICONMAP_AUTHOR"`
	// InactivityTimeout aborts a download that stalls for longer.
	InactivityTimeout time.Duration `yaml:"inactivityTimeout" env:"ICONMAP_INACTIVITY_TIMEOUT"`
	// UserAgent sent with the download request.
	UserAgent string `yaml:"userAgent" env:"ICONMAP_USER_AGENT"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SourceURL:           DefaultSourceURL,
		JSONOutputPath:      DefaultJSONOutputPath,
		GeneratedOutputPath: DefaultGeneratedOutputPath,
		Schema:              SchemaAuto,
		MapName:             DefaultMapName,
		InactivityTimeout:   30 * time.Second,
		UserAgent:           DefaultUserAgent,
	}
}

// LoadConfig returns the default configuration, overridden by the YAML file
// at path (if path is not empty) and then by the ICONMAP_* environment
// variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used for a run.
func (c Config) Validate() error {
	var errs []error
	if c.SourceURL == "" {
		errs = append(errs, errors.New("sourceUrl is empty"))
	}
	if c.JSONOutputPath == "" {
		errs = append(errs, errors.New("jsonOutputPath is empty"))
	}
	if c.GeneratedOutputPath == "" {
		errs = append(errs, errors.New("generatedOutputPath is empty"))
	}
	if !c.Schema.Valid() {
		errs = append(errs, fmt.Errorf("unknown schema %q", c.Schema))
	}
	if c.InactivityTimeout < 0 {
		errs = append(errs, errors.New("inactivityTimeout is negative"))
	}
	return errors.Join(errs...)
}

// FetchConfig returns the download configuration for this run.
func (c Config) FetchConfig() FetchConfig {
	fc := GetDefaultConfig()
	fc.InactivityTimeout = c.InactivityTimeout
	if c.UserAgent != "" {
		fc.ExtraHeaders = map[string]string{"User-Agent": c.UserAgent}
	}
	return fc
}

// GenerateOptions returns the generator options for this run; source is
// shown in the header of the generated file.
func (c Config) GenerateOptions(source string) GenerateOptions {
	return GenerateOptions{
		Schema: c.Schema,
		RenderOptions: RenderOptions{
			Source:  source,
			Author:  c.Author,
			MapName: c.MapName,
		},
	}
}
