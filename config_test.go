//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "icons.json", cfg.JSONOutputPath)
	require.Equal(t, "FontAwesomeIconMap.swift", cfg.GeneratedOutputPath)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "iconmap.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
sourceUrl: https://github.com/o/r/blob/main/icons.json
jsonOutputPath: from-file.json
schema: list
inactivityTimeout: 5s
author: File Author
`), 0644))
	t.Setenv("ICONMAP_JSON_OUTPUT_PATH", "from-env.json")
	t.Setenv("ICONMAP_MAP_NAME", "envIcons")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	require.Equal(t, "https://github.com/o/r/blob/main/icons.json", cfg.SourceURL)
	require.Equal(t, "from-env.json", cfg.JSONOutputPath)
	require.Equal(t, DefaultGeneratedOutputPath, cfg.GeneratedOutputPath)
	require.Equal(t, SchemaList, cfg.Schema)
	require.Equal(t, 5*time.Second, cfg.InactivityTimeout)
	require.Equal(t, "File Author", cfg.Author)
	require.Equal(t, "envIcons", cfg.MapName)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sourceUrl: [unterminated"), 0644))
	_, err = LoadConfig(bad)
	require.Error(t, err)

	t.Setenv("ICONMAP_INACTIVITY_TIMEOUT", "soon")
	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceURL = ""
	cfg.GeneratedOutputPath = ""
	cfg.Schema = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sourceUrl is empty")
	require.Contains(t, err.Error(), "generatedOutputPath is empty")
	require.Contains(t, err.Error(), `unknown schema "xml"`)
}

func TestConfigFetchConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InactivityTimeout = time.Minute
	fc := cfg.FetchConfig()
	require.Equal(t, time.Minute, fc.InactivityTimeout)
	require.Equal(t, DefaultChunkSize, fc.ChunkSize)
	require.Equal(t, DefaultUserAgent, fc.ExtraHeaders["User-Agent"])

	opts := cfg.GenerateOptions("source.json")
	require.Equal(t, SchemaAuto, opts.Schema)
	require.Equal(t, "source.json", opts.Source)
	require.Equal(t, DefaultMapName, opts.MapName)
}
