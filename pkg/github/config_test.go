package github

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `categories:
  - prefix: area
    color: ffcc00
    labels:
      backend: Backend work
      frontend: Frontend work
  - prefix: type
    color: "#D73A4A"
    labels:
      bug: Something isn't working
`)

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	require.Len(t, config.Categories, 2)

	area := config.Categories[0]
	assert.Equal(t, "area", area.Prefix)
	assert.Equal(t, "ffcc00", area.Color)
	assert.Equal(t, LabelSet{
		{Suffix: "backend", Description: "Backend work"},
		{Suffix: "frontend", Description: "Frontend work"},
	}, area.Labels)

	kind := config.Categories[1]
	assert.Equal(t, "D73A4A", kind.Color, "leading # should be stripped")
	assert.Equal(t, "type-bug", kind.ResolvedLabels()[0].Name)

	assert.NoError(t, config.Validate())
}

func TestLoadConfigFromFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "missing categories key",
			content:  "labels:\n  - prefix: area\n",
			contains: "missing required key 'categories'",
		},
		{
			name:     "empty document",
			content:  "",
			contains: "missing required key 'categories'",
		},
		{
			name:     "malformed yaml",
			content:  "categories: [\n",
			contains: "failed to parse YAML",
		},
		{
			name:     "missing labels key",
			content:  "categories:\n  - prefix: area\n    color: ffcc00\n",
			contains: "categories[0]: missing required key 'labels'",
		},
		{
			name:     "misspelled labels key",
			content:  "categories:\n  - prefix: area\n    color: ffcc00\n  - prefix: type\n    color: d73a4a\n    label:\n      bug: Broken\n",
			contains: "categories[1]: missing required key 'labels'",
		},
		{
			name:     "labels is a list",
			content:  "categories:\n  - prefix: area\n    color: ffcc00\n    labels:\n      - backend\n",
			contains: "labels must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			config, err := LoadConfigFromFile(path)
			require.Error(t, err)
			assert.Nil(t, config)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, path, configErr.Path)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadConfigFromFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := LoadConfigFromFile(path)
	require.Error(t, err)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParseConfig_EmptyLabelsMapping(t *testing.T) {
	config, err := ParseConfig([]byte("categories:\n  - prefix: area\n    color: ffcc00\n    labels: {}\n"))
	require.NoError(t, err)

	require.Len(t, config.Categories, 1)
	assert.Empty(t, config.Categories[0].Labels)
	assert.NoError(t, config.Validate())
}

func TestParseConfig_EmptyCategories(t *testing.T) {
	config, err := ParseConfig([]byte("categories: []\n"))
	require.NoError(t, err)

	assert.Empty(t, config.Categories)
	assert.NoError(t, config.Validate())
}

func TestConfigurationValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   Configuration
		wantErr  bool
		contains []string
	}{
		{
			name: "valid",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: "backend", Description: "Backend work"}}},
			}},
		},
		{
			name: "empty labels are allowed",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00"},
			}},
		},
		{
			name: "missing prefix",
			config: Configuration{Categories: []Category{
				{Color: "ffcc00"},
			}},
			wantErr:  true,
			contains: []string{"categories[0].prefix", "prefix is required"},
		},
		{
			name: "invalid color",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "yellow"},
			}},
			wantErr:  true,
			contains: []string{"categories[0].color", "6 digit hex"},
		},
		{
			name: "name too long",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: strings.Repeat("x", 50)}}},
			}},
			wantErr:  true,
			contains: []string{"50 characters or less"},
		},
		{
			name: "multibyte description within limit",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: "backend", Description: strings.Repeat("界", 40)}}},
			}},
		},
		{
			name: "emoji description and name within limit",
			config: Configuration{Categories: []Category{
				{Prefix: "área", Color: "ffcc00", Labels: LabelSet{{Suffix: strings.Repeat("🐛", 20), Description: strings.Repeat("🔥", 100)}}},
			}},
		},
		{
			name: "multibyte description too long",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: "backend", Description: strings.Repeat("界", 101)}}},
			}},
			wantErr:  true,
			contains: []string{"100 characters or less"},
		},
		{
			name: "multibyte name too long",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: strings.Repeat("界", 46)}}},
			}},
			wantErr:  true,
			contains: []string{"50 characters or less"},
		},
		{
			name: "description too long",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: "backend", Description: strings.Repeat("d", 101)}}},
			}},
			wantErr:  true,
			contains: []string{"100 characters or less"},
		},
		{
			name: "duplicate resolved name across categories",
			config: Configuration{Categories: []Category{
				{Prefix: "area", Color: "ffcc00", Labels: LabelSet{{Suffix: "backend"}}},
				{Prefix: "area", Color: "000000", Labels: LabelSet{{Suffix: "backend"}}},
			}},
			wantErr:  true,
			contains: []string{"categories[1].labels.backend", "already defined by categories[0].labels.backend"},
		},
		{
			name: "multiple problems are collected",
			config: Configuration{Categories: []Category{
				{Color: "nothex"},
			}},
			wantErr:  true,
			contains: []string{"validation failed with 2 errors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErrs ValidationErrors
			assert.True(t, errors.As(err, &validationErrs))
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestSaveConfigToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := ExampleConfiguration()
	require.NoError(t, original.SaveConfigToPath(path))

	loaded, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, original, loaded)
	assert.NoError(t, loaded.Validate())
}
