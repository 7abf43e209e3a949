package github

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	// maxLabelNameLength is GitHub's limit on label names
	maxLabelNameLength = 50
	// maxDescriptionLength is GitHub's limit on label descriptions
	maxDescriptionLength = 100
)

var validColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// rawConfiguration distinguishes a missing categories key from an empty list
type rawConfiguration struct {
	Categories *[]rawCategory `yaml:"categories"`
}

// rawCategory distinguishes a missing labels key from an empty mapping
type rawCategory struct {
	Prefix string    `yaml:"prefix"`
	Color  string    `yaml:"color"`
	Labels *LabelSet `yaml:"labels"`
}

// LoadConfigFromFile reads and decodes a label configuration file
func LoadConfigFromFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return config, nil
}

// ParseConfig decodes a label configuration document
func ParseConfig(data []byte) (*Configuration, error) {
	var raw rawConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Categories == nil {
		return nil, errors.New("missing required key 'categories'")
	}

	config := &Configuration{Categories: make([]Category, 0, len(*raw.Categories))}
	for i, category := range *raw.Categories {
		if category.Labels == nil {
			return nil, fmt.Errorf("categories[%d]: missing required key 'labels'", i)
		}
		config.Categories = append(config.Categories, Category{
			Prefix: category.Prefix,
			Color:  strings.TrimPrefix(category.Color, "#"),
			Labels: *category.Labels,
		})
	}

	return config, nil
}

// Validate checks the configuration against GitHub's label rules
func (c *Configuration) Validate() error {
	var validationErrors ValidationErrors

	names := make(map[string]string)
	for i, category := range c.Categories {
		field := fmt.Sprintf("categories[%d]", i)

		if category.Prefix == "" {
			validationErrors.Add(field+".prefix", "", "prefix is required")
		}

		if !validColor.MatchString(category.Color) {
			validationErrors.Add(field+".color", category.Color, "color must be a 6 digit hex value")
		}

		for _, entry := range category.Labels {
			label := category.Label(entry)
			labelField := fmt.Sprintf("%s.labels.%s", field, entry.Suffix)

			if entry.Suffix == "" {
				validationErrors.Add(labelField, "", "label suffix cannot be empty")
			}
			if previous, ok := names[label.Name]; ok {
				validationErrors.Add(labelField, label.Name, "label name already defined by "+previous)
			} else {
				names[label.Name] = labelField
			}
			if utf8.RuneCountInString(label.Name) > maxLabelNameLength {
				validationErrors.Add(labelField, label.Name,
					fmt.Sprintf("label name must be %d characters or less", maxLabelNameLength))
			}
			if utf8.RuneCountInString(label.Description) > maxDescriptionLength {
				validationErrors.Add(labelField, "",
					fmt.Sprintf("description must be %d characters or less", maxDescriptionLength))
			}
		}
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}

// SaveConfigToPath writes the configuration as YAML, creating parent directories
func (c *Configuration) SaveConfigToPath(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ExampleConfiguration returns a small starter configuration
func ExampleConfiguration() *Configuration {
	return &Configuration{
		Categories: []Category{
			{
				Prefix: "type",
				Color:  "d73a4a",
				Labels: LabelSet{
					{Suffix: "bug", Description: "Something isn't working"},
					{Suffix: "feature", Description: "New feature or request"},
					{Suffix: "docs", Description: "Improvements or additions to documentation"},
				},
			},
			{
				Prefix: "priority",
				Color:  "fbca04",
				Labels: LabelSet{
					{Suffix: "high", Description: "Needs attention this cycle"},
					{Suffix: "low", Description: "Nice to have"},
				},
			},
		},
	}
}
