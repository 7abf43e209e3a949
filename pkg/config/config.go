package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultLabelsPath is the label configuration read when --config-path is not given
const DefaultLabelsPath = "config.yaml"

// Config represents the labelconductor process settings
type Config struct {
	GitHub GitHubConfig
	Log    LogConfig
}

// GitHubConfig represents GitHub-specific settings
type GitHubConfig struct {
	Token  string
	APIURL string
}

// LogConfig represents logging settings
type LogConfig struct {
	Level   string
	Format  string
	NoColor bool
}

// Load reads settings from the environment after loading any .env files.
// Variables already present in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	loadEnvFiles(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// GITHUB_TOKEN first, then GH_TOKEN as used by the gh CLI
	if err := v.BindEnv("github.token", "GITHUB_TOKEN", "GH_TOKEN"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("github.api_url", "GITHUB_API_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log.level", "LOG_LEVEL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log.format", "LOG_FORMAT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("log.no_color", "NO_COLOR"); err != nil {
		return nil, err
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	return &Config{
		GitHub: GitHubConfig{
			Token:  strings.TrimSpace(v.GetString("github.token")),
			APIURL: v.GetString("github.api_url"),
		},
		Log: LogConfig{
			Level:   v.GetString("log.level"),
			Format:  v.GetString("log.format"),
			NoColor: v.GetString("log.no_color") != "",
		},
	}, nil
}

// loadEnvFiles loads the given .env files, or ./.env when none are given.
// Missing files are ignored.
func loadEnvFiles(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		_ = godotenv.Load(file)
	}
}
