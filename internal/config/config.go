package config

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Config holds all configuration for the props bot, resolved once at
// startup. Build-identity fields fall back in a fixed order:
// environment variable first, then git output, then "unknown".
type Config struct {
	// Server settings
	Port int

	// Slack settings
	SlackBotToken          string
	SlackVerificationToken string
	SlackTeamID            string

	// Bot settings
	PropsChannelID string
	BotUsername    string

	// Build identity, shown on /version
	AppVersion  string
	AppBranch   string
	AppRevision string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                   getEnvInt("PORT", 5000),
		SlackBotToken:          os.Getenv("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN"),
		SlackVerificationToken: os.Getenv("SLACK_VERIFICATION_TOKEN"),
		SlackTeamID:            os.Getenv("SLACK_TEAM_ID"),
		PropsChannelID:         os.Getenv("PROPS_BOT_CHANNEL_ID"),
		BotUsername:            getEnv("PROPS_BOT_USERNAME", "props"),
		AppVersion:             getEnvGit("APP_VERSION", "describe", "--abbrev=7", "--always"),
		AppBranch:              getEnvGit("APP_BRANCH", "rev-parse", "--abbrev-ref", "HEAD"),
		AppRevision:            getEnvGit("APP_REVISION", "rev-parse", "HEAD"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present
func (c *Config) validate() error {
	if c.SlackBotToken == "" {
		return fmt.Errorf("SLACK_BOT_USER_OAUTH_ACCESS_TOKEN is required")
	}
	if c.SlackVerificationToken == "" {
		return fmt.Errorf("SLACK_VERIFICATION_TOKEN is required")
	}
	if c.SlackTeamID == "" {
		return fmt.Errorf("SLACK_TEAM_ID is required")
	}
	if c.PropsChannelID == "" {
		return fmt.Errorf("PROPS_BOT_CHANNEL_ID is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	return nil
}

// getEnv gets environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as int with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvGit resolves a value from the environment, falling back to the
// output of a git command, then to "unknown".
func getEnvGit(key string, gitArgs ...string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value, err := gitOutput(gitArgs...); err == nil && value != "" {
		return value
	}
	return "unknown"
}

// gitOutput runs git and returns its trimmed stdout.
func gitOutput(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
