// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for sirseer-pulls with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables (including those loaded from the dotenv file)
//  3. Repository-specific configuration
//  4. Global configuration file
//  5. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirseerhq/sirseer-pulls/internal/output"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .sirseer-pulls.yaml (current directory)
//   - .sirseer-pulls.yml (current directory)
//   - ~/.sirseer/pulls.yaml
//   - ~/.sirseer/pulls.yml
//
// The dotenv file named by EnvFile is loaded next; variables already present
// in the process environment win over the file. Environment overrides are
// applied last.
func LoadConfig(configPath string) (*Config, error) {
	return load(configPath, "")
}

// LoadConfigForRepo loads configuration and applies repository-specific
// overrides. The repo parameter should be in "owner/repo" format. The
// repository entry sits between the config file defaults and the
// environment, so SIRSEER_PAGE_SIZE still wins over it.
func LoadConfigForRepo(configPath, repo string) (*Config, error) {
	return load(configPath, repo)
}

func load(configPath, repo string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".sirseer-pulls.yaml",
			".sirseer-pulls.yml",
			filepath.Join(os.Getenv("HOME"), ".sirseer", "pulls.yaml"),
			filepath.Join(os.Getenv("HOME"), ".sirseer", "pulls.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if repoConfig, ok := cfg.Repositories[repo]; ok && repoConfig.PageSize > 0 {
		cfg.Defaults.PageSize = repoConfig.PageSize
	}

	if err := loadEnvFile(expandPath(cfg.EnvFile)); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if tokenEnv := os.Getenv("SIRSEER_TOKEN_ENV"); tokenEnv != "" {
		cfg.GitHub.TokenEnv = tokenEnv
	}

	if pageSize := os.Getenv("SIRSEER_PAGE_SIZE"); pageSize != "" {
		if size, err := parsePositiveInt(pageSize); err == nil {
			cfg.Defaults.PageSize = size
		}
	}
	if state := os.Getenv("SIRSEER_STATE"); state != "" {
		cfg.Defaults.State = strings.ToLower(state)
	}
	if format := os.Getenv("SIRSEER_OUTPUT_FORMAT"); format != "" {
		cfg.Defaults.OutputFormat = strings.ToLower(format)
	}
	if metadata := os.Getenv("SIRSEER_METADATA"); metadata != "" {
		cfg.Defaults.Metadata = parseBool(metadata)
	}

	if strategy := os.Getenv("SIRSEER_PAGINATION"); strategy != "" {
		cfg.Pagination.Strategy = strings.ToLower(strategy)
	}
	if level := os.Getenv("SIRSEER_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// GetPageSize returns the effective page size for a repository, taking
// into account repository-specific overrides.
func (c *Config) GetPageSize(repo string) int {
	if repoConfig, ok := c.Repositories[repo]; ok && repoConfig.PageSize > 0 {
		return repoConfig.PageSize
	}
	return c.Defaults.PageSize
}

// Validate checks if the configuration contains valid values. It should be
// called after loading configuration and applying flag overrides.
func (c *Config) Validate() error {
	if c.Defaults.PageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got: %d", c.Defaults.PageSize)
	}
	if c.Defaults.PageSize > 100 {
		return fmt.Errorf("default page size %d exceeds GitHub API limit of 100", c.Defaults.PageSize)
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	switch c.Pagination.Strategy {
	case PaginationPositional, PaginationRelation:
	default:
		return fmt.Errorf("unknown pagination strategy %q (want %s or %s)",
			c.Pagination.Strategy, PaginationPositional, PaginationRelation)
	}
	switch c.Defaults.State {
	case StateOpen, StateClosed, StateAll:
	default:
		return fmt.Errorf("unknown pull request state %q (want %s, %s or %s)",
			c.Defaults.State, StateOpen, StateClosed, StateAll)
	}
	switch c.Defaults.OutputFormat {
	case output.FormatJSON, output.FormatNDJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)",
			c.Defaults.OutputFormat, output.FormatJSON, output.FormatNDJSON)
	}
	return nil
}
