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

// Package config types define the configuration structures used throughout
// sirseer-pulls. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import "github.com/sirseerhq/sirseer-pulls/internal/output"

// Pagination strategies understood by the GitHub client.
const (
	PaginationPositional = "positional"
	PaginationRelation   = "relation"
)

// Pull request states accepted by the listing endpoint.
const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
)

// Config represents the complete configuration for sirseer-pulls.
type Config struct {
	GitHub       GitHubConfig          `yaml:"github"`
	Defaults     DefaultsConfig        `yaml:"defaults"`
	Pagination   PaginationConfig      `yaml:"pagination"`
	Logging      LoggingConfig         `yaml:"logging"`
	Repositories map[string]RepoConfig `yaml:"repositories"`

	// EnvFile is an optional dotenv file, typically holding TOKEN.
	EnvFile string `yaml:"env_file"`
}

// GitHubConfig contains the REST endpoint and the name of the environment
// variable the credential is read from. The variable is read on every request.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	TokenEnv    string `yaml:"token_env"`
}

// DefaultsConfig contains default settings that apply to all fetch operations
// unless overridden by repository-specific settings or command-line flags.
type DefaultsConfig struct {
	PageSize     int    `yaml:"page_size"`
	State        string `yaml:"state"`
	OutputFormat string `yaml:"output_format"`
	Metadata     bool   `yaml:"metadata"`
}

// PaginationConfig selects how the Link header of the probe request is read.
type PaginationConfig struct {
	Strategy string `yaml:"strategy"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RepoConfig contains repository-specific overrides.
type RepoConfig struct {
	PageSize int `yaml:"page_size"`
}

// DefaultConfig returns a Config matching the public GitHub API and the
// listing parameters the tool was built around: state=all, 50 per page.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			TokenEnv:    "TOKEN",
		},
		Defaults: DefaultsConfig{
			PageSize:     50,
			State:        StateAll,
			OutputFormat: output.FormatJSON,
		},
		Pagination: PaginationConfig{
			Strategy: PaginationPositional,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Repositories: make(map[string]RepoConfig),
		EnvFile:      ".env",
	}
}
