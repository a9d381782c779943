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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirseerhq/sirseer-pulls/internal/config"
	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
	"github.com/sirseerhq/sirseer-pulls/internal/github"
	"github.com/sirseerhq/sirseer-pulls/internal/logging"
	"github.com/sirseerhq/sirseer-pulls/internal/metadata"
	"github.com/sirseerhq/sirseer-pulls/internal/output"
	"github.com/sirseerhq/sirseer-pulls/internal/pulls"
	"github.com/sirseerhq/sirseer-pulls/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// fetchFlags holds the values of the fetch command's flags.
type fetchFlags struct {
	token      string
	outputFile string
	format     string
	configFile string
	since      string
	until      string
	pagination string
	logLevel   string
	metadata   bool
}

// newFetchCommand creates the fetch command
func newFetchCommand() *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch <owner>/<repo>",
		Short: "List pull requests active between two dates",
		Long: `List the pull requests of a GitHub repository that were created, updated,
merged or closed between --since and --until (inclusive, YYYY-MM-DD).

The repository must be specified in the format: <owner>/<repo>

The credential is read from the TOKEN environment variable (or the variable
named by github.token_env in the config file, or a .env file), unless --token
is given. Requests are sent anonymously when no credential is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), args[0], flags, cmd.Flags(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFetchFlags(cmd.Flags(), flags)
	_ = cmd.MarkFlagRequired("since")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}

func bindFetchFlags(fs *pflag.FlagSet, f *fetchFlags) {
	fs.StringVar(&f.since, "since", "", "First day of the window (YYYY-MM-DD, inclusive)")
	fs.StringVar(&f.until, "until", "", "Last day of the window (YYYY-MM-DD, inclusive)")
	fs.StringVar(&f.token, "token", "", "GitHub token (overrides the TOKEN env var)")
	fs.StringVarP(&f.outputFile, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&f.format, "format", output.FormatJSON, "Output format: json or ndjson")
	fs.StringVar(&f.configFile, "config", "", "Config file (default: .sirseer-pulls.yaml or ~/.sirseer/pulls.yaml)")
	fs.StringVar(&f.pagination, "pagination", config.PaginationPositional, "Link header parsing: positional or relation")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.BoolVar(&f.metadata, "metadata", false, "Print a run summary as JSON to stderr")
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, fs *pflag.FlagSet, f *fetchFlags) {
	if fs.Changed("format") {
		cfg.Defaults.OutputFormat = strings.ToLower(f.format)
	}
	if fs.Changed("pagination") {
		cfg.Pagination.Strategy = strings.ToLower(f.pagination)
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fs.Changed("metadata") {
		cfg.Defaults.Metadata = f.metadata
	}
}

// runFetch executes the fetch command
func runFetch(ctx context.Context, repoArg string, f *fetchFlags, fs *pflag.FlagSet, stdout, stderr io.Writer) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}
	repoKey := owner + "/" + repo

	cfg, err := config.LoadConfigForRepo(f.configFile, repoKey)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, fs, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	parser, err := github.NewLinkParser(cfg.Pagination.Strategy)
	if err != nil {
		return err
	}

	tokens := tokenSource(f.token, cfg)
	if tokens.Token() == "" {
		logger.Warnw("no GitHub credential set; sending anonymous requests", "token_env", cfg.GitHub.TokenEnv)
	}

	client, err := github.NewRESTClient(cfg.GitHub.APIEndpoint, tokens, parser)
	if err != nil {
		return err
	}

	tracker := metadata.New()
	pageSize := cfg.GetPageSize(repoKey)
	fetcher := pulls.NewFetcher(client,
		pulls.WithLogger(logger),
		pulls.WithTracker(tracker),
		pulls.WithListing(cfg.Defaults.State, pageSize),
	)

	records, err := fetcher.GetPullRequests(ctx, owner, repo, f.since, f.until)
	if err != nil {
		logFailure(logger, err)
		return err
	}

	if err := writeRecords(records, cfg.Defaults.OutputFormat, f.outputFile, stdout); err != nil {
		return err
	}
	if f.outputFile != "" {
		logger.Infow("wrote pull requests", "count", len(records), "file", f.outputFile)
	}

	if cfg.Defaults.Metadata {
		md := tracker.GenerateMetadata(version.Version, metadata.FetchParams{
			Owner:      owner,
			Repository: repo,
			Since:      f.since,
			Until:      f.until,
			PageSize:   pageSize,
			Pagination: cfg.Pagination.Strategy,
		})
		if err := metadata.WriteMetadataToWriter(md, stderr); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}

	return nil
}

// tokenSource prefers the --token flag over the configured environment
// variable.
func tokenSource(flagToken string, cfg *config.Config) github.TokenSource {
	if flagToken != "" {
		return github.StaticToken(flagToken)
	}
	return github.EnvToken(cfg.GitHub.TokenEnv)
}

// writeRecords opens the output only after a successful fetch, so a failed
// run leaves no empty file behind.
func writeRecords(records []pulls.Record, format, path string, stdout io.Writer) error {
	writer, err := output.Open(format, path, stdout)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			_ = writer.Close()
			return fmt.Errorf("failed to write record %d: %w", record.ID, err)
		}
	}
	return writer.Close()
}

// logFailure records the cause of a failed fetch. Repository lookup failures
// keep their generic message; the status and kind only go to the log.
func logFailure(logger *zap.SugaredLogger, err error) {
	var lookupErr *relaierrors.RepoLookupError
	if errors.As(err, &lookupErr) {
		logger.Debugw("repository lookup failed",
			"detail", lookupErr.Detail(),
			"kind", lookupErr.Kind.String(),
			"status", lookupErr.StatusCode)
		return
	}
	logger.Errorw("fetch failed", "error", err)
}

// parseRepository parses an owner/repo string into owner and repo components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}
