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

// Package pulls lists the pull requests of a repository that were active in
// a date window. A pull request is active when it was created, updated,
// merged or closed on a day inside the window.
//
// The Fetcher validates the repository, discovers how many listing pages
// exist, reads every page in order and keeps the distinct matching records:
//
//	fetcher := pulls.NewFetcher(client, pulls.WithLogger(logger))
//	records, err := fetcher.GetPullRequests(ctx, "octo", "hello", "2022-03-01", "2022-03-10")
//
// Any failure aborts the fetch; partial results are never returned.
package pulls

import (
	"context"
	"fmt"

	"github.com/sirseerhq/sirseer-pulls/internal/github"
	"github.com/sirseerhq/sirseer-pulls/internal/metadata"
	"go.uber.org/zap"
)

// Fetcher drives a github.Client through one fetch.
type Fetcher struct {
	client  github.Client
	logger  *zap.SugaredLogger
	tracker *metadata.Tracker
	opts    github.FetchOptions
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithTracker records API calls, pages and matches on tracker.
func WithTracker(tracker *metadata.Tracker) Option {
	return func(f *Fetcher) {
		f.tracker = tracker
	}
}

// WithListing sets the state filter and page size sent with every listing
// request. Zero values keep the defaults (state=all, 50 per page).
func WithListing(state string, pageSize int) Option {
	return func(f *Fetcher) {
		f.opts.State = state
		f.opts.PageSize = pageSize
	}
}

// NewFetcher returns a Fetcher using client.
func NewFetcher(client github.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: client,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetPullRequests returns the distinct records of owner/repo's pull requests
// active between startDate and endDate inclusive (both YYYY-MM-DD), in the
// order they were first seen in the listing.
//
// When the repository lookup fails the error's message is
// "Error 404 User or Repo Not Found" whatever the cause, and no listing
// request is made.
func (f *Fetcher) GetPullRequests(ctx context.Context, owner, repo, startDate, endDate string) ([]Record, error) {
	window, err := ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if window.Inverted() {
		f.logger.Warnw("start date is after end date; no pull request can match",
			"since", window.Start, "until", window.End)
	}

	f.logger.Debugw("validating repository", "owner", owner, "repo", repo)
	info, err := f.client.GetRepository(ctx, owner, repo)
	f.countCall()
	if err != nil {
		return nil, err
	}

	pullsURL, err := info.PullsURL()
	if err != nil {
		return nil, fmt.Errorf("repository %s/%s: %w", owner, repo, err)
	}

	lastPage, err := f.client.LastPage(ctx, pullsURL, f.opts)
	f.countCall()
	if err != nil {
		return nil, fmt.Errorf("discover page count: %w", err)
	}
	f.logger.Debugw("discovered listing size", "pulls_url", pullsURL, "pages", lastPage)

	result := NewResultSet()
	scanned := 0
	for page := 1; page <= lastPage; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		opts := f.opts
		opts.Page = page
		prPage, err := f.client.ListPullRequests(ctx, pullsURL, opts)
		f.countCall()
		if err != nil {
			return nil, fmt.Errorf("fetch page %d of %d: %w", page, lastPage, err)
		}

		matched := FilterPage(prPage.PullRequests, window)
		added := result.Merge(matched, f.recordMatch)
		scanned += len(prPage.PullRequests)
		if f.tracker != nil {
			f.tracker.RecordPage(len(prPage.PullRequests))
		}

		f.logger.Debugw("processed page",
			"page", page,
			"of", lastPage,
			"pull_requests", len(prPage.PullRequests),
			"matched", matched.Len(),
			"new", added,
			"has_next", prPage.HasNextPage)
	}

	f.logger.Infow("fetch complete",
		"repository", owner+"/"+repo,
		"window", window.String(),
		"pages", lastPage,
		"scanned", scanned,
		"matched", result.Len())

	return result.Records(), nil
}

func (f *Fetcher) recordMatch(r Record) {
	if f.tracker != nil {
		f.tracker.UpdatePRStats(r.ID, r.CreatedAt)
	}
}

func (f *Fetcher) countCall() {
	if f.tracker != nil {
		f.tracker.IncrementAPICall()
	}
}
