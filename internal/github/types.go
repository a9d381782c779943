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

package github

import (
	"fmt"
	"strings"

	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
)

// PullRequest is a pull request as the REST listing endpoint returns it.
// Timestamps are kept as the API's ISO-8601 strings so that their
// 10-character date prefix can be compared directly. MergedAt and ClosedAt
// are nil until the pull request is merged or closed.
type PullRequest struct {
	ID        int64   `json:"id"`
	Number    int     `json:"number"`
	State     string  `json:"state"`
	Title     string  `json:"title"`
	User      *User   `json:"user"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	MergedAt  *string `json:"merged_at"`
	ClosedAt  *string `json:"closed_at"`
}

// User represents the author of a pull request.
type User struct {
	Login string `json:"login"`
}

// Login returns the author's login, or "" when the user object is absent.
func (pr PullRequest) Login() string {
	if pr.User == nil {
		return ""
	}
	return pr.User.Login
}

// Validate checks that the fields the filter depends on are present.
func (pr PullRequest) Validate() error {
	if pr.Login() == "" {
		return fmt.Errorf("pull request %d has no user.login: %w", pr.ID, relaierrors.ErrMalformedResponse)
	}
	if len(pr.CreatedAt) < dateLen {
		return fmt.Errorf("pull request %d has invalid created_at %q: %w", pr.ID, pr.CreatedAt, relaierrors.ErrMalformedResponse)
	}
	if len(pr.UpdatedAt) < dateLen {
		return fmt.Errorf("pull request %d has invalid updated_at %q: %w", pr.ID, pr.UpdatedAt, relaierrors.ErrMalformedResponse)
	}
	for name, ts := range map[string]*string{"merged_at": pr.MergedAt, "closed_at": pr.ClosedAt} {
		if ts != nil && len(*ts) < dateLen {
			return fmt.Errorf("pull request %d has invalid %s %q: %w", pr.ID, name, *ts, relaierrors.ErrMalformedResponse)
		}
	}
	return nil
}

// dateLen is the length of a YYYY-MM-DD prefix.
const dateLen = 10

// PullRequestPage is one page of the pull request listing.
type PullRequestPage struct {
	PullRequests []PullRequest
	Page         int

	// HasNextPage reports whether GitHub advertised a rel="next" link.
	// It is informational; the page loop is driven by the probed last page.
	HasNextPage bool
}

// FetchOptions configures the listing query.
type FetchOptions struct {
	// State filters by pull request state. Defaults to "all".
	State string

	// PageSize controls how many PRs to fetch per page.
	// Defaults to 50 if not specified. Maximum is 100 per GitHub's API limits.
	PageSize int

	// Page is the 1-based page number. Zero omits the parameter, which
	// GitHub treats as page 1.
	Page int
}

// Default values for fetch operations
const (
	defaultPageSize = 50
	defaultState    = "all"
	maxPageSize     = 100
)

// query renders the options in the order GitHub documents them:
// state, per_page, then page.
func (o FetchOptions) query() string {
	state := o.State
	if state == "" {
		state = defaultState
	}
	pageSize := o.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	q := fmt.Sprintf("state=%s&per_page=%d", state, pageSize)
	if o.Page > 0 {
		q += fmt.Sprintf("&page=%d", o.Page)
	}
	return q
}

// RepositoryInfo holds the repository fields the pipeline uses.
type RepositoryInfo struct {
	FullName string

	// PullsURLTemplate is the raw pulls_url, e.g.
	// https://api.github.com/repos/octo/hello/pulls{/number}
	PullsURLTemplate string
}

// PullsURL returns the listing URL with its trailing URI template segment removed.
func (r *RepositoryInfo) PullsURL() (string, error) {
	u := r.PullsURLTemplate
	if strings.HasSuffix(u, "}") {
		if i := strings.LastIndex(u, "{"); i >= 0 {
			u = u[:i]
		}
	}
	if u == "" {
		return "", fmt.Errorf("repository %s has no pulls_url: %w", r.FullName, relaierrors.ErrMalformedResponse)
	}
	return u, nil
}
