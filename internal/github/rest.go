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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v45/github"
	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
	"github.com/sirseerhq/sirseer-pulls/internal/giterror"
)

// RESTClient implements the Client interface on top of go-github's request
// plumbing. It issues plain GETs: no retries, no rate limit waits, and no
// timeout beyond what the caller's context imposes.
type RESTClient struct {
	client    *gh.Client
	parser    LinkParser
	inspector giterror.Inspector
}

// NewRESTClient creates a client for the REST API rooted at endpoint
// (https://api.github.com, or a GitHub Enterprise /api/v3 URL).
// Credentials come from tokens on every request; a nil parser means
// PositionalLinkParser.
func NewRESTClient(endpoint string, tokens TokenSource, parser LinkParser) (*RESTClient, error) {
	baseURL, err := url.Parse(strings.TrimSuffix(endpoint, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API endpoint %q: %w", endpoint, err)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			tokens: tokens,
			base:   transport,
		},
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL

	if parser == nil {
		parser = PositionalLinkParser{}
	}

	return &RESTClient{
		client:    client,
		parser:    parser,
		inspector: giterror.NewErrorChainInspector(giterror.NewInspector()),
	}, nil
}

// GetRepository requests repos/{owner}/{repo} through the repositories
// service. Every non-2xx status maps to a RepoLookupError whose message is
// the generic not-found text.
func (c *RESTClient) GetRepository(ctx context.Context, owner, repo string) (*RepositoryInfo, error) {
	repository, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	if status, ok := failedStatus(resp); ok {
		return nil, &relaierrors.RepoLookupError{
			Owner:      owner,
			Repo:       repo,
			StatusCode: status,
			Kind:       giterror.KindFromStatus(status, err != nil && c.inspector.IsRateLimitError(err)),
		}
	}
	if err != nil {
		return nil, c.mapError(err, fmt.Sprintf("repository lookup for %s/%s", owner, repo))
	}

	return &RepositoryInfo{
		FullName:         repository.GetFullName(),
		PullsURLTemplate: repository.GetPullsURL(),
	}, nil
}

// LastPage probes the first page of the listing and reads its Link header.
func (c *RESTClient) LastPage(ctx context.Context, pullsURL string, opts FetchOptions) (int, error) {
	opts.Page = 0
	req, err := c.client.NewRequest(http.MethodGet, pullsURL+"?"+opts.query(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build pagination probe: %w", err)
	}

	resp, err := c.client.Do(ctx, req, nil)
	if err != nil {
		return 0, c.mapError(err, "pagination probe")
	}

	link := resp.Header.Get("Link")
	if link == "" {
		return 1, nil
	}
	return c.parser.LastPage(link)
}

// ListPullRequests fetches one page of the listing and checks that every
// pull request carries the fields the filter reads.
func (c *RESTClient) ListPullRequests(ctx context.Context, pullsURL string, opts FetchOptions) (*PullRequestPage, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}

	req, err := c.client.NewRequest(http.MethodGet, pullsURL+"?"+opts.query(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page %d request: %w", opts.Page, err)
	}

	var prs []PullRequest
	resp, err := c.client.Do(ctx, req, &prs)
	if err != nil {
		return nil, c.mapError(err, fmt.Sprintf("list pull requests page %d", opts.Page))
	}

	for _, pr := range prs {
		if err := pr.Validate(); err != nil {
			return nil, fmt.Errorf("page %d: %w", opts.Page, err)
		}
	}

	return &PullRequestPage{
		PullRequests: prs,
		Page:         opts.Page,
		HasNextPage:  resp.NextPage != 0,
	}, nil
}

// failedStatus reports the status of a response outside the 2xx range.
func failedStatus(resp *gh.Response) (int, bool) {
	if resp == nil || resp.Response == nil {
		return 0, false
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return 0, false
	}
	return resp.StatusCode, true
}

// mapError maps client errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", action, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: %w: %w", action, relaierrors.ErrMalformedResponse, err)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%s: network error connecting to GitHub API: %w: %w", action, relaierrors.ErrNetworkFailure, err)
	}

	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("%s: GitHub API rate limit exceeded: %w: %w", action, relaierrors.ErrRateLimit, err)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("%s: GitHub rejected the credential: %w: %w", action, relaierrors.ErrInvalidToken, err)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("%s: %w: %w", action, relaierrors.ErrListingNotFound, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}
