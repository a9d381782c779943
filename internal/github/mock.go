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
	"fmt"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Repository returned by GetRepository.
	Repository *RepositoryInfo

	// Pages maps a page number to the pull requests on it. LastPage
	// reports the highest key unless LastPageNumber is set.
	Pages          map[int][]PullRequest
	LastPageNumber int

	// Errors to return
	RepoError     error
	LastPageError error
	PageErrors    map[int]error

	// Track calls for verification
	Calls       []string
	ListedPages []int
	LastOpts    FetchOptions
}

// NewMockClient creates a new mock client with a repository and one page
// of default test data.
func NewMockClient() *MockClient {
	return &MockClient{
		Repository: &RepositoryInfo{
			FullName:         "octo/hello",
			PullsURLTemplate: "https://api.github.com/repos/octo/hello/pulls{/number}",
		},
		Pages: map[int][]PullRequest{1: generateTestPRs()},
	}
}

// GetRepository implements the Client interface
func (m *MockClient) GetRepository(ctx context.Context, owner, repo string) (*RepositoryInfo, error) {
	m.Calls = append(m.Calls, "GetRepository")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.RepoError != nil {
		return nil, m.RepoError
	}
	return m.Repository, nil
}

// LastPage implements the Client interface
func (m *MockClient) LastPage(ctx context.Context, pullsURL string, opts FetchOptions) (int, error) {
	m.Calls = append(m.Calls, "LastPage")
	m.LastOpts = opts
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if m.LastPageError != nil {
		return 0, m.LastPageError
	}
	return m.lastPage(), nil
}

func (m *MockClient) lastPage() int {
	if m.LastPageNumber > 0 {
		return m.LastPageNumber
	}
	last := 1
	for page := range m.Pages {
		if page > last {
			last = page
		}
	}
	return last
}

// ListPullRequests implements the Client interface
func (m *MockClient) ListPullRequests(ctx context.Context, pullsURL string, opts FetchOptions) (*PullRequestPage, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("ListPullRequests:%d", opts.Page))
	m.ListedPages = append(m.ListedPages, opts.Page)
	m.LastOpts = opts
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.PageErrors[opts.Page]; err != nil {
		return nil, err
	}
	return &PullRequestPage{
		PullRequests: m.Pages[opts.Page],
		Page:         opts.Page,
		HasNextPage:  opts.Page < m.lastPage(),
	}, nil
}

// generateTestPRs creates sample pull request data for testing
func generateTestPRs() []PullRequest {
	merged := "2022-03-04T09:30:00Z"
	return []PullRequest{
		{
			ID:        1001,
			Number:    12,
			Title:     "Add new feature for data processing",
			State:     "open",
			User:      &User{Login: "alice"},
			CreatedAt: "2022-03-05T10:00:00Z",
			UpdatedAt: "2022-03-06T11:00:00Z",
		},
		{
			ID:        1000,
			Number:    11,
			Title:     "Fix memory leak in parser",
			State:     "closed",
			User:      &User{Login: "bob"},
			CreatedAt: "2022-02-01T08:00:00Z",
			UpdatedAt: "2022-03-04T09:30:00Z",
			MergedAt:  &merged,
			ClosedAt:  &merged,
		},
		{
			ID:        999,
			Number:    10,
			Title:     "Update documentation",
			State:     "open",
			User:      &User{Login: "charlie"},
			CreatedAt: "2021-12-24T08:00:00Z",
			UpdatedAt: "2021-12-30T08:00:00Z",
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets the pages to serve
func WithPages(pages map[int][]PullRequest) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithRepoError makes GetRepository fail
func WithRepoError(err error) MockClientOption {
	return func(m *MockClient) {
		m.RepoError = err
	}
}

// WithPageError makes one page fail
func WithPageError(page int, err error) MockClientOption {
	return func(m *MockClient) {
		if m.PageErrors == nil {
			m.PageErrors = make(map[int]error)
		}
		m.PageErrors[page] = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
