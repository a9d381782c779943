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

import "context"

// Client defines the interface for interacting with GitHub's REST API.
// This interface allows for easy mocking in tests.
type Client interface {
	// GetRepository looks up repository metadata. Any non-2xx status is
	// reported as a *errors.RepoLookupError carrying the generic not-found
	// message.
	GetRepository(ctx context.Context, owner, repo string) (*RepositoryInfo, error)

	// LastPage issues a single probe request against pullsURL and returns
	// the number of pages the listing spans. A response without a Link
	// header fits on one page.
	LastPage(ctx context.Context, pullsURL string, opts FetchOptions) (int, error)

	// ListPullRequests fetches the page opts.Page of the pull request listing.
	ListPullRequests(ctx context.Context, pullsURL string, opts FetchOptions) (*PullRequestPage, error)
}
