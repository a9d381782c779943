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

// Package github provides a client for GitHub's REST API to list the pull
// requests of a repository page by page. It wraps go-github's request
// plumbing with a credential transport, a response size limit, and a
// pluggable reader for the Link pagination header.
//
// The package includes:
//   - A Client interface for repository lookup, pagination discovery and page listing
//   - A REST implementation using google/go-github
//   - Positional and relation-based Link header parsers
//   - Mock client for testing
//
// Basic usage:
//
//	client, err := github.NewRESTClient("https://api.github.com", github.EnvToken("TOKEN"), nil)
//	if err != nil {
//	    // Handle error
//	}
//	repo, err := client.GetRepository(ctx, "golang", "go")
//	pullsURL, err := repo.PullsURL()
//	last, err := client.LastPage(ctx, pullsURL, github.FetchOptions{})
//	page, err := client.ListPullRequests(ctx, pullsURL, github.FetchOptions{Page: last})
package github
