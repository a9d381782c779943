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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// NotFoundMessage is reported for every failed repository lookup,
// whatever status GitHub actually returned.
const NotFoundMessage = "Error 404 User or Repo Not Found"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrRepoNotFound indicates the repository lookup returned a non-2xx status.
	// Maps to exit code 2.
	ErrRepoNotFound = errors.New("repository not found")

	// ErrInvalidToken indicates GitHub rejected the credential (401 or 403)
	// on a listing request after the repository lookup succeeded.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrListingNotFound indicates the pulls listing returned 404 after the
	// repository lookup succeeded. Maps to exit code 2.
	ErrListingNotFound = errors.New("pull request listing not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrPaginationParse indicates a Link header that does not have the
	// shape the configured parser expects.
	ErrPaginationParse = errors.New("unparseable pagination header")

	// ErrMalformedResponse indicates a response body missing a field the
	// pipeline depends on, such as pulls_url or user.login.
	ErrMalformedResponse = errors.New("malformed github response")

	// ErrInvalidWindow indicates a date bound that is not a YYYY-MM-DD calendar date.
	ErrInvalidWindow = errors.New("invalid date window")
)
