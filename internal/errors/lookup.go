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

package errors

import "fmt"

// LookupKind tells apart the causes hidden behind the generic not-found message.
type LookupKind int

const (
	KindUnexpected LookupKind = iota
	KindNotFound
	KindForbidden
	KindRateLimited
	KindServerError
)

// String returns the log-friendly name of the kind.
func (k LookupKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	case KindServerError:
		return "server_error"
	default:
		return "unexpected"
	}
}

// RepoLookupError is returned when the repository metadata request fails.
// Error always yields NotFoundMessage; StatusCode and Kind keep the real cause.
type RepoLookupError struct {
	Owner      string
	Repo       string
	StatusCode int
	Kind       LookupKind
}

func (e *RepoLookupError) Error() string {
	return NotFoundMessage
}

// Unwrap lets errors.Is(err, ErrRepoNotFound) hold for every lookup failure.
func (e *RepoLookupError) Unwrap() error {
	return ErrRepoNotFound
}

// IsNotFoundError marks the error for chain-aware inspectors.
func (e *RepoLookupError) IsNotFoundError() bool {
	return true
}

// IsRateLimitError reports whether the lookup failed on a rate limit.
func (e *RepoLookupError) IsRateLimitError() bool {
	return e.Kind == KindRateLimited
}

// Detail describes the underlying cause for logs.
func (e *RepoLookupError) Detail() string {
	return fmt.Sprintf("%s/%s: status %d (%s)", e.Owner, e.Repo, e.StatusCode, e.Kind)
}
