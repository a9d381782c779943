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

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct pagination error",
			err:      ErrPaginationParse,
			sentinel: ErrPaginationParse,
			want:     true,
		},
		{
			name:     "wrapped pagination error",
			err:      fmt.Errorf("link header %q: %w", "<x>", ErrPaginationParse),
			sentinel: ErrPaginationParse,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrRepoNotFound,
			sentinel: ErrNetworkFailure,
			want:     false,
		},
		{
			name:     "wrapped network error",
			err:      fmt.Errorf("connection failed: %w", ErrNetworkFailure),
			sentinel: ErrNetworkFailure,
			want:     true,
		},
		{
			name:     "lookup error unwraps to not found",
			err:      fmt.Errorf("validate: %w", &RepoLookupError{StatusCode: 500, Kind: KindServerError}),
			sentinel: ErrRepoNotFound,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrRepoNotFound,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrRepoNotFound, "repository not found"},
		{ErrNetworkFailure, "network connection failed"},
		{ErrRateLimit, "github rate limit exceeded"},
		{ErrPaginationParse, "unparseable pagination header"},
		{ErrMalformedResponse, "malformed github response"},
		{ErrInvalidWindow, "invalid date window"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepoLookupError_GenericMessage(t *testing.T) {
	for _, status := range []int{403, 404, 500, 502} {
		err := &RepoLookupError{Owner: "o", Repo: "r", StatusCode: status}
		if err.Error() != NotFoundMessage {
			t.Errorf("status %d: Error() = %q, want %q", status, err.Error(), NotFoundMessage)
		}
	}
}

func TestRepoLookupError_As(t *testing.T) {
	wrapped := fmt.Errorf("get repository: %w", &RepoLookupError{
		Owner:      "octo",
		Repo:       "hello",
		StatusCode: 403,
		Kind:       KindForbidden,
	})

	var lookupErr *RepoLookupError
	if !errors.As(wrapped, &lookupErr) {
		t.Fatal("errors.As did not find RepoLookupError")
	}
	if lookupErr.Kind != KindForbidden {
		t.Errorf("Kind = %v, want %v", lookupErr.Kind, KindForbidden)
	}
	if got, want := lookupErr.Detail(), "octo/hello: status 403 (forbidden)"; got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}
}

func TestLookupKind_String(t *testing.T) {
	tests := map[LookupKind]string{
		KindUnexpected:  "unexpected",
		KindNotFound:    "not_found",
		KindForbidden:   "forbidden",
		KindRateLimited: "rate_limited",
		KindServerError: "server_error",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("LookupKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
