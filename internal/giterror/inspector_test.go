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

package giterror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v45/github"
	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
)

func errorResponse(status int) *gh.ErrorResponse {
	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com/repos/o/r", nil)
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: status, Request: req},
		Message:  http.StatusText(status),
	}
}

func TestGitHubErrorInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "typed 401",
			err:  errorResponse(http.StatusUnauthorized),
			want: true,
		},
		{
			name: "typed 403",
			err:  fmt.Errorf("get repository: %w", errorResponse(http.StatusForbidden)),
			want: true,
		},
		{
			name: "typed 404 is not auth",
			err:  errorResponse(http.StatusNotFound),
			want: false,
		},
		{
			name: "bad credentials message",
			err:  errors.New("Bad credentials"),
			want: true,
		},
		{
			name: "not an auth error",
			err:  errors.New("something went wrong"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "typed 404",
			err:  errorResponse(http.StatusNotFound),
			want: true,
		},
		{
			name: "typed 500",
			err:  errorResponse(http.StatusInternalServerError),
			want: false,
		},
		{
			name: "message",
			err:  errors.New("Resource not found"),
			want: true,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()
	req, _ := http.NewRequest(http.MethodGet, "https://api.github.com/repos/o/r", nil)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "typed rate limit",
			err: &gh.RateLimitError{
				Response: &http.Response{StatusCode: http.StatusForbidden, Request: req},
				Message:  "API rate limit exceeded",
			},
			want: true,
		},
		{
			name: "typed 429",
			err:  errorResponse(http.StatusTooManyRequests),
			want: true,
		},
		{
			name: "message",
			err:  errors.New("API rate limit exceeded for 1.2.3.4"),
			want: true,
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection refused", errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), true},
		{"no such host", errors.New("lookup api.github.invalid: no such host"), true},
		{"timeout", errors.New("Client.Timeout exceeded while awaiting headers"), true},
		{"not network", errors.New("invalid character 'x' looking for beginning of value"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		status      int
		rateLimited bool
		want        relaierrors.LookupKind
	}{
		{404, false, relaierrors.KindNotFound},
		{401, false, relaierrors.KindForbidden},
		{403, false, relaierrors.KindForbidden},
		{403, true, relaierrors.KindRateLimited},
		{429, false, relaierrors.KindRateLimited},
		{500, false, relaierrors.KindServerError},
		{503, false, relaierrors.KindServerError},
		{418, false, relaierrors.KindUnexpected},
	}

	for _, tt := range tests {
		if got := KindFromStatus(tt.status, tt.rateLimited); got != tt.want {
			t.Errorf("KindFromStatus(%d, %v) = %v, want %v", tt.status, tt.rateLimited, got, tt.want)
		}
	}
}

func TestErrorChainInspector(t *testing.T) {
	inspector := NewErrorChainInspector(NewInspector())

	lookupErr := fmt.Errorf("validate: %w", &relaierrors.RepoLookupError{
		StatusCode: 500,
		Kind:       relaierrors.KindServerError,
	})
	if !inspector.IsNotFoundError(lookupErr) {
		t.Error("IsNotFoundError() = false for RepoLookupError, want true")
	}
	if inspector.IsRateLimitError(lookupErr) {
		t.Error("IsRateLimitError() = true for server error lookup, want false")
	}

	limited := &relaierrors.RepoLookupError{StatusCode: 403, Kind: relaierrors.KindRateLimited}
	if !inspector.IsRateLimitError(limited) {
		t.Error("IsRateLimitError() = false for rate limited lookup, want true")
	}

	netErr := fmt.Errorf("list page 2: %w", relaierrors.ErrNetworkFailure)
	if !inspector.IsNetworkError(netErr) {
		t.Error("IsNetworkError() = false for wrapped ErrNetworkFailure, want true")
	}

	tokenErr := fmt.Errorf("list page 1: %w", relaierrors.ErrInvalidToken)
	if !inspector.IsAuthError(tokenErr) {
		t.Error("IsAuthError() = false for wrapped ErrInvalidToken, want true")
	}

	if inspector.IsAuthError(errors.New("plain")) {
		t.Error("IsAuthError() = true for plain error, want false")
	}
}
