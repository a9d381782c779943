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

// Package testutil provides common test helpers for sirseer-pulls: a fake
// GitHub REST server, pull request builders, and CLI/file assertions.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest is what GitHubServer remembers about each request.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	UserAgent     string
}

// GitHubServer fakes the two REST resources a fetch touches:
// /repos/{owner}/{repo} and /repos/{owner}/{repo}/pulls.
//
// The pulls listing serves Pages (page n is Pages[n-1]; pages past the end
// are empty) and, when there is more than one page, a Link header ordered
// the way GitHub orders it. Set Link to serve a fixed header instead.
type GitHubServer struct {
	*httptest.Server

	Owner string
	Repo  string

	mu         sync.Mutex
	repoStatus int
	pages      [][]map[string]interface{}
	link       *string
	requests   []RecordedRequest
}

// NewGitHubServer starts a fake for owner/repo with no pull requests.
// The server is closed when the test ends.
func NewGitHubServer(t *testing.T, owner, repo string) *GitHubServer {
	t.Helper()
	s := &GitHubServer{
		Owner:      owner,
		Repo:       repo,
		repoStatus: http.StatusOK,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// SetPages replaces the listing.
func (s *GitHubServer) SetPages(pages ...[]map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = pages
}

// SetRepoStatus makes the repository lookup answer with status.
func (s *GitHubServer) SetRepoStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repoStatus = status
}

// SetLink serves link verbatim on every listing response. An empty string
// removes the header.
func (s *GitHubServer) SetLink(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = &link
}

// Requests returns every request received so far.
func (s *GitHubServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// PullsRequests returns the requests made to the listing.
func (s *GitHubServer) PullsRequests() []RecordedRequest {
	var out []RecordedRequest
	for _, r := range s.Requests() {
		if strings.HasSuffix(r.Path, "/pulls") {
			out = append(out, r)
		}
	}
	return out
}

func (s *GitHubServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		UserAgent:     r.Header.Get("User-Agent"),
	})
	repoStatus := s.repoStatus
	pages := s.pages
	link := s.link
	s.mu.Unlock()

	repoPath := fmt.Sprintf("/repos/%s/%s", s.Owner, s.Repo)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	switch r.URL.Path {
	case repoPath:
		if repoStatus != http.StatusOK {
			writeError(w, repoStatus)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":        1296269,
			"name":      s.Repo,
			"full_name": s.Owner + "/" + s.Repo,
			"url":       s.URL + repoPath,
			"pulls_url": s.URL + repoPath + "/pulls{/number}",
		})

	case repoPath + "/pulls":
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				writeError(w, http.StatusUnprocessableEntity)
				return
			}
			page = n
		}

		if link != nil {
			if *link != "" {
				w.Header().Set("Link", *link)
			}
		} else if len(pages) > 1 {
			w.Header().Set("Link", s.linkHeader(r, page, len(pages)))
		}

		body := []map[string]interface{}{}
		if page <= len(pages) && pages[page-1] != nil {
			body = pages[page-1]
		}
		_ = json.NewEncoder(w).Encode(body)

	default:
		writeError(w, http.StatusNotFound)
	}
}

// linkHeader renders the relations GitHub sends for page of last: next and
// last first, then prev and first. As on GitHub, page is the final query
// parameter of each URL.
func (s *GitHubServer) linkHeader(r *http.Request, page, last int) string {
	query := r.URL.Query()
	query.Del("page")
	ref := func(n int, rel string) string {
		return fmt.Sprintf(`<%s%s?%s&page=%d>; rel="%s"`, s.URL, r.URL.Path, query.Encode(), n, rel)
	}

	var parts []string
	if page < last {
		parts = append(parts, ref(page+1, "next"), ref(last, "last"))
	}
	if page > 1 {
		parts = append(parts, ref(page-1, "prev"), ref(1, "first"))
	}
	return strings.Join(parts, ", ")
}

// NewErrorServer creates a server that answers every request with statusCode.
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, statusCode)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeError(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message":           http.StatusText(status),
		"documentation_url": "https://docs.github.com/rest",
	})
}
