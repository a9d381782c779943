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

package testutil

import (
	"fmt"
)

// PullRequestBuilder provides a fluent API for creating pull requests in the
// shape the REST listing returns them.
type PullRequestBuilder struct {
	id        int64
	number    int
	title     string
	state     string
	body      string
	author    string
	createdAt string
	updatedAt string
	mergedAt  *string
	closedAt  *string
}

// NewPullRequestBuilder creates a new PR builder with defaults. Created and
// updated dates default to 2021-01-01, outside any window a test is likely
// to use.
func NewPullRequestBuilder(id int64) *PullRequestBuilder {
	return &PullRequestBuilder{
		id:        id,
		number:    int(id % 100000),
		title:     fmt.Sprintf("PR %d", id),
		state:     "open",
		body:      fmt.Sprintf("This is the body of PR %d", id),
		author:    fmt.Sprintf("user%d", id),
		createdAt: "2021-01-01T09:00:00Z",
		updatedAt: "2021-01-01T10:00:00Z",
	}
}

// WithTitle sets the PR title
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithState sets the PR state (open, closed)
func (b *PullRequestBuilder) WithState(state string) *PullRequestBuilder {
	b.state = state
	return b
}

// WithAuthor sets the PR author
func (b *PullRequestBuilder) WithAuthor(author string) *PullRequestBuilder {
	b.author = author
	return b
}

// WithCreatedAt sets when the PR was created
func (b *PullRequestBuilder) WithCreatedAt(ts string) *PullRequestBuilder {
	b.createdAt = ts
	return b
}

// WithUpdatedAt sets when the PR was last updated
func (b *PullRequestBuilder) WithUpdatedAt(ts string) *PullRequestBuilder {
	b.updatedAt = ts
	return b
}

// WithMergedAt marks the PR as merged (and closed) at ts
func (b *PullRequestBuilder) WithMergedAt(ts string) *PullRequestBuilder {
	b.mergedAt = &ts
	b.state = "closed"
	if b.closedAt == nil {
		b.closedAt = &ts
	}
	return b
}

// WithClosedAt marks the PR as closed at ts
func (b *PullRequestBuilder) WithClosedAt(ts string) *PullRequestBuilder {
	b.closedAt = &ts
	b.state = "closed"
	return b
}

// Build creates the PR data structure
func (b *PullRequestBuilder) Build() map[string]interface{} {
	pr := map[string]interface{}{
		"id":         b.id,
		"number":     b.number,
		"title":      b.title,
		"state":      b.state,
		"body":       b.body,
		"html_url":   fmt.Sprintf("https://github.com/octo/hello/pull/%d", b.number),
		"created_at": b.createdAt,
		"updated_at": b.updatedAt,
		"user": map[string]interface{}{
			"login": b.author,
			"type":  "User",
		},
		"head":  map[string]interface{}{"ref": fmt.Sprintf("feature-%d", b.number)},
		"base":  map[string]interface{}{"ref": "main"},
		"draft": false,
	}

	if b.mergedAt != nil {
		pr["merged_at"] = *b.mergedAt
	} else {
		pr["merged_at"] = nil
	}

	if b.closedAt != nil {
		pr["closed_at"] = *b.closedAt
	} else {
		pr["closed_at"] = nil
	}

	return pr
}

// BuildPage builds count pull requests with consecutive ids starting at
// firstID, all using the builder defaults.
func BuildPage(firstID int64, count int) []map[string]interface{} {
	page := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		page = append(page, NewPullRequestBuilder(firstID+int64(i)).Build())
	}
	return page
}
