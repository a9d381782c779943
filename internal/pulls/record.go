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

package pulls

import "github.com/sirseerhq/sirseer-pulls/internal/github"

// Record is the projection of a pull request that is returned to callers.
// Two records are the same result when all five fields are equal.
type Record struct {
	ID        int64  `json:"id"`
	State     string `json:"state"`
	Title     string `json:"title"`
	User      string `json:"user"`
	CreatedAt string `json:"created_at"`
}

// Project builds the Record for pr, keeping only the date of created_at.
func Project(pr github.PullRequest) Record {
	return Record{
		ID:        pr.ID,
		State:     pr.State,
		Title:     pr.Title,
		User:      pr.Login(),
		CreatedAt: datePart(pr.CreatedAt),
	}
}

// Matches reports whether any of the created, updated, merged or closed
// dates of pr falls inside w. Null merged and closed dates never match.
func Matches(pr github.PullRequest, w Window) bool {
	if w.Contains(pr.CreatedAt) || w.Contains(pr.UpdatedAt) {
		return true
	}
	if pr.MergedAt != nil && w.Contains(*pr.MergedAt) {
		return true
	}
	return pr.ClosedAt != nil && w.Contains(*pr.ClosedAt)
}
