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

// Package metadata types describe the run summary produced for a fetch.
package metadata

import (
	"time"
)

// FetchMetadata is the summary of a single fetch: what was asked for, how
// much of the listing was read, and what matched.
type FetchMetadata struct {
	ToolVersion   string       `json:"tool_version"`
	MethodVersion string       `json:"method_version"`
	FetchID       string       `json:"fetch_id"`
	Parameters    FetchParams  `json:"parameters"`
	Results       FetchResults `json:"results"`
}

// FetchParams captures the input parameters of a fetch.
type FetchParams struct {
	Owner      string `json:"owner"`
	Repository string `json:"repository"`
	Since      string `json:"since"`
	Until      string `json:"until"`
	PageSize   int    `json:"page_size"`
	Pagination string `json:"pagination"`
}

// FetchResults contains the counters collected by a Tracker.
type FetchResults struct {
	PagesFetched  int       `json:"pages_fetched"`
	ScannedPRs    int       `json:"scanned_prs"`
	MatchedPRs    int       `json:"matched_prs"`
	LowestID      int64     `json:"lowest_pr_id,omitempty"`
	HighestID     int64     `json:"highest_pr_id,omitempty"`
	OldestCreated string    `json:"oldest_created_at,omitempty"`
	NewestCreated string    `json:"newest_created_at,omitempty"`
	Duration      string    `json:"fetch_duration"`
	APICallCount  int       `json:"api_calls_made"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
}
