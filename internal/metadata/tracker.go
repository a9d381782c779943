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

// Package metadata tracks statistics about a fetch while it runs and turns
// them into a FetchMetadata summary. Nothing is persisted: the summary is
// written to a stream (stderr when --metadata is given) and discarded.
package metadata

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// MethodVersion identifies how the listing was read.
	MethodVersion = "rest-pulls-v1"
)

// Tracker collects statistics during a fetch operation and generates metadata.
// Create a new tracker at the start of each fetch operation. A Tracker is
// safe for concurrent use.
type Tracker struct {
	mu           sync.Mutex
	startTime    time.Time
	apiCallCount int
	pageCount    int
	scanned      int
	prStats      PRStats
}

// PRStats holds statistics about the pull requests that matched the window.
type PRStats struct {
	Matched       int
	LowestID      int64
	HighestID     int64
	OldestCreated string // YYYY-MM-DD
	NewestCreated string // YYYY-MM-DD
}

// New creates a new metadata tracker and initializes it with the current time.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// IncrementAPICall records that an API request was issued.
func (t *Tracker) IncrementAPICall() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.apiCallCount++
}

// RecordPage records a listing page and the number of pull requests on it.
func (t *Tracker) RecordPage(scanned int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pageCount++
	t.scanned += scanned
}

// UpdatePRStats folds one matched record into the running statistics.
func (t *Tracker) UpdatePRStats(id int64, createdDate string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prStats.Matched++

	if t.prStats.LowestID == 0 || id < t.prStats.LowestID {
		t.prStats.LowestID = id
	}
	if id > t.prStats.HighestID {
		t.prStats.HighestID = id
	}

	if t.prStats.OldestCreated == "" || createdDate < t.prStats.OldestCreated {
		t.prStats.OldestCreated = createdDate
	}
	if createdDate > t.prStats.NewestCreated {
		t.prStats.NewestCreated = createdDate
	}
}

// Stats returns a copy of the matched pull request statistics.
func (t *Tracker) Stats() PRStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prStats
}

// GenerateMetadata creates a FetchMetadata record from the collected
// statistics. Each call gets a fresh FetchID.
func (t *Tracker) GenerateMetadata(toolVersion string, params FetchParams) *FetchMetadata {
	t.mu.Lock()
	defer t.mu.Unlock()

	completedAt := time.Now()
	duration := completedAt.Sub(t.startTime)

	return &FetchMetadata{
		ToolVersion:   toolVersion,
		MethodVersion: MethodVersion,
		FetchID:       uuid.NewString(),
		Parameters:    params,
		Results: FetchResults{
			PagesFetched:  t.pageCount,
			ScannedPRs:    t.scanned,
			MatchedPRs:    t.prStats.Matched,
			LowestID:      t.prStats.LowestID,
			HighestID:     t.prStats.HighestID,
			OldestCreated: t.prStats.OldestCreated,
			NewestCreated: t.prStats.NewestCreated,
			Duration:      duration.String(),
			APICallCount:  t.apiCallCount,
			StartedAt:     t.startTime,
			CompletedAt:   completedAt,
		},
	}
}

// WriteMetadataToWriter serializes metadata to JSON and writes it to the
// provided io.Writer. The output is formatted with indentation for readability.
func WriteMetadataToWriter(metadata *FetchMetadata, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metadata)
}
