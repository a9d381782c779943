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
	"bufio"
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

// recordFields are the keys of every output record, sorted.
var recordFields = []string{"created_at", "id", "state", "title", "user"}

// AssertRecordsJSON parses a JSON array of records, checks that every record
// has exactly the output fields, and returns them.
func AssertRecordsJSON(t *testing.T, data string, expectedCount int) []map[string]interface{} {
	t.Helper()

	var records []map[string]interface{}
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, data)
	}
	if records == nil {
		t.Fatalf("output is null, want an array")
	}

	for i, record := range records {
		assertRecordFields(t, i, record)
	}
	if len(records) != expectedCount {
		t.Errorf("Expected %d records, got %d", expectedCount, len(records))
	}
	return records
}

// AssertNDJSONRecords parses NDJSON output and checks it like AssertRecordsJSON.
func AssertNDJSONRecords(t *testing.T, data string, expectedCount int) []map[string]interface{} {
	t.Helper()

	var records []map[string]interface{}
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var record map[string]interface{}
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Errorf("Line %d: invalid JSON: %v", len(records)+1, err)
			continue
		}
		assertRecordFields(t, len(records), record)
		records = append(records, record)
	}

	if len(records) != expectedCount {
		t.Errorf("Expected %d records, got %d", expectedCount, len(records))
	}
	return records
}

func assertRecordFields(t *testing.T, i int, record map[string]interface{}) {
	t.Helper()

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if strings.Join(keys, ",") != strings.Join(recordFields, ",") {
		t.Errorf("record %d: fields = %v, want %v", i, keys, recordFields)
	}
	if created, ok := record["created_at"].(string); !ok || len(created) != len("2006-01-02") {
		t.Errorf("record %d: created_at = %v, want a YYYY-MM-DD date", i, record["created_at"])
	}
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, got: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string to NOT contain %q, got: %s", needle, haystack)
	}
}
