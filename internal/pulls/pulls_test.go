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

import (
	"fmt"
	"testing"

	"github.com/sirseerhq/sirseer-pulls/internal/github"
	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func pr(id int64, created, updated string, merged, closed *string) github.PullRequest {
	return github.PullRequest{
		ID:        id,
		State:     "open",
		Title:     fmt.Sprintf("PR %d", id),
		User:      &github.User{Login: "dev"},
		CreatedAt: created,
		UpdatedAt: updated,
		MergedAt:  merged,
		ClosedAt:  closed,
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid", start: "2022-03-01", end: "2022-03-10"},
		{name: "single day", start: "2022-03-01", end: "2022-03-01"},
		{name: "inverted", start: "2022-03-10", end: "2022-03-01"},
		{name: "timestamp start", start: "2022-03-01T00:00:00Z", end: "2022-03-10", wantErr: true},
		{name: "bad month", start: "2022-13-01", end: "2022-03-10", wantErr: true},
		{name: "empty end", start: "2022-03-01", end: "", wantErr: true},
		{name: "slashes", start: "2022/03/01", end: "2022-03-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			if tt.wantErr {
				require.ErrorIs(t, err, relaierrors.ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Window{Start: tt.start, End: tt.end}, w)
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: "2022-03-01", End: "2022-03-10"}

	assert.True(t, w.Contains("2022-03-01T00:00:00Z"), "start is inclusive")
	assert.True(t, w.Contains("2022-03-10T23:59:59Z"), "end is inclusive")
	assert.True(t, w.Contains("2022-03-05"))
	assert.False(t, w.Contains("2022-02-28T23:59:59Z"))
	assert.False(t, w.Contains("2022-03-11T00:00:00Z"))
	assert.False(t, w.Contains(""))

	inverted := Window{Start: "2022-03-10", End: "2022-03-01"}
	assert.True(t, inverted.Inverted())
	assert.False(t, inverted.Contains("2022-03-05T00:00:00Z"))
	assert.False(t, w.Inverted())
}

func TestMatches(t *testing.T) {
	w := Window{Start: "2022-03-01", End: "2022-03-10"}
	outside := "2021-01-01T00:00:00Z"
	inside := "2022-03-05T12:00:00Z"

	tests := []struct {
		name string
		pr   github.PullRequest
		want bool
	}{
		{"created inside", pr(1, inside, outside, nil, nil), true},
		{"updated inside", pr(2, outside, inside, nil, nil), true},
		{"merged inside", pr(3, outside, outside, strPtr(inside), nil), true},
		{"closed inside", pr(4, outside, outside, nil, strPtr(inside)), true},
		// Scenario C
		{"nothing inside, null merged and closed", pr(5, outside, outside, nil, nil), false},
		{"merged and closed outside", pr(6, outside, outside, strPtr(outside), strPtr(outside)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.pr, w))
		})
	}
}

// A pull request is kept iff at least one of its dates lies in the window.
func TestMatchesIffAnyDateInWindow(t *testing.T) {
	w := Window{Start: "2022-03-01", End: "2022-03-10"}
	dates := []string{
		"2022-02-28T10:00:00Z",
		"2022-03-01T00:00:00Z",
		"2022-03-07T08:00:00Z",
		"2022-03-10T23:59:59Z",
		"2022-03-11T00:00:00Z",
	}
	nullable := append([]string{""}, dates...)

	for _, created := range dates {
		for _, updated := range dates {
			for _, merged := range nullable {
				for _, closed := range nullable {
					p := pr(1, created, updated, nil, nil)
					want := w.Contains(created) || w.Contains(updated)
					if merged != "" {
						p.MergedAt = strPtr(merged)
						want = want || w.Contains(merged)
					}
					if closed != "" {
						p.ClosedAt = strPtr(closed)
						want = want || w.Contains(closed)
					}
					if got := Matches(p, w); got != want {
						t.Fatalf("Matches(created=%s updated=%s merged=%q closed=%q) = %v, want %v",
							created, updated, merged, closed, got, want)
					}
				}
			}
		}
	}
}

func TestProject(t *testing.T) {
	p := github.PullRequest{
		ID:        868521416,
		State:     "closed",
		Title:     "Consume GitHub API",
		User:      &github.User{Login: "lwazi"},
		CreatedAt: "2022-03-05T13:02:11Z",
		UpdatedAt: "2022-03-08T09:00:00Z",
	}

	assert.Equal(t, Record{
		ID:        868521416,
		State:     "closed",
		Title:     "Consume GitHub API",
		User:      "lwazi",
		CreatedAt: "2022-03-05",
	}, Project(p))
}

func TestResultSet(t *testing.T) {
	a := Record{ID: 1, State: "open", Title: "a", User: "u", CreatedAt: "2022-03-01"}
	b := Record{ID: 2, State: "open", Title: "b", User: "u", CreatedAt: "2022-03-02"}
	aClosed := a
	aClosed.State = "closed"

	set := NewResultSet()
	assert.True(t, set.Add(a))
	assert.True(t, set.Add(b))
	assert.False(t, set.Add(a), "identical record is a duplicate")
	assert.True(t, set.Add(aClosed), "records differing in any field are distinct")
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []Record{a, b, aClosed}, set.Records())

	other := NewResultSet()
	other.Add(b)
	other.Add(Record{ID: 3})
	var seen []Record
	assert.Equal(t, 1, set.Merge(other, func(r Record) { seen = append(seen, r) }))
	assert.Equal(t, 4, set.Len())
	assert.True(t, set.Contains(Record{ID: 3}))
	assert.Equal(t, []Record{{ID: 3}}, seen, "callback fires only for new records")
	assert.Zero(t, set.Merge(other, nil))

	empty := NewResultSet().Records()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilterPage(t *testing.T) {
	w := Window{Start: "2022-03-01", End: "2022-03-10"}
	prs := []github.PullRequest{
		pr(1, "2022-03-05T10:00:00Z", "2022-03-05T10:00:00Z", nil, nil),
		pr(2, "2021-01-01T10:00:00Z", "2021-01-02T10:00:00Z", nil, nil),
		pr(1, "2022-03-05T10:00:00Z", "2022-03-06T10:00:00Z", nil, nil),
	}

	set := FilterPage(prs, w)
	require.Equal(t, 1, set.Len(), "same projection collapses")
	assert.Equal(t, int64(1), set.Records()[0].ID)
}
