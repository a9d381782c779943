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

// ResultSet is a set of Records that remembers the order in which distinct
// records were first added. The zero value is not usable; call NewResultSet.
type ResultSet struct {
	index map[Record]struct{}
	order []Record
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{index: make(map[Record]struct{})}
}

// Add inserts r and reports whether it was not already present.
func (s *ResultSet) Add(r Record) bool {
	if _, ok := s.index[r]; ok {
		return false
	}
	s.index[r] = struct{}{}
	s.order = append(s.order, r)
	return true
}

// Merge adds every record of other and returns how many were new. onAdd,
// if non-nil, is called once for each newly added record in insertion order.
func (s *ResultSet) Merge(other *ResultSet, onAdd func(Record)) int {
	added := 0
	for _, r := range other.order {
		if s.Add(r) {
			added++
			if onAdd != nil {
				onAdd(r)
			}
		}
	}
	return added
}

// Contains reports whether r is in the set.
func (s *ResultSet) Contains(r Record) bool {
	_, ok := s.index[r]
	return ok
}

// Len returns the number of distinct records.
func (s *ResultSet) Len() int {
	return len(s.order)
}

// Records returns the records in first-insertion order. The result is
// never nil.
func (s *ResultSet) Records() []Record {
	out := make([]Record, len(s.order))
	copy(out, s.order)
	return out
}

// FilterPage projects the pull requests of one page that match w.
func FilterPage(prs []github.PullRequest, w Window) *ResultSet {
	set := NewResultSet()
	for _, pr := range prs {
		if Matches(pr, w) {
			set.Add(Project(pr))
		}
	}
	return set
}
