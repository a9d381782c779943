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
	"time"

	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
)

const dateLayout = "2006-01-02"

// Window is an inclusive range of calendar dates in YYYY-MM-DD form.
// Dates compare as strings, which orders them chronologically.
type Window struct {
	Start string
	End   string
}

// ParseWindow checks that start and end are calendar dates. A window whose
// start is after its end is valid and matches nothing.
func ParseWindow(start, end string) (Window, error) {
	if _, err := time.Parse(dateLayout, start); err != nil {
		return Window{}, fmt.Errorf("start date %q is not YYYY-MM-DD: %w", start, relaierrors.ErrInvalidWindow)
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return Window{}, fmt.Errorf("end date %q is not YYYY-MM-DD: %w", end, relaierrors.ErrInvalidWindow)
	}
	return Window{Start: start, End: end}, nil
}

// Inverted reports whether Start is after End.
func (w Window) Inverted() bool {
	return w.Start > w.End
}

// Contains reports whether the date portion of timestamp lies in the window.
func (w Window) Contains(timestamp string) bool {
	date := datePart(timestamp)
	return date >= w.Start && date <= w.End
}

func (w Window) String() string {
	return w.Start + ".." + w.End
}

// datePart returns the leading YYYY-MM-DD of an ISO-8601 timestamp.
func datePart(timestamp string) string {
	if len(timestamp) < len(dateLayout) {
		return timestamp
	}
	return timestamp[:len(dateLayout)]
}
