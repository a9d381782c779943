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

// Package output writes fetched records to stdout or a file.
//
// Two formats are supported. Writer emits NDJSON (one JSON object per line)
// and flushes every record as it is written. ArrayWriter collects records and
// emits a single JSON array when closed, which is the default: the result of
// a fetch is one list.
//
// Example usage:
//
//	w, err := output.Open(output.FormatJSON, "pulls.json", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	for _, record := range records {
//	    if err := w.Write(record); err != nil {
//	        return err
//	    }
//	}
//	return w.Close()
package output
