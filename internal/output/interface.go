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

package output

import (
	"fmt"
	"io"
	"os"
)

// Formats accepted by Open.
const (
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// OutputWriter defines the interface for writing records.
type OutputWriter interface {
	// Write writes a single record to the output.
	Write(record interface{}) error

	// Close finishes the output and releases any resources. Formats that
	// buffer, such as ArrayWriter, produce their output here.
	Close() error
}

// Open returns a writer for format. An empty path writes to stdout, which is
// never closed by the returned writer.
func Open(format, path string, stdout io.Writer) (OutputWriter, error) {
	switch format {
	case FormatJSON, "":
		if path == "" {
			return NewArrayWriter(stdout), nil
		}
		return NewFileArrayWriter(path)
	case FormatNDJSON:
		if path == "" {
			return NewWriter(stdout), nil
		}
		return NewFileWriter(path)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func createFile(filename string) (*os.File, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}
