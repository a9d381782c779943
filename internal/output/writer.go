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
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Writer handles streaming NDJSON output to a file or io.Writer.
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates a new NDJSON writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output:  w,
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates a new NDJSON writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := createFile(filename)
	if err != nil {
		return nil, err
	}

	return &Writer{
		output:    file,
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes a single record as NDJSON.
// Each record is immediately flushed to the output.
func (w *Writer) Write(record interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

// ArrayWriter collects records and writes them as one indented JSON array
// on Close. Closing with no records writes [].
type ArrayWriter struct {
	mu        sync.Mutex
	output    io.Writer
	records   []json.RawMessage
	closed    bool
	closeFunc func() error
}

// NewArrayWriter creates an ArrayWriter that writes to w.
func NewArrayWriter(w io.Writer) *ArrayWriter {
	return &ArrayWriter{
		output:  w,
		records: []json.RawMessage{},
	}
}

// NewFileArrayWriter creates an ArrayWriter that writes to a file.
func NewFileArrayWriter(filename string) (*ArrayWriter, error) {
	file, err := createFile(filename)
	if err != nil {
		return nil, err
	}

	w := NewArrayWriter(file)
	w.closeFunc = file.Close
	return w, nil
}

// Write encodes record and holds it until Close.
func (w *ArrayWriter) Write(record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("write after close")
	}
	w.records = append(w.records, data)
	return nil
}

// Count returns the number of records written.
func (w *ArrayWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.records)
}

// Close writes the array and closes the underlying file, if any. Only the
// first call writes.
func (w *ArrayWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(w.records)
	if err != nil {
		err = fmt.Errorf("failed to write records: %w", err)
	}

	if w.closeFunc != nil {
		if closeErr := w.closeFunc(); err == nil {
			err = closeErr
		}
	}
	return err
}
