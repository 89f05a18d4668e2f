// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diskstats

import (
	"fmt"

	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

// Field indexes of the identity columns. Counters start at FirstCounter.
const (
	IndexMajor = iota
	IndexMinor
	IndexName
	FirstCounter
)

// Field describes one column of a diskstats line.
type Field struct {
	// Key is a stable machine-readable name used in JSON and YAML output.
	Key string `json:"key" yaml:"key"`
	// Label is the single-value report label.
	Label string `json:"-" yaml:"-"`
	// DiffLabel is the paired-diff report label, padded with tabs for alignment.
	DiffLabel string `json:"-" yaml:"-"`
}

// Schema is an immutable, ordered list of diskstats columns.
type Schema struct {
	fields []Field
}

// Column layout per Documentation/admin-guide/iostats.rst. Discard counters
// appeared in 4.18 and flush counters in 5.5.
var defaultSchema = &Schema{
	fields: []Field{
		{Key: "major", Label: "MajorNum:", DiffLabel: "MajorNum:\t"},
		{Key: "minor", Label: "MinorNum:", DiffLabel: "MinorNum:\t"},
		{Key: "device", Label: "DeviceName:", DiffLabel: "DeviceName:\t"},
		{Key: "reads_completed", Label: "ReadsCmpltd:", DiffLabel: "ReadsCmpltd:\t"},
		{Key: "reads_merged", Label: "ReadsMerged:", DiffLabel: "ReadsMerged:\t"},
		{Key: "sectors_read", Label: "SectorsRead:", DiffLabel: "SectorsRead:\t"},
		{Key: "read_ms", Label: "Read_ms:", DiffLabel: "Read_ms:\t"},
		{Key: "writes_completed", Label: "WritesCmpltd:", DiffLabel: "WritesCmpltd:\t"},
		{Key: "writes_merged", Label: "WritesMerged:", DiffLabel: "WritesMerged:\t"},
		{Key: "sectors_written", Label: "SectorsWritten:", DiffLabel: "SectorsWritten:\t"},
		{Key: "write_ms", Label: "Write_ms:", DiffLabel: "Write_ms:\t"},
		{Key: "io_in_progress", Label: "IOCurr:    ", DiffLabel: "IOCurr:\t\t"},
		{Key: "io_ms", Label: "IO_ms:    ", DiffLabel: "IO_ms:\t\t"},
		{Key: "io_ms_weighted", Label: "IO_ms_weighted:", DiffLabel: "IO_ms_weighted:\t"},
		{Key: "discards_completed", Label: "DiscardsCmpltd:", DiffLabel: "DiscardsCmpltd:\t"},
		{Key: "discards_merged", Label: "DiscardsMerged:", DiffLabel: "DiscardsMerged:\t"},
		{Key: "sectors_discarded", Label: "SectorsDiscrd:", DiffLabel: "SectorsDiscrd:\t"},
		{Key: "discard_ms", Label: "Discard_ms:", DiffLabel: "Discard_ms:\t"},
		{Key: "flush_completed", Label: "FlushCompl:", DiffLabel: "FlushCompl:\t"},
		{Key: "flush_ms", Label: "Flush_ms:", DiffLabel: "Flush_ms:\t"},
	},
}

// DefaultSchema returns the kernel diskstats schema. The returned value is
// shared and must be treated as read-only.
func DefaultSchema() *Schema {
	return defaultSchema
}

// Len returns the number of columns in the schema.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Field returns the column at index i. An index outside the schema means the
// caller's record is longer than the schema and yields a FORMAT_ERROR.
func (s *Schema) Field(i int) (Field, error) {
	if i < 0 || i >= len(s.fields) {
		return Field{}, apperrors.NewWithContext(apperrors.ErrCodeFormat,
			fmt.Sprintf("field index %d out of range for schema of %d fields", i, len(s.fields)),
			map[string]any{"index": i})
	}
	return s.fields[i], nil
}

// Label returns the single-value label for index i.
func (s *Schema) Label(i int) (string, error) {
	f, err := s.Field(i)
	if err != nil {
		return "", err
	}
	return f.Label, nil
}

// DiffLabel returns the paired-diff label for index i.
func (s *Schema) DiffLabel(i int) (string, error) {
	f, err := s.Field(i)
	if err != nil {
		return "", err
	}
	return f.DiffLabel, nil
}

// Check verifies that a record fits the schema.
func (s *Schema) Check(r DeviceRecord) error {
	if len(r) > len(s.fields) {
		return apperrors.NewWithContext(apperrors.ErrCodeFormat,
			fmt.Sprintf("record has %d fields, schema defines %d", len(r), len(s.fields)),
			map[string]any{"device": r.Name()})
	}
	return nil
}
