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
	"strings"
	"testing"

	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

func TestDefaultSchemaLayout(t *testing.T) {
	s := DefaultSchema()
	if s.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", s.Len())
	}

	tests := []struct {
		index     int
		key       string
		label     string
		diffLabel string
	}{
		{IndexMajor, "major", "MajorNum:", "MajorNum:\t"},
		{IndexMinor, "minor", "MinorNum:", "MinorNum:\t"},
		{IndexName, "device", "DeviceName:", "DeviceName:\t"},
		{FirstCounter, "reads_completed", "ReadsCmpltd:", "ReadsCmpltd:\t"},
		{11, "io_in_progress", "IOCurr:    ", "IOCurr:\t\t"},
		{12, "io_ms", "IO_ms:    ", "IO_ms:\t\t"},
		{13, "io_ms_weighted", "IO_ms_weighted:", "IO_ms_weighted:\t"},
		{19, "flush_ms", "Flush_ms:", "Flush_ms:\t"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, err := s.Field(tt.index)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Key != tt.key {
				t.Errorf("Key = %q, want %q", f.Key, tt.key)
			}

			label, err := s.Label(tt.index)
			if err != nil || label != tt.label {
				t.Errorf("Label() = %q, %v; want %q", label, err, tt.label)
			}

			diffLabel, err := s.DiffLabel(tt.index)
			if err != nil || diffLabel != tt.diffLabel {
				t.Errorf("DiffLabel() = %q, %v; want %q", diffLabel, err, tt.diffLabel)
			}
		})
	}
}

func TestSchemaDiffLabelsEndWithTab(t *testing.T) {
	s := DefaultSchema()
	seen := make(map[string]bool)
	for i := range s.Len() {
		f, _ := s.Field(i)
		if !strings.HasSuffix(f.DiffLabel, "\t") {
			t.Errorf("DiffLabel %q at %d does not end with a tab", f.DiffLabel, i)
		}
		if !strings.HasPrefix(f.DiffLabel, strings.TrimSpace(f.Label)) {
			t.Errorf("DiffLabel %q does not start with label %q", f.DiffLabel, f.Label)
		}
		if seen[f.Key] {
			t.Errorf("duplicate key %q", f.Key)
		}
		seen[f.Key] = true
	}
}

func TestSchemaOutOfRange(t *testing.T) {
	s := DefaultSchema()
	for _, i := range []int{-1, 20, 21} {
		if _, err := s.Label(i); !apperrors.IsCode(err, apperrors.ErrCodeFormat) {
			t.Errorf("Label(%d) error = %v, want FORMAT_ERROR", i, err)
		}
		if _, err := s.DiffLabel(i); !apperrors.IsCode(err, apperrors.ErrCodeFormat) {
			t.Errorf("DiffLabel(%d) error = %v, want FORMAT_ERROR", i, err)
		}
	}
}

func TestSchemaCheck(t *testing.T) {
	s := DefaultSchema()

	full := make(DeviceRecord, 20)
	if err := s.Check(full); err != nil {
		t.Errorf("Check(20 fields) = %v, want nil", err)
	}

	short := DeviceRecord{"8", "0", "sda", "1"}
	if err := s.Check(short); err != nil {
		t.Errorf("Check(4 fields) = %v, want nil", err)
	}

	long := append(DeviceRecord{"8", "0", "sda"}, make([]string, 18)...)
	err := s.Check(long)
	if !apperrors.IsCode(err, apperrors.ErrCodeFormat) {
		t.Fatalf("Check(21 fields) = %v, want FORMAT_ERROR", err)
	}
	if !strings.Contains(err.Error(), "record has 21 fields") {
		t.Errorf("unexpected message: %v", err)
	}
}
