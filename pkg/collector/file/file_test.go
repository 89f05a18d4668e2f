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

package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpeletidis/perfplot/pkg/defaults"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

func TestNewReader(t *testing.T) {
	tests := []struct {
		name             string
		opts             []Option
		expectedMaxSize  int
		expectedValidate bool
	}{
		{
			name:             "default options",
			opts:             nil,
			expectedMaxSize:  defaults.MaxSnapshotSize,
			expectedValidate: true,
		},
		{
			name:             "custom max size",
			opts:             []Option{WithMaxSize(1024)},
			expectedMaxSize:  1024,
			expectedValidate: true,
		},
		{
			name:             "utf8 validation disabled",
			opts:             []Option{WithUTF8Validation(false)},
			expectedMaxSize:  defaults.MaxSnapshotSize,
			expectedValidate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.opts...)
			if r.maxSize != tt.expectedMaxSize {
				t.Errorf("maxSize = %d, want %d", r.maxSize, tt.expectedMaxSize)
			}
			if r.validateUTF8 != tt.expectedValidate {
				t.Errorf("validateUTF8 = %v, want %v", r.validateUTF8, tt.expectedValidate)
			}
		})
	}
}

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diskstats")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestReadContent(t *testing.T) {
	content := "   8       0 sda 100 5 800 50\n   8       1 sda1 10 0 80 5\n"
	path := writeFile(t, []byte(content))

	got, err := NewReader().ReadContent(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("ReadContent() = %q, want %q", got, content)
	}
}

func TestReadContentErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		opts     []Option
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "empty path",
			path:     func(*testing.T) string { return "" },
			wantCode: apperrors.ErrCodeIO,
			wantMsg:  "cannot be empty",
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			wantCode: apperrors.ErrCodeNotFound,
			wantMsg:  "failed to open file",
		},
		{
			name:     "directory",
			path:     func(t *testing.T) string { return t.TempDir() },
			wantCode: apperrors.ErrCodeIO,
			wantMsg:  "failed to read file",
		},
		{
			name: "exceeds max size",
			path: func(t *testing.T) string {
				return writeFile(t, []byte(strings.Repeat("x", 65)))
			},
			opts:     []Option{WithMaxSize(64)},
			wantCode: apperrors.ErrCodeIO,
			wantMsg:  "exceeds maximum size of 64 bytes",
		},
		{
			name: "invalid utf8",
			path: func(t *testing.T) string {
				return writeFile(t, []byte{0xff, 0xfe, 0xfd})
			},
			wantCode: apperrors.ErrCodeIO,
			wantMsg:  "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(tt.opts...).ReadContent(tt.path(t))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := apperrors.CodeOf(err); code != tt.wantCode {
				t.Errorf("code = %s, want %s", code, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReadContentAtSizeLimit(t *testing.T) {
	path := writeFile(t, []byte(strings.Repeat("x", 64)))

	got, err := NewReader(WithMaxSize(64)).ReadContent(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 64 {
		t.Errorf("len = %d, want 64", len(got))
	}
}

func TestReadContentSkipsUTF8Validation(t *testing.T) {
	path := writeFile(t, []byte{0xff, '\n'})

	got, err := NewReader(WithUTF8Validation(false)).ReadContent(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
