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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/kpeletidis/perfplot/pkg/defaults"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

// Option configures a Reader.
type Option func(*Reader)

// Reader reads whole text files with size and encoding checks.
type Reader struct {
	maxSize      int
	validateUTF8 bool
}

// WithMaxSize sets the maximum size (in bytes) of the file to be read.
// Default is defaults.MaxSnapshotSize.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// WithUTF8Validation sets whether content must be valid UTF-8.
// Default is true.
func WithUTF8Validation(validate bool) Option {
	return func(r *Reader) {
		r.validateUTF8 = validate
	}
}

// NewReader creates a new file reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize:      defaults.MaxSnapshotSize,
		validateUTF8: true,
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadContent opens the file at path, reads it fully and closes it before
// returning the content. Files under /proc report a zero size, so the limit
// is enforced on the bytes actually read rather than on the stat size.
//
// A missing file yields an ErrCodeNotFound error; every other failure
// yields ErrCodeIO.
func (r *Reader) ReadContent(path string) (string, error) {
	if path == "" {
		return "", apperrors.New(apperrors.ErrCodeIO, "file path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		code := apperrors.ErrCodeIO
		if errors.Is(err, fs.ErrNotExist) {
			code = apperrors.ErrCodeNotFound
		}
		return "", apperrors.WrapWithContext(code, "failed to open file", err,
			map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Debug("failed to close file", "path", path, "error", cerr)
		}
	}()

	b, err := io.ReadAll(io.LimitReader(f, int64(r.maxSize)+1))
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeIO, "failed to read file", err,
			map[string]any{"path": path})
	}

	if len(b) > r.maxSize {
		return "", apperrors.NewWithContext(apperrors.ErrCodeIO,
			fmt.Sprintf("file exceeds maximum size of %d bytes", r.maxSize),
			map[string]any{"path": path})
	}

	if r.validateUTF8 && !utf8.Valid(b) {
		return "", apperrors.NewWithContext(apperrors.ErrCodeIO, "file content is not valid UTF-8",
			map[string]any{"path": path})
	}

	slog.Debug("read file", "path", path, "bytes", len(b))
	return string(b), nil
}
