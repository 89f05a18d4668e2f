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

// Package serializer writes report values in one of several output formats.
//
// The package supports three formats:
//   - Text: the value's own human-readable rendering (default)
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable structured data
//
// Usage:
//
//	w := serializer.NewStdoutWriter(serializer.FormatJSON)
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Text output requires the value to implement TextWriter.
package serializer

import (
	"context"
	"io"
)

// Serializer is an interface for serializing report data.
//
// The context parameter is used for cancellation: a canceled context stops
// the write before any output is produced.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// TextWriter is implemented by values with a human-readable text rendering.
type TextWriter interface {
	WriteText(w io.Writer) error
}
