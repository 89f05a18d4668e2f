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

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kpeletidis/perfplot/pkg/defaults"
	"github.com/kpeletidis/perfplot/pkg/diskstats"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
	"github.com/kpeletidis/perfplot/pkg/header"
)

// DiffReport is a snapshot comparison that can be written as aligned text.
// JSON and YAML encodings are the report header followed by the fields of
// the underlying Comparison.
type DiffReport struct {
	header.Header        `yaml:",inline"`
	diskstats.Comparison `yaml:",inline"`
}

// NewDiffReport wraps a comparison for output.
func NewDiffReport(cmp *diskstats.Comparison) *DiffReport {
	return &DiffReport{Comparison: *cmp}
}

// WriteText writes one block per device pair: a blank line, a header with
// both device names, then one line per compared counter with both raw
// values and the percentage change. Devices left unpaired in identity mode
// are listed after the blocks.
func (r *DiffReport) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, p := range r.Pairs {
		fmt.Fprintf(bw, "\n\t\t\t%s\t%s\t%s\n",
			rjust(p.Old.Name, defaults.ValueColumnWidth),
			rjust(p.New.Name, defaults.ValueColumnWidth),
			rjust("%", defaults.PercentColumnWidth))

		for _, f := range p.Fields {
			fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n",
				f.Field.DiffLabel,
				rjust(f.Old, defaults.ValueColumnWidth),
				rjust(f.New, defaults.ValueColumnWidth),
				f.Percent)
		}
	}

	if len(r.OldOnly)+len(r.NewOnly) > 0 {
		fmt.Fprintln(bw)
		for _, id := range r.OldOnly {
			fmt.Fprintf(bw, "old-only device: %s\n", id)
		}
		for _, id := range r.NewOnly {
			fmt.Fprintf(bw, "new-only device: %s\n", id)
		}
	}

	if err := bw.Flush(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write diff report", err)
	}
	return nil
}

// RenderDiff writes cmp to w as aligned text.
func RenderDiff(w io.Writer, cmp *diskstats.Comparison) error {
	return NewDiffReport(cmp).WriteText(w)
}

// rjust right-justifies s to width runes. Longer strings are not truncated.
func rjust(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
