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
	"log/slog"
	"strings"
	"time"

	"github.com/kpeletidis/perfplot/pkg/collector/file"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

// Parse turns diskstats text into a Snapshot. Empty and blank lines are
// skipped; every other line is split on whitespace without numeric
// conversion. A line with fewer than FirstCounter tokens yields a
// FORMAT_ERROR naming the source and the 1-based line number.
func Parse(source, content string) (*Snapshot, error) {
	snap := &Snapshot{Source: source}

	for i, line := range strings.Split(content, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < FirstCounter {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeFormat,
				fmt.Sprintf("line %d has %d fields, expected at least %d", i+1, len(tokens), FirstCounter),
				map[string]any{"source": source, "line": i + 1})
		}
		snap.Records = append(snap.Records, DeviceRecord(tokens))
	}

	return snap, nil
}

// LoadFile reads the file at path in full and parses it. Read failures keep
// their NOT_FOUND or IO_ERROR code.
func LoadFile(path string, opts ...file.Option) (*Snapshot, error) {
	start := time.Now()
	defer func() {
		snapshotLoadDuration.Observe(time.Since(start).Seconds())
	}()

	content, err := file.NewReader(opts...).ReadContent(path)
	if err != nil {
		observeLoad(err)
		return nil, fmt.Errorf("failed to load snapshot %q: %w", path, err)
	}

	snap, err := Parse(path, content)
	if err != nil {
		observeLoad(err)
		return nil, fmt.Errorf("failed to parse snapshot %q: %w", path, err)
	}

	observeLoad(nil)
	snapshotRecords.Set(float64(snap.Len()))
	slog.Debug("loaded snapshot", "source", path, "records", snap.Len())
	return snap, nil
}
