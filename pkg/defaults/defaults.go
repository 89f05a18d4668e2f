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

package defaults

// Snapshot source defaults.
const (
	// DiskstatsPath is the kernel's per-block-device I/O statistics file.
	DiskstatsPath = "/proc/diskstats"

	// MaxSnapshotSize bounds how many bytes of a snapshot file are accepted.
	// A diskstats line is under 200 bytes, so this leaves room for tens of
	// thousands of devices.
	MaxSnapshotSize = 16 << 20
)

// Report layout.
const (
	// ValueColumnWidth is the right-justification width of raw counter
	// values and device names in diff reports.
	ValueColumnWidth = 10

	// PercentColumnWidth is the right-justification width of the percent
	// column header in diff reports.
	PercentColumnWidth = 3

	// UndefinedPercent is rendered in place of a percentage when the old
	// value is zero.
	UndefinedPercent = "-"
)
