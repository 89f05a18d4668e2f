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

import (
	"strings"
	"testing"
)

func TestSnapshotDefaults(t *testing.T) {
	if !strings.HasPrefix(DiskstatsPath, "/proc/") {
		t.Errorf("DiskstatsPath = %q, expected a procfs path", DiskstatsPath)
	}
	if MaxSnapshotSize < 1<<20 {
		t.Errorf("MaxSnapshotSize (%d) is below 1MB", MaxSnapshotSize)
	}
}

func TestReportLayout(t *testing.T) {
	tests := []struct {
		name  string
		value int
		min   int
		max   int
	}{
		{"ValueColumnWidth", ValueColumnWidth, 8, 20},
		{"PercentColumnWidth", PercentColumnWidth, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value < tt.min || tt.value > tt.max {
				t.Errorf("%s = %d, expected within [%d, %d]", tt.name, tt.value, tt.min, tt.max)
			}
		})
	}

	if UndefinedPercent == "" {
		t.Error("UndefinedPercent must not be empty")
	}
}
