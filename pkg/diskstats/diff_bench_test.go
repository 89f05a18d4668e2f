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
	"strings"
	"testing"
)

func benchmarkSnapshot(b *testing.B, devices int, scale int) *Snapshot {
	b.Helper()
	var sb strings.Builder
	for i := range devices {
		fmt.Fprintf(&sb, "8 %d sd%d", i*16, i)
		for f := range 17 {
			fmt.Fprintf(&sb, " %d", (i+f+1)*scale)
		}
		sb.WriteByte('\n')
	}
	snap, err := Parse("bench", sb.String())
	if err != nil {
		b.Fatal(err)
	}
	return snap
}

func BenchmarkParse(b *testing.B) {
	content := strings.Repeat(" 8 0 sda 9741 2310 1015532 4208 33474 26157 2226688 33208 0 37856 48676 0 0 0 0 1890 1064\n", 256)
	for b.Loop() {
		if _, err := Parse("bench", content); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComparePosition(b *testing.B) {
	oldSnap := benchmarkSnapshot(b, 256, 1)
	newSnap := benchmarkSnapshot(b, 256, 3)
	for b.Loop() {
		if _, err := Compare(oldSnap, newSnap); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareIdentity(b *testing.B) {
	oldSnap := benchmarkSnapshot(b, 256, 1)
	newSnap := benchmarkSnapshot(b, 256, 3)
	for b.Loop() {
		if _, err := Compare(oldSnap, newSnap, WithPairMode(PairByIdentity)); err != nil {
			b.Fatal(err)
		}
	}
}
