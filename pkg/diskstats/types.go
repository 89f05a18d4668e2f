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
)

// DeviceRecord is one parsed diskstats line: raw, unconverted fields aligned
// to the schema. Loaded records always have at least FirstCounter fields;
// trailing counters may be missing on older kernels.
type DeviceRecord []string

// Identity names a block device.
type Identity struct {
	Name  string `json:"name" yaml:"name"`
	Major string `json:"major" yaml:"major"`
	Minor string `json:"minor" yaml:"minor"`
}

// String renders the identity as "name (major, minor)".
func (id Identity) String() string {
	return fmt.Sprintf("%s (%s, %s)", id.Name, id.Major, id.Minor)
}

// DeviceNumber returns the "major:minor" device number.
func (id Identity) DeviceNumber() string {
	return id.Major + ":" + id.Minor
}

// Identity returns the device identity. The line stores major, minor and
// name in that order.
func (r DeviceRecord) Identity() Identity {
	return Identity{
		Name:  r.field(IndexName),
		Major: r.field(IndexMajor),
		Minor: r.field(IndexMinor),
	}
}

// Name returns the device name.
func (r DeviceRecord) Name() string {
	return r.field(IndexName)
}

// Counters returns the raw counter values following the identity columns.
func (r DeviceRecord) Counters() []string {
	if len(r) <= FirstCounter {
		return nil
	}
	return r[FirstCounter:]
}

// String returns the record as a single space-separated line.
func (r DeviceRecord) String() string {
	return strings.Join(r, " ")
}

func (r DeviceRecord) field(i int) string {
	if i >= len(r) {
		return ""
	}
	return r[i]
}

// Snapshot is every device record read from one source at one instant,
// in the order the kernel listed them.
type Snapshot struct {
	Source  string
	Records []DeviceRecord
}

// Len returns the number of records.
func (s *Snapshot) Len() int {
	return len(s.Records)
}

// Index returns the position of each record keyed by "major:minor".
// When a device number repeats, the first occurrence wins.
func (s *Snapshot) Index() map[string]int {
	idx := make(map[string]int, len(s.Records))
	for i, r := range s.Records {
		key := r.Identity().DeviceNumber()
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// Filter is a set of device names. An empty filter matches every device.
type Filter map[string]struct{}

// NewFilter builds a filter from device names.
func NewFilter(names ...string) Filter {
	f := make(Filter, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	return f
}

// Match reports whether the named device passes the filter.
func (f Filter) Match(name string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[name]
	return ok
}
