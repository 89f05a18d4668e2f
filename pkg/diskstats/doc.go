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

// Package diskstats parses and compares Linux block-device I/O statistics in
// the /proc/diskstats format.
//
// # Format
//
// Each line holds a device's major number, minor number and name followed by
// up to 17 counters (Documentation/admin-guide/iostats.rst). Older kernels
// emit fewer counters: 11 before 4.18, 15 before 5.5.
//
//	   8       0 sda 9741 2310 1015532 4208 33474 26157 2226688 33208 0 37856 48676 0 0 0 0 1890 1064
//
// # Loading
//
// Parse keeps every field as a raw string; numbers are only interpreted when
// compared. LoadFile reads the whole file before parsing:
//
//	snap, err := diskstats.LoadFile("/proc/diskstats")
//
// # Comparing
//
// Compare pairs the records of two snapshots and computes the percentage
// change of each counter. The change is undefined when the old value is zero.
//
//	cmp, err := diskstats.Compare(before, after, diskstats.WithPairMode(diskstats.PairByIdentity))
//
// Records are paired by position unless PairByIdentity is requested.
//
// # Metrics
//
// Loads and comparisons are counted in Registry, which WriteMetrics exports
// in the Prometheus text format.
package diskstats
