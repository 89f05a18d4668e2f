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

// Package defaults provides centralized configuration constants for the diskstats tool.
//
// This package defines the default snapshot source, input size limits and
// report column widths used across the codebase. Centralizing these values
// keeps the CLI, the loader and the report renderer in agreement.
//
// # Usage
//
//	import "github.com/kpeletidis/perfplot/pkg/defaults"
//
//	snap, err := diskstats.LoadFile(defaults.DiskstatsPath)
package defaults
