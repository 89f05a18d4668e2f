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

// Package file provides utilities for reading snapshot files from the filesystem.
//
// Files are read in a single scoped acquisition: opened, read in full and
// closed before the content is returned. Nothing is streamed.
//
// # Usage
//
//	content, err := file.NewReader().ReadContent("/proc/diskstats")
//	if err != nil {
//	    // Handle error
//	}
//
// # Error Handling
//
// Errors are structured errors from pkg/errors:
//   - ErrCodeNotFound: the file does not exist
//   - ErrCodeIO: permission denied, read failure, size limit exceeded,
//     or invalid UTF-8 content
//
// The path is attached to the error context.
package file
