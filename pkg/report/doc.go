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

// Package report renders diskstats snapshots and comparisons as text.
//
// A Formatter prints the named counters of each device:
//
//	sda (8, 0)
//	ReadsCmpltd:	9741
//	ReadsMerged:	2310
//	...
//
// A DiffReport prints one block per device pair with both raw values
// right-justified and the percentage change, "-" when the old value is zero:
//
//	 			       sda	       sda	  %
//	ReadsCmpltd:		       100	       150	50.0
//
// Both report types implement WriteText and also encode as JSON or YAML
// through pkg/serializer.
package report
