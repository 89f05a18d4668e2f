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

package header

import (
	"time"
)

// APIVersion is the version of the structured report format.
const APIVersion = "diskstats.perfplot.io/v1"

// Kind identifies the type of a report document.
type Kind string

const (
	KindSnapshot Kind = "DiskSnapshot"
	KindDiff     Kind = "DiskDiff"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known report kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindSnapshot, KindDiff:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring a Header.
type Option func(*Header)

// WithMetadata sets one metadata key.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the report kind.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// New creates a new Header with the provided functional options.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains the type and provenance of a report.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the kind and API version and records the current UTC time and
// the producing tool version in Metadata. Existing metadata keys are kept.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}
