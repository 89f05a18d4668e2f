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
	"math"
	"strconv"
	"strings"

	"github.com/kpeletidis/perfplot/pkg/defaults"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

// PairMode selects how records of two snapshots are matched.
type PairMode string

const (
	// PairByPosition pairs the i-th record of each snapshot. Comparison stops
	// at the shorter snapshot and extra records are ignored. Unrelated devices
	// are compared when the two snapshots list devices in different orders.
	PairByPosition PairMode = "position"
	// PairByIdentity pairs records with the same major:minor device number
	// and reports devices found on one side only.
	PairByIdentity PairMode = "identity"
)

// IsValid reports whether m is a supported pairing mode.
func (m PairMode) IsValid() bool {
	switch m {
	case PairByPosition, PairByIdentity:
		return true
	default:
		return false
	}
}

// SupportedPairModes returns the names of all pairing modes.
func SupportedPairModes() []string {
	return []string{string(PairByPosition), string(PairByIdentity)}
}

// Percent is a percentage change. It is undefined when the old value is zero.
type Percent struct {
	Value   float64
	Defined bool
}

// String renders the percentage the way the report prints it: a shortest
// round-trip decimal that always carries a fractional part ("50.0",
// "-25.0", "12.35"), or "-" when undefined.
func (p Percent) String() string {
	if !p.Defined {
		return defaults.UndefinedPercent
	}
	return formatFloat(p.Value)
}

// MarshalJSON encodes an undefined percentage as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Defined || math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(p.Value, 'f', -1, 64)), nil
}

// MarshalYAML encodes an undefined percentage as null.
func (p Percent) MarshalYAML() (any, error) {
	if !p.Defined {
		return nil, nil
	}
	return p.Value, nil
}

// PercentChange computes round((new-old)*100/old, 2) from two raw counter
// values. The result is undefined when old is zero. Either value failing to
// parse as a number yields a FORMAT_ERROR.
func PercentChange(oldRaw, newRaw string) (Percent, error) {
	oldV, err := parseCounter(oldRaw)
	if err != nil {
		return Percent{}, err
	}
	newV, err := parseCounter(newRaw)
	if err != nil {
		return Percent{}, err
	}
	if oldV == 0 {
		return Percent{}, nil
	}
	return Percent{Value: round2(((newV - oldV) * 100) / oldV), Defined: true}, nil
}

func parseCounter(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeFormat,
			fmt.Sprintf("counter value %q is not numeric", raw), err,
			map[string]any{"value": raw})
	}
	return v, nil
}

// round2 rounds half-to-even on the exact binary value, matching
// correctly rounded decimal formatting.
func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FieldDiff is the comparison of one counter between two records.
type FieldDiff struct {
	Index   int     `json:"-" yaml:"-"`
	Field   Field   `json:"-" yaml:"-"`
	Key     string  `json:"field" yaml:"field"`
	Old     string  `json:"old" yaml:"old"`
	New     string  `json:"new" yaml:"new"`
	Percent Percent `json:"percent" yaml:"percent"`
}

// DevicePair holds the per-field comparison of two paired records.
type DevicePair struct {
	Old    Identity    `json:"old" yaml:"old"`
	New    Identity    `json:"new" yaml:"new"`
	Fields []FieldDiff `json:"fields" yaml:"fields"`
}

// Comparison is the result of comparing two snapshots.
type Comparison struct {
	OldSource string       `json:"oldSource" yaml:"oldSource"`
	NewSource string       `json:"newSource" yaml:"newSource"`
	Mode      PairMode     `json:"pairBy" yaml:"pairBy"`
	Pairs     []DevicePair `json:"devices" yaml:"devices"`
	OldOnly   []Identity   `json:"oldOnly,omitempty" yaml:"oldOnly,omitempty"`
	NewOnly   []Identity   `json:"newOnly,omitempty" yaml:"newOnly,omitempty"`
}

// CompareOption configures Compare.
type CompareOption func(*compareConfig)

type compareConfig struct {
	mode   PairMode
	schema *Schema
}

// WithPairMode sets the pairing mode. Default is PairByPosition.
func WithPairMode(mode PairMode) CompareOption {
	return func(c *compareConfig) {
		c.mode = mode
	}
}

// WithSchema sets the schema used to name fields. Default is DefaultSchema().
func WithSchema(s *Schema) CompareOption {
	return func(c *compareConfig) {
		c.schema = s
	}
}

// Compare pairs the records of two snapshots and computes the percentage
// change of every counter present in both records of a pair.
func Compare(oldSnap, newSnap *Snapshot, opts ...CompareOption) (*Comparison, error) {
	cfg := compareConfig{
		mode:   PairByPosition,
		schema: DefaultSchema(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.mode.IsValid() {
		return nil, apperrors.New(apperrors.ErrCodeUsage,
			fmt.Sprintf("unsupported pairing mode %q, supported values: %v", cfg.mode, SupportedPairModes()))
	}

	cmp := &Comparison{
		OldSource: oldSnap.Source,
		NewSource: newSnap.Source,
		Mode:      cfg.mode,
	}

	var pairs [][2]DeviceRecord
	if cfg.mode == PairByIdentity {
		pairs, cmp.OldOnly, cmp.NewOnly = pairByIdentity(oldSnap, newSnap)
	} else {
		pairs = pairByPosition(oldSnap, newSnap)
	}

	cmp.Pairs = make([]DevicePair, 0, len(pairs))
	for _, p := range pairs {
		dp, err := comparePair(cfg.schema, p[0], p[1])
		if err != nil {
			return nil, err
		}
		cmp.Pairs = append(cmp.Pairs, dp)
	}

	slog.Debug("compared snapshots",
		"old", oldSnap.Source,
		"new", newSnap.Source,
		"pairBy", cfg.mode,
		"pairs", len(cmp.Pairs),
		"oldOnly", len(cmp.OldOnly),
		"newOnly", len(cmp.NewOnly))

	return cmp, nil
}

func pairByPosition(oldSnap, newSnap *Snapshot) [][2]DeviceRecord {
	n := min(oldSnap.Len(), newSnap.Len())
	if oldSnap.Len() != newSnap.Len() {
		slog.Warn("snapshots differ in device count, extra records are ignored",
			"old", oldSnap.Len(), "new", newSnap.Len())
	}
	pairs := make([][2]DeviceRecord, n)
	for i := range n {
		pairs[i] = [2]DeviceRecord{oldSnap.Records[i], newSnap.Records[i]}
	}
	return pairs
}

func pairByIdentity(oldSnap, newSnap *Snapshot) (pairs [][2]DeviceRecord, oldOnly, newOnly []Identity) {
	newIdx := newSnap.Index()
	used := make(map[int]bool, len(newIdx))

	for _, r := range oldSnap.Records {
		id := r.Identity()
		j, ok := newIdx[id.DeviceNumber()]
		if !ok || used[j] {
			oldOnly = append(oldOnly, id)
			continue
		}
		used[j] = true
		pairs = append(pairs, [2]DeviceRecord{r, newSnap.Records[j]})
	}

	for j, r := range newSnap.Records {
		if !used[j] {
			newOnly = append(newOnly, r.Identity())
		}
	}
	return pairs, oldOnly, newOnly
}

func comparePair(schema *Schema, oldRec, newRec DeviceRecord) (DevicePair, error) {
	dp := DevicePair{
		Old:    oldRec.Identity(),
		New:    newRec.Identity(),
		Fields: []FieldDiff{},
	}

	n := min(len(oldRec), len(newRec))
	if n > schema.Len() {
		slog.Warn("records are longer than the field schema, extra fields are not compared",
			"device", dp.Old.Name, "fields", n, "schema", schema.Len())
		n = schema.Len()
	}

	for i := FirstCounter; i < n; i++ {
		f, err := schema.Field(i)
		if err != nil {
			return DevicePair{}, err
		}
		pct, err := PercentChange(oldRec[i], newRec[i])
		if err != nil {
			return DevicePair{}, fmt.Errorf("device %s, field %s: %w", dp.Old, f.Key, err)
		}
		if pct.Defined {
			compareFieldsTotal.WithLabelValues("defined").Inc()
		} else {
			compareFieldsTotal.WithLabelValues("undefined").Inc()
		}
		dp.Fields = append(dp.Fields, FieldDiff{
			Index:   i,
			Field:   f,
			Key:     f.Key,
			Old:     oldRec[i],
			New:     newRec[i],
			Percent: pct,
		})
	}
	return dp, nil
}
