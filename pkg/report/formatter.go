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

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kpeletidis/perfplot/pkg/diskstats"
	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
	"github.com/kpeletidis/perfplot/pkg/header"
)

// Counter is one named counter value of a device.
type Counter struct {
	Key   string `json:"field" yaml:"field"`
	Label string `json:"-" yaml:"-"`
	Value string `json:"value" yaml:"value"`
}

// DeviceReport holds the named counters of one device.
type DeviceReport struct {
	Device   diskstats.Identity `json:"device" yaml:"device"`
	Counters []Counter          `json:"counters" yaml:"counters"`
}

// SnapshotReport holds the device reports of one snapshot in source order.
type SnapshotReport struct {
	header.Header `yaml:",inline"`
	Source  string         `json:"source" yaml:"source"`
	Devices []DeviceReport `json:"devices" yaml:"devices"`
}

// WriteText writes each device as its identity line, one "label<TAB>value"
// line per counter and a blank separator line.
func (r *SnapshotReport) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, d := range r.Devices {
		writeDevice(bw, d)
	}
	if err := bw.Flush(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write report", err)
	}
	return nil
}

func writeDevice(w io.Writer, d DeviceReport) {
	fmt.Fprintln(w, d.Device.String())
	for _, c := range d.Counters {
		fmt.Fprintf(w, "%s\t%s\n", c.Label, c.Value)
	}
	fmt.Fprintln(w)
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithSchema sets the field schema. Default is diskstats.DefaultSchema().
func WithSchema(s *diskstats.Schema) Option {
	return func(f *Formatter) {
		f.schema = s
	}
}

// WithDevices restricts output to the named devices. No names means all devices.
func WithDevices(names ...string) Option {
	return func(f *Formatter) {
		f.filter = diskstats.NewFilter(names...)
	}
}

// Formatter renders the named counters of device records.
type Formatter struct {
	schema *diskstats.Schema
	filter diskstats.Filter
}

// NewFormatter creates a Formatter with the provided options.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		schema: diskstats.DefaultSchema(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Device builds the report of one record. It returns false when the device
// is excluded by the filter. A record longer than the schema is a
// FORMAT_ERROR.
func (f *Formatter) Device(rec diskstats.DeviceRecord) (DeviceReport, bool, error) {
	id := rec.Identity()
	if !f.filter.Match(id.Name) {
		return DeviceReport{}, false, nil
	}
	if err := f.schema.Check(rec); err != nil {
		return DeviceReport{}, false, fmt.Errorf("device %s: %w", id, err)
	}

	d := DeviceReport{
		Device:   id,
		Counters: make([]Counter, 0, len(rec.Counters())),
	}
	for i := diskstats.FirstCounter; i < len(rec); i++ {
		field, err := f.schema.Field(i)
		if err != nil {
			return DeviceReport{}, false, fmt.Errorf("device %s: %w", id, err)
		}
		d.Counters = append(d.Counters, Counter{
			Key:   field.Key,
			Label: field.Label,
			Value: rec[i],
		})
	}
	return d, true, nil
}

// WriteRecord writes one record in text form, or nothing when the device is
// excluded by the filter.
func (f *Formatter) WriteRecord(w io.Writer, rec diskstats.DeviceRecord) error {
	d, ok, err := f.Device(rec)
	if err != nil || !ok {
		return err
	}
	return (&SnapshotReport{Devices: []DeviceReport{d}}).WriteText(w)
}

// Snapshot builds the report of every record passing the filter. It fails
// on the first record that does not fit the schema.
func (f *Formatter) Snapshot(snap *diskstats.Snapshot) (*SnapshotReport, error) {
	r := &SnapshotReport{
		Source:  snap.Source,
		Devices: make([]DeviceReport, 0, snap.Len()),
	}
	for _, rec := range snap.Records {
		d, ok, err := f.Device(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			r.Devices = append(r.Devices, d)
		}
	}
	return r, nil
}
