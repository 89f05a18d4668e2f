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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/kpeletidis/perfplot/pkg/errors"
)

const statusSuccess = "success"

// Registry holds the tool's own metrics. It is separate from the default
// registry so that exported files carry no Go runtime series.
var Registry = prometheus.NewRegistry()

var (
	snapshotLoadDuration = promauto.With(Registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diskstats_snapshot_load_duration_seconds",
			Help:    "Time taken to read and parse a snapshot file",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	snapshotLoadTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskstats_snapshot_load_total",
			Help: "Total number of snapshot load attempts",
		},
		[]string{"status"}, // success, not_found, io_error, format_error
	)

	snapshotRecords = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "diskstats_snapshot_records",
			Help: "Number of device records in the last loaded snapshot",
		},
	)

	compareFieldsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskstats_compare_fields_total",
			Help: "Total number of counter fields compared",
		},
		[]string{"percent"}, // defined or undefined
	)
)

// WriteMetrics writes the registry to path in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal, "failed to write metrics", err,
			map[string]any{"path": path})
	}
	return nil
}

func observeLoad(err error) {
	status := statusSuccess
	if err != nil {
		status = "error"
		if code := apperrors.CodeOf(err); code != "" {
			status = strings.ToLower(string(code))
		}
	}
	snapshotLoadTotal.WithLabelValues(status).Inc()
}
