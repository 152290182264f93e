// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/codahale/hdrhistogram"
	"github.com/orbs-network/scribe/log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

type Histogram struct {
	namedMetric
	overflowCount int64

	mu    sync.Mutex
	histo *hdrhistogram.WindowedHistogram
}

type histogramExport struct {
	Name    string
	Min     int64
	P50     int64
	P95     int64
	P99     int64
	Max     int64
	Avg     float64
	Samples int64
}

func newHistogram(name string, max int64) *Histogram {
	return &Histogram{
		namedMetric: namedMetric{name: name},
		histo:       hdrhistogram.NewWindowed(5, 1, max, 3),
	}
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(int64(time.Since(t)))
}

func (h *Histogram) Record(value int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.histo.Current.RecordValue(value); err != nil {
		atomic.AddInt64(&h.overflowCount, 1)
	}
}

func (h *Histogram) Rotate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.histo.Rotate()
}

func (h *Histogram) export() histogramExport {
	h.mu.Lock()
	defer h.mu.Unlock()

	histo := h.histo.Merge()
	return histogramExport{
		Name:    h.name,
		Min:     histo.Min(),
		P50:     histo.ValueAtQuantile(50),
		P95:     histo.ValueAtQuantile(95),
		P99:     histo.ValueAtQuantile(99),
		Max:     histo.Max(),
		Avg:     histo.Mean(),
		Samples: histo.TotalCount(),
	}
}

func (h *Histogram) Export() exportedMetric {
	return h.export()
}

func (h *Histogram) OverflowCount() int64 {
	return atomic.LoadInt64(&h.overflowCount)
}

func (h *Histogram) String() string {
	e := h.export()
	return fmt.Sprintf(
		"metric %s: [min=%d, p50=%d, p95=%d, p99=%d, max=%d, avg=%f, samples=%d, overflows=%d]\n",
		e.Name, e.Min, e.P50, e.P95, e.P99, e.Max, e.Avg, e.Samples, h.OverflowCount())
}

func (h *Histogram) exportPrometheus(labels string) string {
	e := h.export()
	if len(labels) > 0 {
		labels += ","
	}

	row := func(aggregation string, value string) string {
		return prometheusRow(e.Name, fmt.Sprintf("%saggregation=\"%s\"", labels, aggregation), value)
	}

	return prometheusType(e.Name, "histogram") +
		row("min", strconv.FormatInt(e.Min, 10)) +
		row("median", strconv.FormatInt(e.P50, 10)) +
		row("95p", strconv.FormatInt(e.P95, 10)) +
		row("99p", strconv.FormatInt(e.P99, 10)) +
		row("max", strconv.FormatInt(e.Max, 10)) +
		row("avg", strconv.FormatFloat(e.Avg, 'f', -1, 64)) +
		row("count", strconv.FormatInt(e.Samples, 10))
}

func (h histogramExport) LogRow() []*log.Field {
	if h.Samples == 0 {
		return nil
	}

	return []*log.Field{
		log.String("metric", h.Name),
		log.String("metric-type", "histogram"),
		log.Int64("min", h.Min),
		log.Int64("p50", h.P50),
		log.Int64("p95", h.P95),
		log.Int64("p99", h.P99),
		log.Int64("max", h.Max),
		log.Float64("avg", h.Avg),
		log.Int64("samples", h.Samples),
	}
}
