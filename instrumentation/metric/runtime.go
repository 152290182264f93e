// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-device-registry/synchronization"
	"github.com/orbs-network/scribe/log"
	"runtime"
	"time"
)

type runtimeMetrics struct {
	heapAlloc       *Gauge
	heapSys         *Gauge
	numGoroutines   *Gauge
	gcCpuPercentage *Gauge
}

type runtimeReporter struct {
	metrics runtimeMetrics
}

func NewRuntimeReporter(ctx context.Context, metricFactory Factory, logger log.Logger) govnr.ShutdownWaiter {
	r := &runtimeReporter{
		metrics: runtimeMetrics{
			heapAlloc:       metricFactory.NewGauge("Runtime.HeapAlloc.Bytes"),
			heapSys:         metricFactory.NewGauge("Runtime.HeapSys.Bytes"),
			numGoroutines:   metricFactory.NewGauge("Runtime.Goroutines.Count"),
			gcCpuPercentage: metricFactory.NewGauge("Runtime.GCCPUPercentage"),
		},
	}

	return synchronization.NewPeriodicalTrigger(ctx, "runtime metric reporter", 5*time.Second, logger, r.reportRuntimeMetrics, nil)
}

func (r *runtimeReporter) reportRuntimeMetrics() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.metrics.heapSys.Update(int64(mem.HeapSys))
	r.metrics.heapAlloc.Update(int64(mem.HeapAlloc))
	r.metrics.numGoroutines.Update(int64(runtime.NumGoroutine()))
	r.metrics.gcCpuPercentage.Update(int64(mem.GCCPUFraction * 100))
}
