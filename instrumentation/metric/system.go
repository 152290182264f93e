// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/c9s/goprocinfo/linux"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-device-registry/synchronization"
	"github.com/orbs-network/scribe/log"
	"os"
	"time"
)

const PAGESIZE = 4096

type systemReporter struct {
	rssBytes       *Gauge
	cpuUtilization *Gauge
	logger         log.Logger
}

// NewSystemReporter samples procfs; on systems without /proc it reports nothing.
func NewSystemReporter(ctx context.Context, metricFactory Factory, logger log.Logger) govnr.ShutdownWaiter {
	r := &systemReporter{
		rssBytes:       metricFactory.NewGauge("OS.Process.Memory.Bytes"),
		cpuUtilization: metricFactory.NewGauge("OS.Process.CPU.PerCent"),
		logger:         logger,
	}

	return synchronization.NewPeriodicalTrigger(ctx, "system metric reporter", 3*time.Second, logger, r.reportSystemMetrics, nil)
}

func (r *systemReporter) reportSystemMetrics() {
	if _, err := os.Stat("/proc"); os.IsNotExist(err) {
		return
	}

	if rss, err := getRssMemory(); err != nil {
		r.logger.Info("failed to retrieve memory stats", log.Error(err))
	} else {
		r.rssBytes.Update(rss)
	}

	if cpu, err := getCPUUtilization(); err != nil {
		r.logger.Info("failed to retrieve cpu stats", log.Error(err))
	} else {
		r.cpuUtilization.Update(cpu)
	}
}

func getRssMemory() (int64, error) {
	statm, err := linux.ReadProcessStatm(fmt.Sprintf("/proc/%d/statm", os.Getpid()))
	if err != nil {
		return 0, err
	}

	return int64(statm.Resident * PAGESIZE), nil
}

func getCPUStats() (uint64, error) {
	cpu, err := linux.ReadStat("/proc/stat")
	if err != nil {
		return 0, err
	}
	e := cpu.CPUStatAll
	return e.User + e.Nice + e.System + e.Idle, nil
}

// procfs counters are cumulative since boot, so utilization is the process share of the delta between two samples
func getCPUUtilization() (int64, error) {
	pid := uint64(os.Getpid())

	firstSample, err := linux.ReadProcess(pid, "/proc")
	if err != nil {
		return 0, err
	}
	cpu1, err := getCPUStats()
	if err != nil {
		return 0, err
	}

	<-time.After(time.Second)

	secondSample, err := linux.ReadProcess(pid, "/proc")
	if err != nil {
		return 0, err
	}
	cpu2, err := getCPUStats()
	if err != nil {
		return 0, err
	}
	if cpu2 == cpu1 {
		return 0, nil
	}

	user := (int64(secondSample.Stat.Utime) + secondSample.Stat.Cutime) - (int64(firstSample.Stat.Utime) + firstSample.Stat.Cutime)
	system := (int64(secondSample.Stat.Stime) + secondSample.Stat.Cstime) - (int64(firstSample.Stat.Stime) + firstSample.Stat.Cstime)

	return int64(float64(user+system) / float64(cpu2-cpu1) * 100), nil
}
