// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/orbs-network/orbs-device-registry/test"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestRegistry_ExportAll(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("DeviceRegistry.Devices.Count").Update(3)
	r.NewText("Node.Version", "v1.0.0")
	r.NewRate("PublicApi.RegisterDevice.Rate")
	r.NewLatency("PublicApi.RegisterDevice.ProcessingTime", time.Second)

	all := r.ExportAll()

	require.Len(t, all, 4)
	require.Equal(t, gaugeExport{"DeviceRegistry.Devices.Count", 3}, all["DeviceRegistry.Devices.Count"])
	require.Equal(t, textExport{"Node.Version", "v1.0.0"}, all["Node.Version"])
}

func TestRegistry_ExportPrometheus(t *testing.T) {
	r := NewRegistry().WithVirtualChainId(42)
	r.NewGauge("DeviceRegistry.Devices.Count").Update(3)
	r.NewText("Node.Version", "v1.0.0")

	exported := r.ExportPrometheus()

	require.Contains(t, exported, "# TYPE DeviceRegistry_Devices_Count gauge\n")
	require.Contains(t, exported, "DeviceRegistry_Devices_Count{vcid=\"42\"} 3\n")
	require.NotContains(t, exported, "Node_Version", "text metrics should not be exported to prometheus")
}

func TestRegistry_ExportPrometheusHistogram(t *testing.T) {
	r := NewRegistry()
	r.NewLatency("PublicApi.GetDevice.ProcessingTime", time.Second).Record(1000)

	exported := r.ExportPrometheus()

	require.Contains(t, exported, "# TYPE PublicApi_GetDevice_ProcessingTime histogram\n")
	require.Contains(t, exported, "PublicApi_GetDevice_ProcessingTime{aggregation=\"count\"} 1\n")
	require.Equal(t, 8, strings.Count(exported, "PublicApi_GetDevice_ProcessingTime"))
}

func TestRegistry_String(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("A").Update(1)
	r.NewGauge("B").Update(2)

	require.Equal(t, "metric A: 1\nmetric B: 2\n", r.String())
}

func TestRegistry_PeriodicallyReportRunsUntilContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRegistry()
	r.NewGauge("DeviceRegistry.Devices.Count").Update(1)

	waiter := r.PeriodicallyReport(ctx, time.Millisecond, log.DefaultTestingLogger(t))
	time.Sleep(5 * time.Millisecond)
	cancel()

	test.RequireShutdownWithin(t, waiter, time.Second)
}
