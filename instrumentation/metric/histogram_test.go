// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_RecordsSamples(t *testing.T) {
	h := NewRegistry().NewLatency("PublicApi.RegisterDevice.ProcessingTime", time.Second)

	for i := 1; i <= 100; i++ {
		h.Record(int64(i * int(time.Millisecond)))
	}

	e := h.export()
	require.EqualValues(t, 100, e.Samples)
	require.True(t, e.Min <= int64(2*time.Millisecond), "min too large: %d", e.Min)
	require.True(t, e.Max >= int64(90*time.Millisecond), "max too small: %d", e.Max)
	require.Zero(t, h.OverflowCount())
}

func TestHistogram_CountsOverflows(t *testing.T) {
	h := NewRegistry().NewLatency("PublicApi.GetDevice.ProcessingTime", time.Millisecond)

	h.Record(int64(time.Hour))

	require.EqualValues(t, 1, h.OverflowCount())
	require.Zero(t, h.export().Samples)
}

func TestHistogram_EmptyHistogramHasNoLogRow(t *testing.T) {
	h := NewRegistry().NewLatency("PublicApi.GetDevice.ProcessingTime", time.Second)

	require.Nil(t, h.Export().LogRow())
}
