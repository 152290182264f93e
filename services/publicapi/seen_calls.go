// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"time"
)

// seenCalls remembers every admitted call until its timestamp leaves the expiration window; not thread safe, guarded by the service mutex
type seenCalls struct {
	calls map[string]primitives.TimestampNano

	countGauge *metric.Gauge
}

func newSeenCalls(metricFactory metric.Factory) *seenCalls {
	return &seenCalls{
		calls:      make(map[string]primitives.TimestampNano),
		countGauge: metricFactory.NewGauge("PublicApi.SeenCalls.Count"),
	}
}

// add returns false when the call was admitted before
func (p *seenCalls) add(callHash primitives.Sha256, ts primitives.TimestampNano) bool {
	key := callHash.KeyForMap()
	if _, ok := p.calls[key]; ok {
		return false
	}

	p.calls[key] = ts
	p.countGauge.Update(int64(len(p.calls)))
	return true
}

func (p *seenCalls) has(callHash primitives.Sha256) bool {
	_, ok := p.calls[callHash.KeyForMap()]
	return ok
}

func (p *seenCalls) clearCallsOlderThan(t time.Time) {
	for key, ts := range p.calls {
		if int64(ts) < t.UnixNano() {
			delete(p.calls, key)
		}
	}
	p.countGauge.Update(int64(len(p.calls)))
}
