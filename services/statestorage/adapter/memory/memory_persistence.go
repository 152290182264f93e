// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"fmt"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"sort"
	"strings"
	"sync"
)

type ChainState map[primitives.ContractName]map[string][]byte

type metrics struct {
	numberOfKeys      *metric.Gauge
	numberOfContracts *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfKeys:      m.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
		numberOfContracts: m.NewGauge("StateStoragePersistence.TotalNumberOfContracts.Count"),
	}
}

type InMemoryStatePersistence struct {
	metrics   *metrics
	mutex     sync.RWMutex
	fullState ChainState
}

func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		metrics:   newMetrics(metricFactory),
		fullState: ChainState{},
	}
}

func (sp *InMemoryStatePersistence) reportSize() {
	nContracts := 0
	nKeys := 0
	for _, records := range sp.fullState {
		nContracts++
		nKeys = nKeys + len(records)
	}
	sp.metrics.numberOfKeys.Update(int64(nKeys))
	sp.metrics.numberOfContracts.Update(int64(nContracts))
}

// Write stores a copy of value; a zero length value deletes the key
func (sp *InMemoryStatePersistence) Write(contract primitives.ContractName, key string, value []byte) {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	sp._writeOneRecord(contract, key, value)
	sp.reportSize()
}

func (sp *InMemoryStatePersistence) _writeOneRecord(c primitives.ContractName, key string, value []byte) {
	if len(value) == 0 {
		if records, ok := sp.fullState[c]; ok {
			delete(records, key)
			if len(records) == 0 {
				delete(sp.fullState, c)
			}
		}
		return
	}

	if _, ok := sp.fullState[c]; !ok {
		sp.fullState[c] = map[string][]byte{}
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	sp.fullState[c][key] = stored
}

// Read returns a copy of the stored value so callers can not mutate state behind the lock
func (sp *InMemoryStatePersistence) Read(contract primitives.ContractName, key string) ([]byte, bool) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	record, ok := sp.fullState[contract][key]
	if !ok {
		return nil, false
	}

	result := make([]byte, len(record))
	copy(result, record)
	return result, true
}

func (sp *InMemoryStatePersistence) ForContract(contract primitives.ContractName) deviceregistry.State {
	return &contractState{persistence: sp, contract: contract}
}

func (sp *InMemoryStatePersistence) Dump() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	output := strings.Builder{}
	output.WriteString("{")
	contracts := make([]primitives.ContractName, 0, len(sp.fullState))
	for c := range sp.fullState {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool { return contracts[i] < contracts[j] })
	for _, currentContract := range contracts {
		keys := make([]string, 0, len(sp.fullState[currentContract]))
		for k := range sp.fullState[currentContract] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		output.WriteString(string(currentContract) + ":{")
		for _, k := range keys {
			output.WriteString(fmt.Sprintf("%s:%x,", k, sp.fullState[currentContract][k]))
		}
		output.WriteString("},")
	}
	output.WriteString("}")
	return output.String()
}

type contractState struct {
	persistence *InMemoryStatePersistence
	contract    primitives.ContractName
}

func (s *contractState) ReadBytes(key []byte) []byte {
	value, ok := s.persistence.Read(s.contract, string(key))
	if !ok {
		return []byte{}
	}
	return value
}

func (s *contractState) WriteBytes(key []byte, value []byte) {
	s.persistence.Write(s.contract, string(key), value)
}
