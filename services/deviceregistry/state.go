// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry

import (
	"fmt"
	"github.com/orbs-network/membuffers/go"
)

// State is the contract-scoped key/value store the registry keeps its records in.
// Reading a missing key returns an empty slice.
type State interface {
	ReadBytes(key []byte) []byte
	WriteBytes(key []byte, value []byte)
}

var LAST_DEVICE_ID_KEY = []byte("_LAST_DEVICE_ID_")

func _formatDeviceKey(id DeviceId, field string) []byte {
	return []byte(fmt.Sprintf("Device_%d_%s", uint64(id), field))
}

func readUint64(s State, key []byte) uint64 {
	bytes := s.ReadBytes(key)
	if len(bytes) < 8 {
		return 0
	}
	return membuffers.GetUint64(bytes)
}

func writeUint64(s State, key []byte, value uint64) {
	bytes := make([]byte, 8)
	membuffers.WriteUint64(bytes, value)
	s.WriteBytes(key, bytes)
}

func readUint32(s State, key []byte) uint32 {
	bytes := s.ReadBytes(key)
	if len(bytes) < 4 {
		return 0
	}
	return membuffers.GetUint32(bytes)
}

func writeUint32(s State, key []byte, value uint32) {
	bytes := make([]byte, 4)
	membuffers.WriteUint32(bytes, value)
	s.WriteBytes(key, bytes)
}

func readString(s State, key []byte) string {
	return string(s.ReadBytes(key))
}

func writeString(s State, key []byte, value string) {
	s.WriteBytes(key, []byte(value))
}
