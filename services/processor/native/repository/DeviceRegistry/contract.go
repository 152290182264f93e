// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry_contract

import (
	"fmt"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/address"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/env"
	"github.com/orbs-network/orbs-contract-sdk/go/sdk/v1/state"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// helpers for avoiding reliance on strings throughout the system
const CONTRACT_NAME = string(deviceregistry.CONTRACT_NAME)
const METHOD_REGISTER_DEVICE = string(deviceregistry.METHOD_REGISTER_DEVICE)
const METHOD_UPDATE_DEVICE_STATUS = string(deviceregistry.METHOD_UPDATE_DEVICE_STATUS)
const METHOD_RECORD_MAINTENANCE = string(deviceregistry.METHOD_RECORD_MAINTENANCE)
const METHOD_GET_DEVICE = string(deviceregistry.METHOD_GET_DEVICE)
const METHOD_DEVICE_EXISTS = string(deviceregistry.METHOD_DEVICE_EXISTS)
const METHOD_LAST_DEVICE_ID = string(deviceregistry.METHOD_LAST_DEVICE_ID)

var PUBLIC = sdk.Export(registerDevice, updateDeviceStatus, recordMaintenance, getDevice, deviceExists, lastDeviceId)
var SYSTEM = sdk.Export(_init)

func _init() {
}

type sdkState struct{}

func (sdkState) ReadBytes(key []byte) []byte {
	return state.ReadBytes(key)
}

func (sdkState) WriteBytes(key []byte, value []byte) {
	state.WriteBytes(key, value)
}

type sdkTransaction struct{}

func (sdkTransaction) SignerAddress() primitives.ClientAddress {
	return address.GetSignerAddress()
}

func (sdkTransaction) BlockHeight() primitives.BlockHeight {
	return primitives.BlockHeight(env.GetBlockHeight())
}

func _registry() *deviceregistry.Registry {
	return deviceregistry.NewRegistry(sdkState{})
}

// contracts report failures by panicking; the code lets callers tell the failures apart
func _panicOnError(err error) {
	if err != nil {
		panic(fmt.Sprintf("%s (error code %d)", err.Error(), uint32(deviceregistry.ErrorCodeOf(err))))
	}
}

func registerDevice(name string, model string, manufacturer string, acquisitionDate uint64) uint64 {
	return uint64(_registry().RegisterDevice(sdkTransaction{}, name, model, manufacturer, acquisitionDate))
}

func updateDeviceStatus(id uint64, newStatus uint32) {
	_panicOnError(_registry().UpdateDeviceStatus(sdkTransaction{}, deviceregistry.DeviceId(id), deviceregistry.DeviceStatus(newStatus)))
}

func recordMaintenance(id uint64) {
	_panicOnError(_registry().RecordMaintenance(sdkTransaction{}, deviceregistry.DeviceId(id)))
}

// getDevice returns zero values for unknown ids, use deviceExists to tell them apart
func getDevice(id uint64) (name string, model string, manufacturer string, owner []byte, acquisitionDate uint64, status uint32, lastMaintenance uint64) {
	record, ok := _registry().GetDevice(deviceregistry.DeviceId(id))
	if !ok {
		return "", "", "", []byte{}, 0, 0, 0
	}
	return record.Name, record.Model, record.Manufacturer, record.Owner, record.AcquisitionDate, uint32(record.Status), uint64(record.LastMaintenance)
}

func deviceExists(id uint64) uint32 {
	if _, ok := _registry().GetDevice(deviceregistry.DeviceId(id)); ok {
		return 1
	}
	return 0
}

func lastDeviceId() uint64 {
	return uint64(_registry().LastDeviceId())
}
