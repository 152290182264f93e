// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry_contract

import (
	. "github.com/orbs-network/orbs-contract-sdk/go/testing/unit"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/stretchr/testify/require"
	"testing"
)

var ownerAddress = AnAddress()
var otherAddress = AnAddress()

type fixedSigner struct {
	address []byte
}

func (s *fixedSigner) SignerAddress() primitives.ClientAddress {
	return s.address
}

func (s *fixedSigner) BlockHeight() primitives.BlockHeight {
	return 0
}

func TestDeviceRegistryContract_RegisterAndGet(t *testing.T) {
	InServiceScope(ownerAddress, ownerAddress, func(m Mockery) {
		_init()

		id := registerDevice("MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)
		require.EqualValues(t, 1, id)
		require.EqualValues(t, 1, lastDeviceId())
		require.EqualValues(t, 1, deviceExists(id))

		name, model, manufacturer, owner, acquisitionDate, status, lastMaintenance := getDevice(id)
		require.Equal(t, "MRI Scanner", name)
		require.Equal(t, "Discovery MR750", model)
		require.Equal(t, "GE Healthcare", manufacturer)
		require.EqualValues(t, ownerAddress, owner)
		require.EqualValues(t, 1640995200, acquisitionDate)
		require.EqualValues(t, deviceregistry.DEVICE_STATUS_ACTIVE, status)
		require.EqualValues(t, 0, lastMaintenance)
	})
}

func TestDeviceRegistryContract_UnknownDevice(t *testing.T) {
	InServiceScope(ownerAddress, ownerAddress, func(m Mockery) {
		_init()

		require.EqualValues(t, 0, deviceExists(999))
		name, _, _, owner, _, status, _ := getDevice(999)
		require.Empty(t, name)
		require.Empty(t, owner)
		require.Zero(t, status)

		require.PanicsWithValue(t, "device 999: device not found (error code 1)", func() {
			updateDeviceStatus(999, 2)
		})
		require.PanicsWithValue(t, "device 999: device not found (error code 1)", func() {
			recordMaintenance(999)
		})
	})
}

func TestDeviceRegistryContract_UpdateStatus(t *testing.T) {
	InServiceScope(ownerAddress, ownerAddress, func(m Mockery) {
		_init()
		id := registerDevice("MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)

		updateDeviceStatus(id, uint32(deviceregistry.DEVICE_STATUS_MAINTENANCE))

		_, _, _, _, _, status, _ := getDevice(id)
		require.EqualValues(t, deviceregistry.DEVICE_STATUS_MAINTENANCE, status)

		require.PanicsWithValue(t, "status 5: invalid device status (error code 3)", func() {
			updateDeviceStatus(id, 5)
		})
	})
}

func TestDeviceRegistryContract_NonOwnerIsRejected(t *testing.T) {
	InServiceScope(ownerAddress, ownerAddress, func(m Mockery) {
		_init()
		id := _registry().RegisterDevice(&fixedSigner{otherAddress}, "MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)

		require.PanicsWithValue(t, "device 1: signer is not the device owner (error code 2)", func() {
			updateDeviceStatus(uint64(id), uint32(deviceregistry.DEVICE_STATUS_INACTIVE))
		})
		require.PanicsWithValue(t, "device 1: signer is not the device owner (error code 2)", func() {
			recordMaintenance(uint64(id))
		})

		_, _, _, _, _, status, _ := getDevice(uint64(id))
		require.EqualValues(t, deviceregistry.DEVICE_STATUS_ACTIVE, status)
	})
}

func TestDeviceRegistryContract_RecordMaintenanceUsesBlockHeight(t *testing.T) {
	InServiceScope(ownerAddress, ownerAddress, func(m Mockery) {
		_init()
		m.MockEnvBlockHeight(100)
		id := registerDevice("MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)
		updateDeviceStatus(id, uint32(deviceregistry.DEVICE_STATUS_MAINTENANCE))

		recordMaintenance(id)

		_, _, _, _, _, status, lastMaintenance := getDevice(id)
		require.EqualValues(t, deviceregistry.DEVICE_STATUS_ACTIVE, status)
		require.EqualValues(t, 100, lastMaintenance)
	})
}
