// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry

import (
	"github.com/google/go-cmp/cmp"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	ownerA  = primitives.ClientAddress{0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7, 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF, 0xA0, 0xA1, 0xA2, 0xA3, 0xA4}
	callerB = primitives.ClientAddress{0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7, 0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF, 0xB0, 0xB1, 0xB2, 0xB3, 0xB4}
)

type mapState map[string][]byte

func (s mapState) ReadBytes(key []byte) []byte {
	return s[string(key)]
}

func (s mapState) WriteBytes(key []byte, value []byte) {
	if len(value) == 0 {
		delete(s, string(key))
		return
	}
	s[string(key)] = append([]byte{}, value...)
}

type fixedTransaction struct {
	signer primitives.ClientAddress
	height primitives.BlockHeight
}

func (tx *fixedTransaction) SignerAddress() primitives.ClientAddress {
	return tx.signer
}

func (tx *fixedTransaction) BlockHeight() primitives.BlockHeight {
	return tx.height
}

type transactionContextMock struct {
	mock.Mock
}

func (m *transactionContextMock) SignerAddress() primitives.ClientAddress {
	return m.Called().Get(0).(primitives.ClientAddress)
}

func (m *transactionContextMock) BlockHeight() primitives.BlockHeight {
	return m.Called().Get(0).(primitives.BlockHeight)
}

func newRegistryForTests() (*Registry, mapState) {
	state := mapState{}
	return NewRegistry(state), state
}

func registerMriScanner(r *Registry, owner primitives.ClientAddress) DeviceId {
	return r.RegisterDevice(&fixedTransaction{signer: owner, height: 1}, "MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)
}

func requireNoStateChange(t *testing.T, before mapState, after mapState) {
	require.Empty(t, cmp.Diff(map[string][]byte(before), map[string][]byte(after)), "state changed on a failed call")
}

func snapshot(s mapState) mapState {
	copied := mapState{}
	for k, v := range s {
		copied[k] = append([]byte{}, v...)
	}
	return copied
}

func TestRegisterDevice_FirstDeviceIsActiveWithIdOne(t *testing.T) {
	r, _ := newRegistryForTests()

	id := registerMriScanner(r, ownerA)

	require.EqualValues(t, 1, id)
	record, ok := r.GetDevice(id)
	require.True(t, ok)
	require.Empty(t, cmp.Diff(&DeviceRecord{
		Name:            "MRI Scanner",
		Model:           "Discovery MR750",
		Manufacturer:    "GE Healthcare",
		Owner:           ownerA,
		AcquisitionDate: 1640995200,
		Status:          DEVICE_STATUS_ACTIVE,
		LastMaintenance: 0,
	}, record))
}

func TestRegisterDevice_IdsAreSequential(t *testing.T) {
	r, _ := newRegistryForTests()

	for i := 1; i <= 5; i++ {
		require.EqualValues(t, i, registerMriScanner(r, ownerA))
		require.EqualValues(t, i, r.LastDeviceId())
	}
}

func TestRegisterDevice_AcceptsEmptyFields(t *testing.T) {
	r, _ := newRegistryForTests()

	id := r.RegisterDevice(&fixedTransaction{signer: ownerA}, "", "", "", 0)

	record, ok := r.GetDevice(id)
	require.True(t, ok)
	require.Equal(t, "", record.Name)
	require.Equal(t, DEVICE_STATUS_ACTIVE, record.Status)
}

func TestRegisterDevice_DoesNotReadBlockHeight(t *testing.T) {
	r, _ := newRegistryForTests()
	tx := &transactionContextMock{}
	tx.When("SignerAddress").Return(ownerA).Times(1)
	tx.Never("BlockHeight")

	r.RegisterDevice(tx, "MRI Scanner", "Discovery MR750", "GE Healthcare", 1640995200)

	ok, err := tx.Verify()
	require.True(t, ok, "transaction context mock called incorrectly")
	require.NoError(t, err)
}

func TestGetDevice_UnknownIdIsAbsent(t *testing.T) {
	r, _ := newRegistryForTests()
	registerMriScanner(r, ownerA)

	for _, id := range []DeviceId{0, 2, 999} {
		record, ok := r.GetDevice(id)
		require.False(t, ok, "device %d should not exist", id)
		require.Nil(t, record)
	}
}

func TestGetDevice_ReturnsIndependentOwner(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)

	record, _ := r.GetDevice(id)
	record.Owner[0] = 0xFF

	again, _ := r.GetDevice(id)
	require.Equal(t, ownerA, again.Owner)
}

func TestUpdateDeviceStatus_OwnerChangesStatus(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)

	err := r.UpdateDeviceStatus(&fixedTransaction{signer: ownerA}, id, DEVICE_STATUS_MAINTENANCE)

	require.NoError(t, err)
	record, _ := r.GetDevice(id)
	require.Equal(t, DEVICE_STATUS_MAINTENANCE, record.Status)
	require.EqualValues(t, 0, record.LastMaintenance, "status update must not touch last maintenance")
}

func TestUpdateDeviceStatus_AllValidStatuses(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)

	for _, status := range []DeviceStatus{DEVICE_STATUS_INACTIVE, DEVICE_STATUS_MAINTENANCE, DEVICE_STATUS_ACTIVE} {
		require.NoError(t, r.UpdateDeviceStatus(&fixedTransaction{signer: ownerA}, id, status))
		record, _ := r.GetDevice(id)
		require.Equal(t, status, record.Status)
	}
}

func TestUpdateDeviceStatus_UnknownDeviceIsNotFound(t *testing.T) {
	r, state := newRegistryForTests()
	before := snapshot(state)

	err := r.UpdateDeviceStatus(&fixedTransaction{signer: ownerA}, 999, DEVICE_STATUS_MAINTENANCE)

	require.Equal(t, ERROR_CODE_DEVICE_NOT_FOUND, ErrorCodeOf(err))
	require.EqualError(t, err, "device 999: device not found")
	requireNoStateChange(t, before, state)
}

func TestUpdateDeviceStatus_NonOwnerIsUnauthorized(t *testing.T) {
	r, state := newRegistryForTests()
	id := registerMriScanner(r, ownerA)
	before := snapshot(state)

	err := r.UpdateDeviceStatus(&fixedTransaction{signer: callerB}, id, DEVICE_STATUS_MAINTENANCE)

	require.Equal(t, ERROR_CODE_UNAUTHORIZED, ErrorCodeOf(err))
	requireNoStateChange(t, before, state)
	record, _ := r.GetDevice(id)
	require.Equal(t, DEVICE_STATUS_ACTIVE, record.Status)
}

func TestUpdateDeviceStatus_InvalidStatusIsRejected(t *testing.T) {
	r, state := newRegistryForTests()
	id := registerMriScanner(r, ownerA)
	before := snapshot(state)

	err := r.UpdateDeviceStatus(&fixedTransaction{signer: ownerA}, id, 3)

	require.Equal(t, ERROR_CODE_INVALID_STATUS, ErrorCodeOf(err))
	require.EqualError(t, err, "status 3: invalid device status")
	requireNoStateChange(t, before, state)
}

func TestUpdateDeviceStatus_UnauthorizedTakesPrecedenceOverInvalidStatus(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)

	err := r.UpdateDeviceStatus(&fixedTransaction{signer: callerB}, id, 7)

	require.Equal(t, ERROR_CODE_UNAUTHORIZED, ErrorCodeOf(err))
}

func TestUpdateDeviceStatus_DoesNotReadBlockHeight(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)
	tx := &transactionContextMock{}
	tx.When("SignerAddress").Return(ownerA).Times(1)
	tx.Never("BlockHeight")

	require.NoError(t, r.UpdateDeviceStatus(tx, id, DEVICE_STATUS_INACTIVE))

	ok, err := tx.Verify()
	require.True(t, ok, "transaction context mock called incorrectly")
	require.NoError(t, err)
}

func TestRecordMaintenance_StampsBlockHeightAndActivates(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)
	require.NoError(t, r.UpdateDeviceStatus(&fixedTransaction{signer: ownerA}, id, DEVICE_STATUS_MAINTENANCE))

	err := r.RecordMaintenance(&fixedTransaction{signer: ownerA, height: 100}, id)

	require.NoError(t, err)
	record, _ := r.GetDevice(id)
	require.Equal(t, DEVICE_STATUS_ACTIVE, record.Status)
	require.EqualValues(t, 100, record.LastMaintenance)
}

func TestRecordMaintenance_LaterMaintenanceOverwritesHeight(t *testing.T) {
	r, _ := newRegistryForTests()
	id := registerMriScanner(r, ownerA)

	require.NoError(t, r.RecordMaintenance(&fixedTransaction{signer: ownerA, height: 100}, id))
	require.NoError(t, r.RecordMaintenance(&fixedTransaction{signer: ownerA, height: 250}, id))

	record, _ := r.GetDevice(id)
	require.EqualValues(t, 250, record.LastMaintenance)
}

func TestRecordMaintenance_UnknownDeviceIsNotFound(t *testing.T) {
	r, state := newRegistryForTests()
	before := snapshot(state)

	err := r.RecordMaintenance(&fixedTransaction{signer: ownerA, height: 100}, 1)

	require.Equal(t, ERROR_CODE_DEVICE_NOT_FOUND, ErrorCodeOf(err))
	requireNoStateChange(t, before, state)
}

func TestRecordMaintenance_NonOwnerIsUnauthorized(t *testing.T) {
	r, state := newRegistryForTests()
	id := registerMriScanner(r, ownerA)
	before := snapshot(state)

	err := r.RecordMaintenance(&fixedTransaction{signer: callerB, height: 100}, id)

	require.Equal(t, ERROR_CODE_UNAUTHORIZED, ErrorCodeOf(err))
	requireNoStateChange(t, before, state)
}

func TestRegistryKeepsStateLayout(t *testing.T) {
	r, state := newRegistryForTests()
	registerMriScanner(r, ownerA)

	require.Equal(t, []byte("MRI Scanner"), state["Device_1_Name"])
	require.Equal(t, []byte(ownerA), state["Device_1_Owner"])
	require.Len(t, state["_LAST_DEVICE_ID_"], 8)
	require.Len(t, state["Device_1_Status"], 4)
	require.Len(t, state["Device_1_AcquisitionDate"], 8)
}
