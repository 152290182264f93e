// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry

import (
	"bytes"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = primitives.ContractName("DeviceRegistry")

const (
	METHOD_REGISTER_DEVICE      = primitives.MethodName("registerDevice")
	METHOD_UPDATE_DEVICE_STATUS = primitives.MethodName("updateDeviceStatus")
	METHOD_RECORD_MAINTENANCE   = primitives.MethodName("recordMaintenance")
	METHOD_GET_DEVICE           = primitives.MethodName("getDevice")
	METHOD_DEVICE_EXISTS        = primitives.MethodName("deviceExists")
	METHOD_LAST_DEVICE_ID       = primitives.MethodName("lastDeviceId")
)

const (
	fieldName            = "Name"
	fieldModel           = "Model"
	fieldManufacturer    = "Manufacturer"
	fieldOwner           = "Owner"
	fieldAcquisitionDate = "AcquisitionDate"
	fieldStatus          = "Status"
	fieldLastMaintenance = "LastMaintenance"
)

// TransactionContext supplies the identity of the caller and the current block height.
// The registry only compares identities, it never authenticates them.
type TransactionContext interface {
	SignerAddress() primitives.ClientAddress
	BlockHeight() primitives.BlockHeight
}

type Registry struct {
	state State
}

func NewRegistry(state State) *Registry {
	return &Registry{state: state}
}

func (r *Registry) LastDeviceId() DeviceId {
	return DeviceId(readUint64(r.state, LAST_DEVICE_ID_KEY))
}

func (r *Registry) RegisterDevice(tx TransactionContext, name string, model string, manufacturer string, acquisitionDate uint64) DeviceId {
	id := r.LastDeviceId() + 1
	writeUint64(r.state, LAST_DEVICE_ID_KEY, uint64(id))

	writeString(r.state, _formatDeviceKey(id, fieldName), name)
	writeString(r.state, _formatDeviceKey(id, fieldModel), model)
	writeString(r.state, _formatDeviceKey(id, fieldManufacturer), manufacturer)
	r.state.WriteBytes(_formatDeviceKey(id, fieldOwner), tx.SignerAddress())
	writeUint64(r.state, _formatDeviceKey(id, fieldAcquisitionDate), acquisitionDate)
	writeUint32(r.state, _formatDeviceKey(id, fieldStatus), uint32(DEVICE_STATUS_ACTIVE))
	writeUint64(r.state, _formatDeviceKey(id, fieldLastMaintenance), 0)

	return id
}

func (r *Registry) UpdateDeviceStatus(tx TransactionContext, id DeviceId, newStatus DeviceStatus) error {
	if err := r.requireOwner(tx, id); err != nil {
		return err
	}
	if !newStatus.IsValid() {
		return errors.Wrapf(ErrInvalidStatus, "status %d", uint32(newStatus))
	}

	writeUint32(r.state, _formatDeviceKey(id, fieldStatus), uint32(newStatus))
	return nil
}

func (r *Registry) RecordMaintenance(tx TransactionContext, id DeviceId) error {
	if err := r.requireOwner(tx, id); err != nil {
		return err
	}

	writeUint32(r.state, _formatDeviceKey(id, fieldStatus), uint32(DEVICE_STATUS_ACTIVE))
	writeUint64(r.state, _formatDeviceKey(id, fieldLastMaintenance), uint64(tx.BlockHeight()))
	return nil
}

// GetDevice is a public read, the second return value is false for ids that were never registered.
func (r *Registry) GetDevice(id DeviceId) (*DeviceRecord, bool) {
	if !r.exists(id) {
		return nil, false
	}

	return &DeviceRecord{
		Name:            readString(r.state, _formatDeviceKey(id, fieldName)),
		Model:           readString(r.state, _formatDeviceKey(id, fieldModel)),
		Manufacturer:    readString(r.state, _formatDeviceKey(id, fieldManufacturer)),
		Owner:           r.owner(id),
		AcquisitionDate: readUint64(r.state, _formatDeviceKey(id, fieldAcquisitionDate)),
		Status:          DeviceStatus(readUint32(r.state, _formatDeviceKey(id, fieldStatus))),
		LastMaintenance: primitives.BlockHeight(readUint64(r.state, _formatDeviceKey(id, fieldLastMaintenance))),
	}, true
}

// ids are handed out sequentially and never deleted
func (r *Registry) exists(id DeviceId) bool {
	return id >= 1 && id <= r.LastDeviceId()
}

func (r *Registry) owner(id DeviceId) primitives.ClientAddress {
	owner := r.state.ReadBytes(_formatDeviceKey(id, fieldOwner))
	return primitives.ClientAddress(append([]byte{}, owner...))
}

func (r *Registry) requireOwner(tx TransactionContext, id DeviceId) error {
	if !r.exists(id) {
		return errors.Wrapf(ErrDeviceNotFound, "device %d", uint64(id))
	}
	if !bytes.Equal(r.owner(id), tx.SignerAddress()) {
		return errors.Wrapf(ErrUnauthorized, "device %d", uint64(id))
	}
	return nil
}
