// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry

import (
	"fmt"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type DeviceId uint64

func (id DeviceId) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

type DeviceStatus uint32

const (
	DEVICE_STATUS_INACTIVE    DeviceStatus = 0
	DEVICE_STATUS_ACTIVE      DeviceStatus = 1
	DEVICE_STATUS_MAINTENANCE DeviceStatus = 2
)

func (s DeviceStatus) IsValid() bool {
	switch s {
	case DEVICE_STATUS_INACTIVE, DEVICE_STATUS_ACTIVE, DEVICE_STATUS_MAINTENANCE:
		return true
	}
	return false
}

func (s DeviceStatus) String() string {
	switch s {
	case DEVICE_STATUS_INACTIVE:
		return "DEVICE_STATUS_INACTIVE"
	case DEVICE_STATUS_ACTIVE:
		return "DEVICE_STATUS_ACTIVE"
	case DEVICE_STATUS_MAINTENANCE:
		return "DEVICE_STATUS_MAINTENANCE"
	}
	return fmt.Sprintf("DEVICE_STATUS_UNKNOWN(%d)", uint32(s))
}

// Name, Model, Manufacturer, Owner and AcquisitionDate are fixed at registration.
type DeviceRecord struct {
	Name            string
	Model           string
	Manufacturer    string
	Owner           primitives.ClientAddress
	AcquisitionDate uint64
	Status          DeviceStatus
	LastMaintenance primitives.BlockHeight
}

func (r *DeviceRecord) String() string {
	return fmt.Sprintf("{Name:%s, Model:%s, Manufacturer:%s, Owner:%s, AcquisitionDate:%d, Status:%s, LastMaintenance:%d}",
		r.Name, r.Model, r.Manufacturer, r.Owner, r.AcquisitionDate, r.Status, uint64(r.LastMaintenance))
}
