// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.


package repository

import (
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-device-registry/services/processor/native/repository/DeviceRegistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type ContractInfo struct {
	Name    primitives.ContractName
	Methods []primitives.MethodName
	Public  []interface{}
	System  []interface{}
}

var Contracts = map[primitives.ContractName]ContractInfo{
	deviceregistry.CONTRACT_NAME: {
		Name: deviceregistry.CONTRACT_NAME,
		Methods: []primitives.MethodName{
			deviceregistry.METHOD_REGISTER_DEVICE,
			deviceregistry.METHOD_UPDATE_DEVICE_STATUS,
			deviceregistry.METHOD_RECORD_MAINTENANCE,
			deviceregistry.METHOD_GET_DEVICE,
			deviceregistry.METHOD_DEVICE_EXISTS,
			deviceregistry.METHOD_LAST_DEVICE_ID,
		},
		Public: deviceregistry_contract.PUBLIC,
		System: deviceregistry_contract.SYSTEM,
	},
	// add new native contracts here
}
