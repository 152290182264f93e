// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
)

type RequestStatus uint16

const (
	REQUEST_STATUS_RESERVED     RequestStatus = 0
	REQUEST_STATUS_COMPLETED    RequestStatus = 1
	REQUEST_STATUS_BAD_REQUEST  RequestStatus = 2
	REQUEST_STATUS_NOT_FOUND    RequestStatus = 3
	REQUEST_STATUS_UNAUTHORIZED RequestStatus = 4
	REQUEST_STATUS_REJECTED     RequestStatus = 5
	REQUEST_STATUS_OUT_OF_SYNC  RequestStatus = 6
	REQUEST_STATUS_SYSTEM_ERROR RequestStatus = 7
	REQUEST_STATUS_DUPLICATE    RequestStatus = 8
)

func (s RequestStatus) String() string {
	switch s {
	case REQUEST_STATUS_RESERVED:
		return "REQUEST_STATUS_RESERVED"
	case REQUEST_STATUS_COMPLETED:
		return "REQUEST_STATUS_COMPLETED"
	case REQUEST_STATUS_BAD_REQUEST:
		return "REQUEST_STATUS_BAD_REQUEST"
	case REQUEST_STATUS_NOT_FOUND:
		return "REQUEST_STATUS_NOT_FOUND"
	case REQUEST_STATUS_UNAUTHORIZED:
		return "REQUEST_STATUS_UNAUTHORIZED"
	case REQUEST_STATUS_REJECTED:
		return "REQUEST_STATUS_REJECTED"
	case REQUEST_STATUS_OUT_OF_SYNC:
		return "REQUEST_STATUS_OUT_OF_SYNC"
	case REQUEST_STATUS_SYSTEM_ERROR:
		return "REQUEST_STATUS_SYSTEM_ERROR"
	case REQUEST_STATUS_DUPLICATE:
		return "REQUEST_STATUS_DUPLICATE"
	}
	return "REQUEST_STATUS_UNKNOWN"
}

func translateRegistryErrorToRequestStatus(err error) RequestStatus {
	switch deviceregistry.ErrorCodeOf(err) {
	case deviceregistry.ERROR_CODE_DEVICE_NOT_FOUND:
		return REQUEST_STATUS_NOT_FOUND
	case deviceregistry.ERROR_CODE_UNAUTHORIZED:
		return REQUEST_STATUS_UNAUTHORIZED
	case deviceregistry.ERROR_CODE_INVALID_STATUS:
		return REQUEST_STATUS_BAD_REQUEST
	}
	return REQUEST_STATUS_SYSTEM_ERROR
}
