// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deviceregistry

import "github.com/pkg/errors"

// ErrorCode values are returned to clients as integers and must not be renumbered.
type ErrorCode uint32

const (
	ERROR_CODE_UNKNOWN          ErrorCode = 0
	ERROR_CODE_DEVICE_NOT_FOUND ErrorCode = 1
	ERROR_CODE_UNAUTHORIZED     ErrorCode = 2
	ERROR_CODE_INVALID_STATUS   ErrorCode = 3
)

func (c ErrorCode) String() string {
	switch c {
	case ERROR_CODE_DEVICE_NOT_FOUND:
		return "ERROR_CODE_DEVICE_NOT_FOUND"
	case ERROR_CODE_UNAUTHORIZED:
		return "ERROR_CODE_UNAUTHORIZED"
	case ERROR_CODE_INVALID_STATUS:
		return "ERROR_CODE_INVALID_STATUS"
	}
	return "ERROR_CODE_UNKNOWN"
}

type RegistryError struct {
	code    ErrorCode
	message string
}

func (e *RegistryError) Error() string {
	return e.message
}

func (e *RegistryError) Code() ErrorCode {
	return e.code
}

var (
	ErrDeviceNotFound = &RegistryError{code: ERROR_CODE_DEVICE_NOT_FOUND, message: "device not found"}
	ErrUnauthorized   = &RegistryError{code: ERROR_CODE_UNAUTHORIZED, message: "signer is not the device owner"}
	ErrInvalidStatus  = &RegistryError{code: ERROR_CODE_INVALID_STATUS, message: "invalid device status"}
)

// ErrorCodeOf unwraps err and returns the registry code behind it, or ERROR_CODE_UNKNOWN.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ERROR_CODE_UNKNOWN
	}
	if registryErr, ok := errors.Cause(err).(*RegistryError); ok {
		return registryErr.code
	}
	return ERROR_CODE_UNKNOWN
}
