// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"github.com/orbs-network/orbs-device-registry/crypto/encoding"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/pkg/errors"
)

// SignedCallJson is the body of every signed POST; Call is base64 in the JSON text
type SignedCallJson struct {
	Call            []byte `json:"call"`
	SignerPublicKey string `json:"signer-public-key"`
	Signature       string `json:"signature"`
}

func NewSignedCallJson(signed *publicapi.SignedCall) *SignedCallJson {
	return &SignedCallJson{
		Call:            signed.Call,
		SignerPublicKey: encoding.EncodeHex(signed.SignerPublicKey),
		Signature:       encoding.EncodeHex(signed.Signature),
	}
}

func (j *SignedCallJson) toSignedCall() (*publicapi.SignedCall, error) {
	publicKey, err := encoding.DecodeHex(j.SignerPublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "signer-public-key")
	}

	sig, err := encoding.DecodeHex(j.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "signature")
	}

	return &publicapi.SignedCall{
		Call:            j.Call,
		SignerPublicKey: publicKey,
		Signature:       sig,
	}, nil
}

func decodeSignedCall(body []byte) (*publicapi.SignedCall, error) {
	j := &SignedCallJson{}
	if err := json.Unmarshal(body, j); err != nil {
		return nil, errors.Wrap(err, "http request body is not a valid signed call")
	}
	if len(j.Call) == 0 {
		return nil, errors.New("signed call has no call")
	}
	return j.toSignedCall()
}

type RequestResultJson struct {
	RequestStatus string `json:"request-status"`
	BlockHeight   uint64 `json:"block-height"`
	ErrorCode     uint32 `json:"error-code,omitempty"`
	ErrorMessage  string `json:"error-message,omitempty"`
}

type RegisterDeviceResponseJson struct {
	RequestResultJson
	DeviceId uint64 `json:"device-id,omitempty"`
}

type DeviceJson struct {
	Name            string `json:"name"`
	Model           string `json:"model"`
	Manufacturer    string `json:"manufacturer"`
	Owner           string `json:"owner"`
	AcquisitionDate uint64 `json:"acquisition-date"`
	Status          uint32 `json:"status"`
	StatusName      string `json:"status-name"`
	LastMaintenance uint64 `json:"last-maintenance"`
}

type GetDeviceResponseJson struct {
	RequestResultJson
	Device *DeviceJson `json:"device,omitempty"`
}

type LastDeviceIdResponseJson struct {
	RequestResultJson
	LastDeviceId uint64 `json:"last-device-id"`
}

func requestResultToJson(result publicapi.RequestResult) RequestResultJson {
	return RequestResultJson{
		RequestStatus: result.RequestStatus.String(),
		BlockHeight:   uint64(result.BlockHeight),
		ErrorCode:     uint32(result.ErrorCode),
		ErrorMessage:  result.ErrorMessage,
	}
}

func deviceToJson(record *deviceregistry.DeviceRecord) *DeviceJson {
	if record == nil {
		return nil
	}
	return &DeviceJson{
		Name:            record.Name,
		Model:           record.Model,
		Manufacturer:    record.Manufacturer,
		Owner:           encoding.EncodeHex(record.Owner),
		AcquisitionDate: record.AcquisitionDate,
		Status:          uint32(record.Status),
		StatusName:      record.Status.String(),
		LastMaintenance: uint64(record.LastMaintenance),
	}
}
