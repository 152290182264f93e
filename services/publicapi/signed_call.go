// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"bytes"
	"encoding/json"
	"github.com/orbs-network/orbs-device-registry/crypto/digest"
	"github.com/orbs-network/orbs-device-registry/crypto/keys"
	"github.com/orbs-network/orbs-device-registry/crypto/signature"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	"time"
)

// SignedCall carries the exact call bytes the client signed; the signature covers digest.CalcCallHash(Call)
type SignedCall struct {
	Call            []byte
	SignerPublicKey primitives.Ed25519PublicKey
	Signature       primitives.Ed25519Sig
}

// CallHeader is signed together with the call arguments, binding them to one method and one point in time
type CallHeader struct {
	ContractName primitives.ContractName  `json:"contract"`
	MethodName   primitives.MethodName    `json:"method"`
	Timestamp    primitives.TimestampNano `json:"timestamp"`
}

func (h *CallHeader) Header() *CallHeader {
	return h
}

type Call interface {
	Header() *CallHeader
	Method() primitives.MethodName
}

type RegisterDeviceCall struct {
	CallHeader
	Name            string `json:"name"`
	Model           string `json:"model"`
	Manufacturer    string `json:"manufacturer"`
	AcquisitionDate uint64 `json:"acquisition-date"`
}

func (*RegisterDeviceCall) Method() primitives.MethodName {
	return deviceregistry.METHOD_REGISTER_DEVICE
}

type UpdateDeviceStatusCall struct {
	CallHeader
	DeviceId uint64 `json:"device-id"`
	Status   uint32 `json:"status"`
}

func (*UpdateDeviceStatusCall) Method() primitives.MethodName {
	return deviceregistry.METHOD_UPDATE_DEVICE_STATUS
}

type RecordMaintenanceCall struct {
	CallHeader
	DeviceId uint64 `json:"device-id"`
}

func (*RecordMaintenanceCall) Method() primitives.MethodName {
	return deviceregistry.METHOD_RECORD_MAINTENANCE
}

// SignCall fills the call header, stamping the current time unless a timestamp is already set, then encodes call as json and signs the encoded bytes with keyPair
func SignCall(keyPair *keys.Ed25519KeyPair, call Call) (*SignedCall, error) {
	header := call.Header()
	header.ContractName = deviceregistry.CONTRACT_NAME
	header.MethodName = call.Method()
	if header.Timestamp == 0 {
		header.Timestamp = primitives.TimestampNano(time.Now().UnixNano())
	}

	raw, err := json.Marshal(call)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode call")
	}

	sig, err := signature.SignEd25519(keyPair.PrivateKey(), digest.CalcCallHash(raw))
	if err != nil {
		return nil, err
	}

	return &SignedCall{
		Call:            raw,
		SignerPublicKey: keyPair.PublicKey(),
		Signature:       sig,
	}, nil
}

type errRejected struct {
	error
}

type errBadRequest struct {
	error
}

type errDuplicate struct {
	error
}

// authenticate verifies the signature and returns the caller address; it never decodes the call
func authenticate(signed *SignedCall) (primitives.ClientAddress, error) {
	if signed == nil {
		return nil, &errBadRequest{errors.New("signed call is missing")}
	}

	signerAddress, err := digest.CalcClientAddressOfEd25519PublicKey(signed.SignerPublicKey)
	if err != nil {
		return nil, &errRejected{err}
	}

	if !signature.VerifyEd25519(signed.SignerPublicKey, digest.CalcCallHash(signed.Call), signed.Signature) {
		return nil, &errRejected{errors.New("call signature does not match signer public key")}
	}

	return signerAddress, nil
}

// decodeCall rejects calls signed for another contract or method before decoding the arguments; unknown fields are a bad request
func decodeCall(signed *SignedCall, call Call) error {
	var header CallHeader
	if err := json.Unmarshal(signed.Call, &header); err != nil {
		return &errBadRequest{errors.Wrap(err, "could not decode call")}
	}

	if header.ContractName != deviceregistry.CONTRACT_NAME || header.MethodName != call.Method() {
		return &errRejected{errors.Errorf("call is signed for %s.%s, not %s.%s", header.ContractName, header.MethodName, deviceregistry.CONTRACT_NAME, call.Method())}
	}

	decoder := json.NewDecoder(bytes.NewReader(signed.Call))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(call); err != nil {
		return &errBadRequest{errors.Wrap(err, "could not decode call")}
	}
	return nil
}
