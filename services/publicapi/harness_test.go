// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-device-registry/config"
	"github.com/orbs-network/orbs-device-registry/crypto/digest"
	"github.com/orbs-network/orbs-device-registry/crypto/keys"
	"github.com/orbs-network/orbs-device-registry/crypto/signature"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-device-registry/services/statestorage/adapter/memory"
	testKeys "github.com/orbs-network/orbs-device-registry/test/crypto/keys"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type blockHeightSourceMock struct {
	mock.Mock
}

func (m *blockHeightSourceMock) CurrentHeight() primitives.BlockHeight {
	return m.Called().Get(0).(primitives.BlockHeight)
}

func (m *blockHeightSourceMock) WaitForBlock(ctx context.Context, requestedHeight primitives.BlockHeight) error {
	return m.Called(ctx, requestedHeight).Error(0)
}

type harness struct {
	service  *Service
	heights  *blockHeightSourceMock
	registry *deviceregistry.Registry
	metrics  metric.Registry
}

func newHarness(t *testing.T) *harness {
	metricRegistry := metric.NewRegistry()
	registry := deviceregistry.NewRegistry(memory.NewStatePersistence(metricRegistry).ForContract(deviceregistry.CONTRACT_NAME))
	heights := &blockHeightSourceMock{}

	return &harness{
		service:  NewPublicApi(config.ForAcceptanceTests(), registry, heights, log.DefaultTestingLogger(t), metricRegistry),
		heights:  heights,
		registry: registry,
		metrics:  metricRegistry,
	}
}

func (h *harness) atBlockHeight(height primitives.BlockHeight) *harness {
	h.heights.When("CurrentHeight").Return(height)
	return h
}

func (h *harness) verifyMocks(t *testing.T) {
	ok, err := h.heights.Verify()
	require.True(t, ok, "block height source mock called incorrectly")
	require.NoError(t, err)
}

func signedBy(t *testing.T, keyPair *keys.Ed25519KeyPair, call Call) *SignedCall {
	signed, err := SignCall(keyPair, call)
	require.NoError(t, err)
	return signed
}

// signedRaw signs arbitrary bytes, for calls SignCall would never produce
func signedRaw(t *testing.T, keyPair *keys.Ed25519KeyPair, rawCall string) *SignedCall {
	sig, err := signature.SignEd25519(keyPair.PrivateKey(), digest.CalcCallHash([]byte(rawCall)))
	require.NoError(t, err)
	return &SignedCall{Call: []byte(rawCall), SignerPublicKey: keyPair.PublicKey(), Signature: sig}
}

func timestampAt(t time.Time) primitives.TimestampNano {
	return primitives.TimestampNano(t.UnixNano())
}

func addressOf(t *testing.T, keyPair *keys.Ed25519KeyPair) primitives.ClientAddress {
	address, err := digest.CalcClientAddressOfEd25519PublicKey(keyPair.PublicKey())
	require.NoError(t, err)
	return address
}

func ownerKeyPair() *keys.Ed25519KeyPair {
	return testKeys.Ed25519KeyPairForTests(0)
}

func otherKeyPair() *keys.Ed25519KeyPair {
	return testKeys.Ed25519KeyPairForTests(1)
}

func mriScanner() *RegisterDeviceCall {
	return &RegisterDeviceCall{Name: "MRI Scanner", Model: "Discovery MR750", Manufacturer: "GE Healthcare", AcquisitionDate: 1640995200}
}
