// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/orbs-device-registry/crypto/hash"
	"github.com/orbs-network/orbs-device-registry/test/crypto/keys"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCalcClientAddressOfEd25519PublicKey(t *testing.T) {
	publicKey := keys.Ed25519KeyPairForTests(0).PublicKey()

	address, err := CalcClientAddressOfEd25519PublicKey(publicKey)

	require.NoError(t, err)
	require.Len(t, address, CLIENT_ADDRESS_SIZE_BYTES)
	require.EqualValues(t, hash.CalcSha256(publicKey)[CLIENT_ADDRESS_SHA256_OFFSET:], address)
}

func TestCalcClientAddressDiffersPerKey(t *testing.T) {
	address0, err := CalcClientAddressOfEd25519PublicKey(keys.Ed25519KeyPairForTests(0).PublicKey())
	require.NoError(t, err)
	address1, err := CalcClientAddressOfEd25519PublicKey(keys.Ed25519KeyPairForTests(1).PublicKey())
	require.NoError(t, err)

	require.NotEqual(t, address0, address1)
}

func TestCalcClientAddressRejectsInvalidPublicKey(t *testing.T) {
	_, err := CalcClientAddressOfEd25519PublicKey([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestCalcCallHashIsSensitiveToEveryByte(t *testing.T) {
	h1 := CalcCallHash([]byte(`{"id":1,"status":2}`))
	h2 := CalcCallHash([]byte(`{"id":1, "status":2}`))

	require.Len(t, h1, hash.SHA256_HASH_SIZE_BYTES)
	require.NotEqual(t, h1, h2)
}

func TestCalcSignedCallHashDependsOnSigner(t *testing.T) {
	call := []byte(`{"device-id":1}`)

	h0 := CalcSignedCallHash(keys.Ed25519KeyPairForTests(0).PublicKey(), call)
	h1 := CalcSignedCallHash(keys.Ed25519KeyPairForTests(1).PublicKey(), call)

	require.Len(t, h0, hash.SHA256_HASH_SIZE_BYTES)
	require.NotEqual(t, h0, h1)
	require.Equal(t, h0, CalcSignedCallHash(keys.Ed25519KeyPairForTests(0).PublicKey(), call))
}
