// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/orbs-device-registry/crypto/hash"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

// CalcCallHash hashes the exact bytes the client signed, never a re-encoding of them
func CalcCallHash(rawCall []byte) primitives.Sha256 {
	return hash.CalcSha256(rawCall)
}

// CalcSignedCallHash identifies a call together with the key that signed it
func CalcSignedCallHash(signerPublicKey primitives.Ed25519PublicKey, rawCall []byte) primitives.Sha256 {
	return hash.CalcSha256(signerPublicKey, CalcCallHash(rawCall))
}
