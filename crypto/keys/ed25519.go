// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package keys

import (
	"github.com/orbs-network/orbs-device-registry/crypto/encoding"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	ED25519_PUBLIC_KEY_SIZE_BYTES  = ed25519.PublicKeySize
	ED25519_PRIVATE_KEY_SIZE_BYTES = ed25519.PrivateKeySize
)

type Ed25519KeyPair struct {
	publicKey  primitives.Ed25519PublicKey
	privateKey primitives.Ed25519PrivateKey
}

func NewEd25519KeyPair(publicKey primitives.Ed25519PublicKey, privateKey primitives.Ed25519PrivateKey) *Ed25519KeyPair {
	return &Ed25519KeyPair{publicKey, privateKey}
}

func (k *Ed25519KeyPair) PublicKey() primitives.Ed25519PublicKey {
	return k.publicKey
}

func (k *Ed25519KeyPair) PrivateKey() primitives.Ed25519PrivateKey {
	return k.privateKey
}

func (k *Ed25519KeyPair) PublicKeyHex() string {
	return encoding.EncodeHex(k.publicKey)
}

func (k *Ed25519KeyPair) PrivateKeyHex() string {
	return encoding.EncodeHex(k.privateKey)
}

func GenerateEd25519Key() (*Ed25519KeyPair, error) {
	pub, pri, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new signature from random keys")
	}
	return NewEd25519KeyPair(primitives.Ed25519PublicKey(pub), primitives.Ed25519PrivateKey(pri)), nil
}

// Ed25519KeyPairFromHex accepts keys as written by PublicKeyHex and PrivateKeyHex
func Ed25519KeyPairFromHex(publicKeyHex string, privateKeyHex string) (*Ed25519KeyPair, error) {
	pub, err := encoding.DecodeHex(publicKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid public key")
	}
	if len(pub) != ED25519_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.Errorf("public key must be %d bytes, got %d", ED25519_PUBLIC_KEY_SIZE_BYTES, len(pub))
	}

	pri, err := encoding.DecodeHex(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	if len(pri) != ED25519_PRIVATE_KEY_SIZE_BYTES {
		return nil, errors.Errorf("private key must be %d bytes, got %d", ED25519_PRIVATE_KEY_SIZE_BYTES, len(pri))
	}

	return NewEd25519KeyPair(pub, pri), nil
}
