// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package registrycli

import (
	"github.com/orbs-network/orbs-device-registry/crypto/keys"
	"github.com/pkg/errors"
	"io/ioutil"
	"strings"
)

const DEFAULT_KEY_FILE = "./.orbsKeys"

// the key file holds the public key on the first line and the private key on the second, both hex
func WriteKeyFile(path string, keyPair *keys.Ed25519KeyPair) error {
	content := keyPair.PublicKeyHex() + "\n" + keyPair.PrivateKeyHex() + "\n"
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		return errors.Wrapf(err, "could not write key file %s", path)
	}
	return nil
}

func ReadKeyFile(path string) (*keys.Ed25519KeyPair, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open key file %s", path)
	}

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		return nil, errors.Errorf("key file %s must hold exactly two lines, found %d", path, len(lines))
	}

	keyPair, err := keys.Ed25519KeyPairFromHex(strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, errors.Wrapf(err, "key file %s", path)
	}
	return keyPair, nil
}
