// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/orbs-network/go-mock"
	"time"
)

const pollInterval = 5 * time.Millisecond

// Eventually polls f until it returns true or the timeout passes
func Eventually(timeout time.Duration, f func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if f() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

func Consistently(duration time.Duration, f func() bool) bool {
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}

func EventuallyVerify(timeout time.Duration, mocks ...mock.HasVerify) error {
	var lastErr error
	Eventually(timeout, func() bool {
		for _, m := range mocks {
			if ok, err := m.Verify(); !ok {
				lastErr = err
				return false
			}
		}
		lastErr = nil
		return true
	})
	return lastErr
}
