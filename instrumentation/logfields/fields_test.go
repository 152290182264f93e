// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type collectingErrorer struct {
	messages chan string
}

func (c *collectingErrorer) Error(message string, fields ...*log.Field) {
	c.messages <- message
}

func TestGovnrErrorer_ReportsRecoveredPanic(t *testing.T) {
	errorer := &collectingErrorer{messages: make(chan string, 1)}

	govnr.Once(GovnrErrorer(errorer), func() {
		panic(errors.New("boom"))
	})

	select {
	case message := <-errorer.messages:
		require.Equal(t, "recovered panic", message)
	case <-time.After(time.Second):
		t.Fatal("panic was not reported")
	}
}

func TestDeviceId_IsUintField(t *testing.T) {
	f := DeviceId(17)
	require.Equal(t, "device-id", f.Key)
	require.EqualValues(t, 17, f.Uint)
	require.Equal(t, log.UintType, f.Type)
}
