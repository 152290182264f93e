// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"runtime/debug"
)

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

func BlockHeight(value primitives.BlockHeight) *log.Field {
	return &log.Field{Key: "block-height", Uint: uint64(value), Type: log.UintType}
}

func VirtualChainId(value primitives.VirtualChainId) *log.Field {
	return &log.Field{Key: "vcid", Uint: uint64(value), Type: log.UintType}
}

func DeviceId(value uint64) *log.Field {
	return &log.Field{Key: "device-id", Uint: value, Type: log.UintType}
}

func ClientAddress(value primitives.ClientAddress) *log.Field {
	return log.Stringable("client-address", value)
}

func RequestStatus(value fmtStringer) *log.Field {
	return log.Stringable("request-status", value)
}

type fmtStringer interface {
	String() string
}

type govnrErrorer struct {
	logger Errorer
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err), log.String("stack-trace", string(debug.Stack())))
}

// GovnrErrorer reports panics recovered by govnr supervised goroutines to a scribe logger
func GovnrErrorer(logger Errorer) govnr.Errorer {
	return &govnrErrorer{logger}
}
