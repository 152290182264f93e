// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/pkg/errors"
	"time"
)

func validateCallNotExpired(header *CallHeader, currentTime time.Time, expiryWindow time.Duration) error {
	threshold := primitives.TimestampNano(currentTime.Add(expiryWindow * -1).UnixNano())
	if header.Timestamp < threshold {
		return &errRejected{errors.Errorf("call timestamp %d is older than the expiration window, min timestamp %d", uint64(header.Timestamp), uint64(threshold))}
	}
	return nil
}

func validateCallNotInFuture(header *CallHeader, currentTime time.Time, futureTimestampGrace time.Duration) error {
	tsWithGrace := primitives.TimestampNano(currentTime.Add(futureTimestampGrace).UnixNano())
	if header.Timestamp > tsWithGrace {
		return &errRejected{errors.Errorf("call timestamp %d is ahead of node time, max timestamp %d", uint64(header.Timestamp), uint64(tsWithGrace))}
	}
	return nil
}
