// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"time"
)

// NewBlockClock advances the tracker by one block every interval; registry calls observe the current height
func NewBlockClock(ctx context.Context, tracker *BlockTracker, interval time.Duration, logger log.Logger) *PeriodicalTrigger {
	logger = logger.WithTags(log.String("flow", "block-clock"))

	return NewPeriodicalTrigger(ctx, "block clock", interval, logger, func() {
		tracker.IncrementTo(tracker.CurrentHeight() + 1)
	}, func() {
		logger.Info("block clock stopped", log.Uint64("block-height", uint64(tracker.CurrentHeight())))
	})
}
