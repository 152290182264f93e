// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

type BlockTracker struct {
	logger        log.Logger
	graceDistance uint64 // this is not primitives.BlockHeight on purpose, to indicate that grace distance should be small

	mutex         sync.RWMutex
	currentHeight uint64 // this is not primitives.BlockHeight so as to avoid unnecessary casts
	latch         chan struct{}

	fireOnWait func() // used by tests only
}

func NewBlockTracker(logger log.Logger, startingHeight uint64, graceDist uint64) *BlockTracker {
	return &BlockTracker{
		logger:        logger,
		currentHeight: startingHeight,
		graceDistance: graceDist,
		latch:         make(chan struct{}),
	}
}

func (t *BlockTracker) CurrentHeight() primitives.BlockHeight {
	currentHeight, _ := t.readAtomicHeightAndLatch()
	return primitives.BlockHeight(currentHeight)
}

func (t *BlockTracker) IncrementTo(height primitives.BlockHeight) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.currentHeight+1 != uint64(height) {
		panic(errors.Errorf("BlockTracker received a non-sequential height; current height %d, requested height %d", t.currentHeight, height))
	}

	t.currentHeight++
	prevLatch := t.latch
	t.latch = make(chan struct{})
	close(prevLatch)
}

func (t *BlockTracker) readAtomicHeightAndLatch() (uint64, chan struct{}) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.currentHeight, t.latch
}

// WaitForBlock blocks until requestedHeight is reached, the context ends, or fails immediately when requestedHeight is beyond the grace distance
func (t *BlockTracker) WaitForBlock(ctx context.Context, requestedHeight primitives.BlockHeight) error {
	requestedHeightUint := uint64(requestedHeight)
	currentHeight, currentLatch := t.readAtomicHeightAndLatch()

	if currentHeight >= requestedHeightUint { // requested block already reached
		return nil
	}

	if currentHeight+t.graceDistance < requestedHeightUint { // requested block too far ahead, no grace
		return errors.New("requested future block outside of grace range")
	}

	for currentHeight < requestedHeightUint {
		if t.fireOnWait != nil {
			t.fireOnWait()
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "aborted while waiting for block at height %d", requestedHeight)
		case <-currentLatch:
			currentHeight, currentLatch = t.readAtomicHeightAndLatch()
		}
	}

	return nil
}
