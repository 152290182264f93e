// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/orbs-device-registry/test"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestPeriodicalTrigger_FiresRepeatedly(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		var fired int32
		ticks := make(chan struct{}, 10)
		p := NewPeriodicalTrigger(ctx, "test trigger", time.Millisecond, log.DefaultTestingLogger(t), func() {
			atomic.AddInt32(&fired, 1)
			ticks <- struct{}{}
		}, nil)
		defer p.Stop()

		for i := 0; i < 3; i++ {
			select {
			case <-ticks:
			case <-time.After(time.Second):
				t.Fatalf("trigger fired only %d times", atomic.LoadInt32(&fired))
			}
		}
	})
}

func TestPeriodicalTrigger_StopRunsOnStopBeforeReturning(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		var stopped int32
		p := NewPeriodicalTrigger(ctx, "test trigger", time.Hour, log.DefaultTestingLogger(t), func() {}, func() {
			atomic.StoreInt32(&stopped, 1)
		})

		p.Stop()

		require.EqualValues(t, 1, atomic.LoadInt32(&stopped), "onStop did not run")
	})
}

func TestPeriodicalTrigger_ShutsDownWhenParentContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPeriodicalTrigger(ctx, "test trigger", time.Hour, log.DefaultTestingLogger(t), func() {}, nil)

	cancel()

	test.RequireShutdownWithin(t, p, time.Second)
}

func TestPeriodicalTrigger_DoesNotFireBeforeInterval(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		var fired int32
		p := NewPeriodicalTrigger(ctx, "test trigger", time.Hour, log.DefaultTestingLogger(t), func() {
			atomic.AddInt32(&fired, 1)
		}, nil)

		time.Sleep(5 * time.Millisecond)
		p.Stop()

		require.Zero(t, atomic.LoadInt32(&fired), "trigger fired before its interval elapsed")
	})
}
