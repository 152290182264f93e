// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/pkg/errors"
	"reflect"
	"runtime"
	"strings"
	"time"
)

func ValidateNodeConfig(cfg NodeConfig) error {
	for _, d := range []func() time.Duration{
		cfg.BlockInterval,
		cfg.BlockTrackerGraceTimeout,
		cfg.PublicApiCallTimeout,
		cfg.CallExpirationWindow,
		cfg.MetricsReportInterval,
	} {
		if err := requirePositive(d); err != nil {
			return err
		}
	}

	if cfg.HttpAddress() == "" {
		return errors.New("http address must not be empty")
	}

	if cfg.HttpRateLimit() > 0 && cfg.HttpRateBurst() == 0 {
		return errors.New("http rate burst must be positive when http rate limit is set")
	}

	if cfg.BlockTrackerGraceTimeout() > cfg.PublicApiCallTimeout() {
		return errors.Errorf("block tracker grace timeout %s must not exceed public api call timeout %s", cfg.BlockTrackerGraceTimeout(), cfg.PublicApiCallTimeout())
	}

	return nil
}

func requirePositive(d func() time.Duration) error {
	if d() <= 0 {
		return errors.Errorf("%s must be positive, got %s", funcName(d), d())
	}
	return nil
}

func funcName(i interface{}) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	lastDot := strings.LastIndex(fullName, ".")
	return strings.TrimSuffix(fullName[lastDot+1:], "-fm")
}
