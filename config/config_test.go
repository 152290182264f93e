// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestProductionConfigIsValid(t *testing.T) {
	require.NoError(t, ValidateNodeConfig(ForProduction(":8080")))
}

func TestDevelopmentConfigIsValid(t *testing.T) {
	cfg := ForDevelopment("")

	require.NoError(t, ValidateNodeConfig(cfg))
	require.True(t, cfg.HttpProfiling())
	require.True(t, cfg.LoggerFullLog())
	require.Empty(t, cfg.NTPEndpoint())
}

func TestAcceptanceTestsConfigAppliesOverrides(t *testing.T) {
	cfg := ForAcceptanceTests(NodeConfigKeyValue{Key: BLOCK_TRACKER_STARTING_HEIGHT, Value: NodeConfigValue{Uint32Value: 99}})

	require.NoError(t, ValidateNodeConfig(cfg))
	require.EqualValues(t, 99, cfg.BlockTrackerStartingHeight())
	require.Equal(t, 10*time.Millisecond, cfg.BlockInterval())
}

func TestCloneDoesNotShareValues(t *testing.T) {
	cfg := ForProduction("")
	cloned := cfg.Clone()

	cloned.SetUint32(VIRTUAL_CHAIN_ID, 1000)

	require.EqualValues(t, 42, cfg.VirtualChainId())
	require.EqualValues(t, 1000, cloned.VirtualChainId())
}

func TestValidateConfig_RejectsZeroBlockInterval(t *testing.T) {
	cfg := ForProduction("")
	cfg.SetDuration(BLOCK_INTERVAL, 0)

	err := ValidateNodeConfig(cfg)
	require.EqualError(t, err, "BlockInterval must be positive, got 0s")
}

func TestValidateConfig_RejectsRateLimitWithoutBurst(t *testing.T) {
	cfg := ForProduction("")
	cfg.SetUint32(HTTP_RATE_BURST, 0)

	require.Error(t, ValidateNodeConfig(cfg))
}

func TestValidateConfig_AllowsUnlimitedRate(t *testing.T) {
	cfg := ForProduction("")
	cfg.SetUint32(HTTP_RATE_LIMIT, 0)
	cfg.SetUint32(HTTP_RATE_BURST, 0)

	require.NoError(t, ValidateNodeConfig(cfg))
}

func TestValidateConfig_RejectsGraceTimeoutAboveCallTimeout(t *testing.T) {
	cfg := ForProduction("")
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, time.Minute)

	require.Error(t, ValidateNodeConfig(cfg))
}

func TestValidateConfig_RejectsZeroCallExpirationWindow(t *testing.T) {
	cfg := ForProduction("")
	cfg.SetDuration(CALL_EXPIRATION_WINDOW, 0)

	require.EqualError(t, ValidateNodeConfig(cfg), "CallExpirationWindow must be positive, got 0s")
}
