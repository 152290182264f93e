// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(VIRTUAL_CHAIN_ID, 42)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetBool(HTTP_PROFILING, false)
	cfg.SetUint32(HTTP_RATE_LIMIT, 100)
	cfg.SetUint32(HTTP_RATE_BURST, 200)
	cfg.SetUint32(HTTP_MAX_CONNECTIONS, 512)

	cfg.SetDuration(BLOCK_INTERVAL, 1*time.Second)
	cfg.SetUint32(BLOCK_TRACKER_STARTING_HEIGHT, 0)

	// scheduling hick-ups inside the node
	cfg.SetUint32(BLOCK_TRACKER_GRACE_DISTANCE, 5)
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, 5*time.Second)

	cfg.SetDuration(PUBLIC_API_CALL_TIMEOUT, 10*time.Second)

	// signed calls outside this window are rejected, calls inside it are checked for replays
	cfg.SetDuration(CALL_EXPIRATION_WINDOW, 30*time.Minute)
	cfg.SetDuration(CALL_FUTURE_TIMESTAMP_GRACE_TIMEOUT, 3*time.Minute)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)
	cfg.SetString(NTP_ENDPOINT, "pool.ntp.org")

	cfg.SetBool(LOGGER_FULL_LOG, false)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)

	return cfg
}

func ForProduction(httpAddress string) mutableNodeConfig {
	cfg := defaultProductionConfig()
	if httpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, httpAddress)
	}
	return cfg
}

// ForDevelopment logs everything, exposes pprof and skips ntp drift reporting
func ForDevelopment(httpAddress string) mutableNodeConfig {
	cfg := ForProduction(httpAddress)

	cfg.SetBool(HTTP_PROFILING, true)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetString(NTP_ENDPOINT, "")
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 5*time.Second)

	return cfg
}

func ForAcceptanceTests(overrides ...NodeConfigKeyValue) mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_RATE_LIMIT, 10000)
	cfg.SetUint32(HTTP_RATE_BURST, 10000)

	cfg.SetDuration(BLOCK_INTERVAL, 10*time.Millisecond)
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, 1*time.Second)
	cfg.SetDuration(PUBLIC_API_CALL_TIMEOUT, 2*time.Second)

	cfg.SetString(NTP_ENDPOINT, "")
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 1*time.Hour)
	cfg.SetBool(LOGGER_FULL_LOG, true)

	cfg.(*config).Modify(overrides...)

	return cfg
}
