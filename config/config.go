// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"time"
)

type NodeConfig interface {
	VirtualChainId() primitives.VirtualChainId

	// http server
	HttpAddress() string
	HttpProfiling() bool
	HttpRateLimit() uint32
	HttpRateBurst() uint32
	HttpMaxConnections() uint32

	// block clock and tracker
	BlockInterval() time.Duration
	BlockTrackerStartingHeight() primitives.BlockHeight
	BlockTrackerGraceDistance() uint32
	BlockTrackerGraceTimeout() time.Duration

	// public api
	PublicApiCallTimeout() time.Duration
	CallExpirationWindow() time.Duration
	CallFutureTimestampGraceTimeout() time.Duration

	// metrics
	MetricsReportInterval() time.Duration
	NTPEndpoint() string

	// logger
	LoggerFullLog() bool
	LoggerFileTruncationInterval() time.Duration
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Clone() mutableNodeConfig
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type config struct {
	kv map[string]NodeConfigValue
}

const (
	VIRTUAL_CHAIN_ID = "VIRTUAL_CHAIN_ID"

	HTTP_ADDRESS         = "HTTP_ADDRESS"
	HTTP_PROFILING       = "HTTP_PROFILING"
	HTTP_RATE_LIMIT      = "HTTP_RATE_LIMIT"
	HTTP_RATE_BURST      = "HTTP_RATE_BURST"
	HTTP_MAX_CONNECTIONS = "HTTP_MAX_CONNECTIONS"

	BLOCK_INTERVAL                = "BLOCK_INTERVAL"
	BLOCK_TRACKER_STARTING_HEIGHT = "BLOCK_TRACKER_STARTING_HEIGHT"
	BLOCK_TRACKER_GRACE_DISTANCE  = "BLOCK_TRACKER_GRACE_DISTANCE"
	BLOCK_TRACKER_GRACE_TIMEOUT   = "BLOCK_TRACKER_GRACE_TIMEOUT"

	PUBLIC_API_CALL_TIMEOUT             = "PUBLIC_API_CALL_TIMEOUT"
	CALL_EXPIRATION_WINDOW              = "CALL_EXPIRATION_WINDOW"
	CALL_FUTURE_TIMESTAMP_GRACE_TIMEOUT = "CALL_FUTURE_TIMESTAMP_GRACE_TIMEOUT"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
	NTP_ENDPOINT            = "NTP_ENDPOINT"

	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
)

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Clone() mutableNodeConfig {
	cloned := &config{
		kv: make(map[string]NodeConfigValue, len(c.kv)),
	}
	for key, value := range c.kv {
		cloned.kv[key] = value
	}
	return cloned
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

func (c *config) VirtualChainId() primitives.VirtualChainId {
	return primitives.VirtualChainId(c.kv[VIRTUAL_CHAIN_ID].Uint32Value)
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpProfiling() bool {
	return c.kv[HTTP_PROFILING].BoolValue
}

func (c *config) HttpRateLimit() uint32 {
	return c.kv[HTTP_RATE_LIMIT].Uint32Value
}

func (c *config) HttpRateBurst() uint32 {
	return c.kv[HTTP_RATE_BURST].Uint32Value
}

func (c *config) HttpMaxConnections() uint32 {
	return c.kv[HTTP_MAX_CONNECTIONS].Uint32Value
}

func (c *config) BlockInterval() time.Duration {
	return c.kv[BLOCK_INTERVAL].DurationValue
}

func (c *config) BlockTrackerStartingHeight() primitives.BlockHeight {
	return primitives.BlockHeight(c.kv[BLOCK_TRACKER_STARTING_HEIGHT].Uint32Value)
}

func (c *config) BlockTrackerGraceDistance() uint32 {
	return c.kv[BLOCK_TRACKER_GRACE_DISTANCE].Uint32Value
}

func (c *config) BlockTrackerGraceTimeout() time.Duration {
	return c.kv[BLOCK_TRACKER_GRACE_TIMEOUT].DurationValue
}

func (c *config) PublicApiCallTimeout() time.Duration {
	return c.kv[PUBLIC_API_CALL_TIMEOUT].DurationValue
}

func (c *config) CallExpirationWindow() time.Duration {
	return c.kv[CALL_EXPIRATION_WINDOW].DurationValue
}

func (c *config) CallFutureTimestampGraceTimeout() time.Duration {
	return c.kv[CALL_FUTURE_TIMESTAMP_GRACE_TIMEOUT].DurationValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) NTPEndpoint() string {
	return c.kv[NTP_ENDPOINT].StringValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}
