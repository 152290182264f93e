// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-device-registry/crypto/digest"
	"github.com/orbs-network/orbs-device-registry/instrumentation/logfields"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/instrumentation/trace"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.String("service", "public-api")

type Config interface {
	PublicApiCallTimeout() time.Duration
	BlockTrackerGraceTimeout() time.Duration
	CallExpirationWindow() time.Duration
	CallFutureTimestampGraceTimeout() time.Duration
}

type BlockHeightSource interface {
	CurrentHeight() primitives.BlockHeight
	WaitForBlock(ctx context.Context, requestedHeight primitives.BlockHeight) error
}

type RequestResult struct {
	RequestStatus RequestStatus
	BlockHeight   primitives.BlockHeight
	ErrorCode     deviceregistry.ErrorCode
	ErrorMessage  string
}

type RegisterDeviceOutput struct {
	RequestResult
	DeviceId deviceregistry.DeviceId
}

type UpdateDeviceStatusOutput struct {
	RequestResult
}

type RecordMaintenanceOutput struct {
	RequestResult
}

type GetDeviceInput struct {
	DeviceId deviceregistry.DeviceId
	// when set, the read waits until the node reached this height
	MinBlockHeight primitives.BlockHeight
}

type GetDeviceOutput struct {
	RequestResult
	Device *deviceregistry.DeviceRecord
}

type LastDeviceIdOutput struct {
	RequestResult
	LastDeviceId deviceregistry.DeviceId
}

type methodMetrics struct {
	rate           *metric.Rate
	processingTime *metric.Histogram
}

type metrics struct {
	registerDevice      methodMetrics
	updateDeviceStatus  methodMetrics
	recordMaintenance   methodMetrics
	getDevice           methodMetrics
	lastDeviceId        methodMetrics
	totalDevices        *metric.Gauge
	totalRejectedCalls  *metric.Gauge
	totalDuplicateCalls *metric.Gauge
}

func newMethodMetrics(factory metric.Factory, method string, timeout time.Duration) methodMetrics {
	return methodMetrics{
		rate:           factory.NewRate("PublicApi." + method + ".Rate"),
		processingTime: factory.NewLatency("PublicApi."+method+".ProcessingTime", timeout),
	}
}

func newMetrics(factory metric.Factory, timeout time.Duration) *metrics {
	return &metrics{
		registerDevice:      newMethodMetrics(factory, "RegisterDevice", timeout),
		updateDeviceStatus:  newMethodMetrics(factory, "UpdateDeviceStatus", timeout),
		recordMaintenance:   newMethodMetrics(factory, "RecordMaintenance", timeout),
		getDevice:           newMethodMetrics(factory, "GetDevice", timeout),
		lastDeviceId:        newMethodMetrics(factory, "LastDeviceId", timeout),
		totalDevices:        factory.NewGauge("DeviceRegistry.Devices.Count"),
		totalRejectedCalls:  factory.NewGauge("PublicApi.TotalRejectedCalls.Count"),
		totalDuplicateCalls: factory.NewGauge("PublicApi.TotalDuplicateCalls.Count"),
	}
}

// Service authenticates calls and runs them one at a time against the registry
type Service struct {
	config   Config
	registry *deviceregistry.Registry
	heights  BlockHeightSource
	logger   log.Logger
	metrics  *metrics

	mutex     sync.Mutex
	seenCalls *seenCalls
}

func NewPublicApi(
	config Config,
	registry *deviceregistry.Registry,
	heights BlockHeightSource,
	logger log.Logger,
	metricFactory metric.Factory,
) *Service {
	s := &Service{
		config:    config,
		registry:  registry,
		heights:   heights,
		logger:    logger.WithTags(LogTag),
		metrics:   newMetrics(metricFactory, config.PublicApiCallTimeout()),
		seenCalls: newSeenCalls(metricFactory),
	}

	s.metrics.totalDevices.Update(int64(registry.LastDeviceId()))

	return s
}

// callContext binds the authenticated caller and the height observed when the call was executed
type callContext struct {
	signer primitives.ClientAddress
	height primitives.BlockHeight
}

func (c *callContext) SignerAddress() primitives.ClientAddress {
	return c.signer
}

func (c *callContext) BlockHeight() primitives.BlockHeight {
	return c.height
}

func (s *Service) loggerFor(ctx context.Context, method string) log.Logger {
	return s.logger.WithTags(trace.LogFieldFrom(ctx), log.String("method", method))
}

func (s *Service) observe(m methodMetrics, start time.Time) {
	m.rate.Measure(1)
	m.processingTime.RecordSince(start)
}

func (s *Service) failure(logger log.Logger, height primitives.BlockHeight, err error) RequestResult {
	result := RequestResult{
		BlockHeight:  height,
		ErrorCode:    deviceregistry.ErrorCodeOf(err),
		ErrorMessage: err.Error(),
	}

	switch err.(type) {
	case *errRejected:
		s.metrics.totalRejectedCalls.Inc()
		result.RequestStatus = REQUEST_STATUS_REJECTED
	case *errBadRequest:
		result.RequestStatus = REQUEST_STATUS_BAD_REQUEST
	case *errDuplicate:
		s.metrics.totalDuplicateCalls.Inc()
		result.RequestStatus = REQUEST_STATUS_DUPLICATE
	default:
		result.RequestStatus = translateRegistryErrorToRequestStatus(err)
	}

	logger.Info("call failed", log.Error(err), logfields.RequestStatus(result.RequestStatus), logfields.BlockHeight(height))
	return result
}

// admit authenticates input, decodes it into call and checks the call timestamp against now
func (s *Service) admit(input *SignedCall, call Call, now time.Time) (primitives.ClientAddress, error) {
	signer, err := authenticate(input)
	if err != nil {
		return nil, err
	}

	if err := decodeCall(input, call); err != nil {
		return nil, err
	}

	if err := validateCallNotExpired(call.Header(), now, s.config.CallExpirationWindow()); err != nil {
		return nil, err
	}

	if err := validateCallNotInFuture(call.Header(), now, s.config.CallFutureTimestampGraceTimeout()); err != nil {
		return nil, err
	}

	return signer, nil
}

// markSeen fails for a call that was admitted before; must be called with the mutex held
func (s *Service) markSeen(input *SignedCall, call Call, now time.Time) error {
	s.seenCalls.clearCallsOlderThan(now.Add(s.config.CallExpirationWindow() * -1))
	if !s.seenCalls.add(digest.CalcSignedCallHash(input.SignerPublicKey, input.Call), call.Header().Timestamp) {
		return &errDuplicate{errors.New("call was already submitted")}
	}
	return nil
}

func completed(height primitives.BlockHeight) RequestResult {
	return RequestResult{RequestStatus: REQUEST_STATUS_COMPLETED, BlockHeight: height}
}
