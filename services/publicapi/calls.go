// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-device-registry/instrumentation/logfields"
	"github.com/orbs-network/orbs-device-registry/instrumentation/trace"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

func (s *Service) RegisterDevice(parentCtx context.Context, input *SignedCall) (*RegisterDeviceOutput, error) {
	ctx := trace.ContinueOrNew(parentCtx, "PublicApi.RegisterDevice")
	logger := s.loggerFor(ctx, "RegisterDevice")
	now := time.Now()
	defer s.observe(s.metrics.registerDevice, now)

	var call RegisterDeviceCall
	signer, err := s.admit(input, &call, now)
	if err != nil {
		return &RegisterDeviceOutput{RequestResult: s.failure(logger, s.heights.CurrentHeight(), err)}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &callContext{signer: signer, height: s.heights.CurrentHeight()}
	if err := s.markSeen(input, &call, now); err != nil {
		return &RegisterDeviceOutput{RequestResult: s.failure(logger, tx.height, err)}, err
	}

	id := s.registry.RegisterDevice(tx, call.Name, call.Model, call.Manufacturer, call.AcquisitionDate)
	s.metrics.totalDevices.Update(int64(id))

	logger.Info("device registered", logfields.DeviceId(uint64(id)), logfields.ClientAddress(signer), logfields.BlockHeight(tx.height))
	return &RegisterDeviceOutput{RequestResult: completed(tx.height), DeviceId: id}, nil
}

func (s *Service) UpdateDeviceStatus(parentCtx context.Context, input *SignedCall) (*UpdateDeviceStatusOutput, error) {
	ctx := trace.ContinueOrNew(parentCtx, "PublicApi.UpdateDeviceStatus")
	logger := s.loggerFor(ctx, "UpdateDeviceStatus")
	now := time.Now()
	defer s.observe(s.metrics.updateDeviceStatus, now)

	var call UpdateDeviceStatusCall
	signer, err := s.admit(input, &call, now)
	if err != nil {
		return &UpdateDeviceStatusOutput{s.failure(logger, s.heights.CurrentHeight(), err)}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &callContext{signer: signer, height: s.heights.CurrentHeight()}
	if err := s.markSeen(input, &call, now); err != nil {
		return &UpdateDeviceStatusOutput{s.failure(logger, tx.height, err)}, err
	}

	logger = logger.WithTags(logfields.DeviceId(call.DeviceId), logfields.ClientAddress(signer))
	if err := s.registry.UpdateDeviceStatus(tx, deviceregistry.DeviceId(call.DeviceId), deviceregistry.DeviceStatus(call.Status)); err != nil {
		return &UpdateDeviceStatusOutput{s.failure(logger, tx.height, err)}, err
	}

	logger.Info("device status updated", log.Stringable("status", deviceregistry.DeviceStatus(call.Status)), logfields.BlockHeight(tx.height))
	return &UpdateDeviceStatusOutput{completed(tx.height)}, nil
}

func (s *Service) RecordMaintenance(parentCtx context.Context, input *SignedCall) (*RecordMaintenanceOutput, error) {
	ctx := trace.ContinueOrNew(parentCtx, "PublicApi.RecordMaintenance")
	logger := s.loggerFor(ctx, "RecordMaintenance")
	now := time.Now()
	defer s.observe(s.metrics.recordMaintenance, now)

	var call RecordMaintenanceCall
	signer, err := s.admit(input, &call, now)
	if err != nil {
		return &RecordMaintenanceOutput{s.failure(logger, s.heights.CurrentHeight(), err)}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &callContext{signer: signer, height: s.heights.CurrentHeight()}
	if err := s.markSeen(input, &call, now); err != nil {
		return &RecordMaintenanceOutput{s.failure(logger, tx.height, err)}, err
	}

	logger = logger.WithTags(logfields.DeviceId(call.DeviceId), logfields.ClientAddress(signer))
	if err := s.registry.RecordMaintenance(tx, deviceregistry.DeviceId(call.DeviceId)); err != nil {
		return &RecordMaintenanceOutput{s.failure(logger, tx.height, err)}, err
	}

	logger.Info("device maintenance recorded", logfields.BlockHeight(tx.height))
	return &RecordMaintenanceOutput{completed(tx.height)}, nil
}

func (s *Service) GetDevice(parentCtx context.Context, input *GetDeviceInput) (*GetDeviceOutput, error) {
	ctx := trace.ContinueOrNew(parentCtx, "PublicApi.GetDevice")
	logger := s.loggerFor(ctx, "GetDevice")
	defer s.observe(s.metrics.getDevice, time.Now())

	if input.MinBlockHeight > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, s.config.BlockTrackerGraceTimeout())
		defer cancel()
		if err := s.heights.WaitForBlock(waitCtx, input.MinBlockHeight); err != nil {
			err = errors.Wrapf(err, "node did not reach block height %d", input.MinBlockHeight)
			result := RequestResult{RequestStatus: REQUEST_STATUS_OUT_OF_SYNC, BlockHeight: s.heights.CurrentHeight(), ErrorMessage: err.Error()}
			logger.Info("call failed", log.Error(err), logfields.RequestStatus(result.RequestStatus))
			return &GetDeviceOutput{RequestResult: result}, err
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	height := s.heights.CurrentHeight()
	record, ok := s.registry.GetDevice(input.DeviceId)
	if !ok {
		err := errors.Wrapf(deviceregistry.ErrDeviceNotFound, "device %d", uint64(input.DeviceId))
		return &GetDeviceOutput{RequestResult: s.failure(logger, height, err)}, err
	}

	return &GetDeviceOutput{RequestResult: completed(height), Device: record}, nil
}

func (s *Service) LastDeviceId(parentCtx context.Context) (*LastDeviceIdOutput, error) {
	defer s.observe(s.metrics.lastDeviceId, time.Now())

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return &LastDeviceIdOutput{
		RequestResult: completed(s.heights.CurrentHeight()),
		LastDeviceId:  s.registry.LastDeviceId(),
	}, nil
}
