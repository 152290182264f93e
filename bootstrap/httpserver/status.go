// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"github.com/orbs-network/orbs-device-registry/config"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"time"
)

type StatusResponse struct {
	Uptime       int64
	BlockHeight  uint64
	LastDeviceId uint64
	Version      config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := StatusResponse{
		Uptime:  int64(time.Since(s.started).Seconds()),
		Version: config.GetVersion(),
	}

	if out, err := s.publicApi.LastDeviceId(r.Context()); err != nil {
		s.logger.Error("could not read registry status", log.Error(err))
	} else if out != nil {
		status.BlockHeight = uint64(out.BlockHeight)
		status.LastDeviceId = uint64(out.LastDeviceId)
	}

	data, _ := json.MarshalIndent(status, "", "  ")

	_, err := w.Write(data)
	if err != nil {
		s.logger.Info("error writing status response", log.Error(err))
	}
}
