// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-device-registry/instrumentation/trace"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"io/ioutil"
	"net/http"
	"strconv"
)

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

func readInput(r *http.Request) ([]byte, *httpErr) {
	if r.Body == nil {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	bytes, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, &httpErr{http.StatusBadRequest, log.Error(err), "http request body could not be read"}
	}
	if len(bytes) == 0 {
		return nil, &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}
	return bytes, nil
}

func readSignedCall(r *http.Request) (*publicapi.SignedCall, *httpErr) {
	bytes, e := readInput(r)
	if e != nil {
		return nil, e
	}

	signed, err := decodeSignedCall(bytes)
	if err != nil {
		return nil, &httpErr{http.StatusBadRequest, log.Error(err), err.Error()}
	}
	return signed, nil
}

func readUintParam(r *http.Request, name string, required bool) (uint64, *httpErr) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return 0, &httpErr{http.StatusBadRequest, nil, fmt.Sprintf("missing query parameter %s", name)}
		}
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &httpErr{http.StatusBadRequest, log.Error(err), fmt.Sprintf("query parameter %s must be an unsigned integer", name)}
	}
	return value, nil
}

func translateRequestStatusToHttpCode(status publicapi.RequestStatus) int {
	switch status {
	case publicapi.REQUEST_STATUS_COMPLETED:
		return http.StatusOK
	case publicapi.REQUEST_STATUS_BAD_REQUEST:
		return http.StatusBadRequest
	case publicapi.REQUEST_STATUS_NOT_FOUND:
		return http.StatusNotFound
	case publicapi.REQUEST_STATUS_UNAUTHORIZED:
		return http.StatusForbidden
	case publicapi.REQUEST_STATUS_REJECTED:
		return http.StatusUnauthorized
	case publicapi.REQUEST_STATUS_DUPLICATE:
		return http.StatusConflict
	case publicapi.REQUEST_STATUS_OUT_OF_SYNC:
		return http.StatusServiceUnavailable
	case publicapi.REQUEST_STATUS_SYSTEM_ERROR:
		return http.StatusInternalServerError
	case publicapi.REQUEST_STATUS_RESERVED:
		return http.StatusInternalServerError
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) writeJsonResponse(w http.ResponseWriter, r *http.Request, result publicapi.RequestResult, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-ORBS-REQUEST-RESULT", result.RequestStatus.String())
	w.Header().Set("X-ORBS-BLOCK-HEIGHT", fmt.Sprintf("%d", uint64(result.BlockHeight)))
	if tc, ok := trace.FromContext(r.Context()); ok {
		w.Header().Set(trace.RequestIdHeader, tc.RequestId())
	}

	bytes, err := json.Marshal(body)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed to encode response"})
		return
	}

	w.WriteHeader(translateRequestStatusToHttpCode(result.RequestStatus))
	if _, err := w.Write(bytes); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(m.code)
	_, err := w.Write([]byte(m.message))
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

// outputs are returned alongside errors for every failure the service understands, so a nil output is a system error
func (s *HttpServer) writeSystemError(w http.ResponseWriter, err error) {
	if err == nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, nil, "public api returned no result"})
		return
	}
	s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), err.Error()})
}

func (s *HttpServer) registerDeviceHandler(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(trace.NewFromRequest(r.Context(), "http.RegisterDevice", r))
	signed, e := readSignedCall(r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	out, err := s.publicApi.RegisterDevice(r.Context(), signed)
	if out == nil {
		s.writeSystemError(w, err)
		return
	}

	s.writeJsonResponse(w, r, out.RequestResult, &RegisterDeviceResponseJson{
		RequestResultJson: requestResultToJson(out.RequestResult),
		DeviceId:          uint64(out.DeviceId),
	})
}

func (s *HttpServer) updateDeviceStatusHandler(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(trace.NewFromRequest(r.Context(), "http.UpdateDeviceStatus", r))
	signed, e := readSignedCall(r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	out, err := s.publicApi.UpdateDeviceStatus(r.Context(), signed)
	if out == nil {
		s.writeSystemError(w, err)
		return
	}

	s.writeJsonResponse(w, r, out.RequestResult, requestResultToJson(out.RequestResult))
}

func (s *HttpServer) recordMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(trace.NewFromRequest(r.Context(), "http.RecordMaintenance", r))
	signed, e := readSignedCall(r)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	out, err := s.publicApi.RecordMaintenance(r.Context(), signed)
	if out == nil {
		s.writeSystemError(w, err)
		return
	}

	s.writeJsonResponse(w, r, out.RequestResult, requestResultToJson(out.RequestResult))
}

func (s *HttpServer) getDeviceHandler(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(trace.NewFromRequest(r.Context(), "http.GetDevice", r))
	id, e := readUintParam(r, "id", true)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	minHeight, e := readUintParam(r, "min-block-height", false)
	if e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	out, err := s.publicApi.GetDevice(r.Context(), &publicapi.GetDeviceInput{
		DeviceId:       deviceregistry.DeviceId(id),
		MinBlockHeight: primitives.BlockHeight(minHeight),
	})
	if out == nil {
		s.writeSystemError(w, err)
		return
	}

	s.writeJsonResponse(w, r, out.RequestResult, &GetDeviceResponseJson{
		RequestResultJson: requestResultToJson(out.RequestResult),
		Device:            deviceToJson(out.Device),
	})
}

func (s *HttpServer) lastDeviceIdHandler(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(trace.NewFromRequest(r.Context(), "http.LastDeviceId", r))
	out, err := s.publicApi.LastDeviceId(r.Context())
	if out == nil {
		s.writeSystemError(w, err)
		return
	}

	s.writeJsonResponse(w, r, out.RequestResult, &LastDeviceIdResponseJson{
		RequestResultJson: requestResultToJson(out.RequestResult),
		LastDeviceId:      uint64(out.LastDeviceId),
	})
}

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	bytes, _ := json.Marshal(s.metricRegistry.ExportAll())
	_, err := w.Write(bytes)
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func (s *HttpServer) dumpPrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, err := w.Write([]byte(s.metricRegistry.ExportPrometheus()))
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}
