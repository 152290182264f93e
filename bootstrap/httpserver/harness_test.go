// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-device-registry/config"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	testKeys "github.com/orbs-network/orbs-device-registry/test/crypto/keys"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type publicApiMock struct {
	mock.Mock
}

func (m *publicApiMock) RegisterDevice(ctx context.Context, input *publicapi.SignedCall) (*publicapi.RegisterDeviceOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*publicapi.RegisterDeviceOutput)
	return out, ret.Error(1)
}

func (m *publicApiMock) UpdateDeviceStatus(ctx context.Context, input *publicapi.SignedCall) (*publicapi.UpdateDeviceStatusOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*publicapi.UpdateDeviceStatusOutput)
	return out, ret.Error(1)
}

func (m *publicApiMock) RecordMaintenance(ctx context.Context, input *publicapi.SignedCall) (*publicapi.RecordMaintenanceOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*publicapi.RecordMaintenanceOutput)
	return out, ret.Error(1)
}

func (m *publicApiMock) GetDevice(ctx context.Context, input *publicapi.GetDeviceInput) (*publicapi.GetDeviceOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*publicapi.GetDeviceOutput)
	return out, ret.Error(1)
}

func (m *publicApiMock) LastDeviceId(ctx context.Context) (*publicapi.LastDeviceIdOutput, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).(*publicapi.LastDeviceIdOutput)
	return out, ret.Error(1)
}

type harness struct {
	server    *HttpServer
	publicApi *publicApiMock
	router    http.Handler
}

func newHarness(t *testing.T, overrides ...config.NodeConfigKeyValue) *harness {
	papiMock := &publicApiMock{}
	s := &HttpServer{
		logger:         log.DefaultTestingLogger(t).WithTags(LogTag),
		publicApi:      papiMock,
		metricRegistry: metric.NewRegistry(),
		config:         config.ForAcceptanceTests(overrides...),
		started:        time.Now(),
	}
	return &harness{server: s, publicApi: papiMock, router: s.createRouter()}
}

func (h *harness) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) verifyMocks(t *testing.T) {
	ok, err := h.publicApi.Verify()
	require.True(t, ok, "public api mock called incorrectly")
	require.NoError(t, err)
}

func signedCallBody(t *testing.T, call publicapi.Call) []byte {
	signed, err := publicapi.SignCall(testKeys.Ed25519KeyPairForTests(0), call)
	require.NoError(t, err)
	body, err := json.Marshal(NewSignedCallJson(signed))
	require.NoError(t, err)
	return body
}

func postRequest(path string, body []byte) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	return req
}

func getRequest(path string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return req
}
