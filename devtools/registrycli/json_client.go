// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package registrycli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-device-registry/bootstrap/httpserver"
	"github.com/orbs-network/orbs-device-registry/crypto/keys"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/pkg/errors"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	host       string
	httpClient *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) RegisterDevice(keyPair *keys.Ed25519KeyPair, call *publicapi.RegisterDeviceCall) (*httpserver.RegisterDeviceResponseJson, error) {
	out := &httpserver.RegisterDeviceResponseJson{}
	return out, c.sendSigned("/api/v1/register-device", keyPair, call, out)
}

func (c *Client) UpdateDeviceStatus(keyPair *keys.Ed25519KeyPair, call *publicapi.UpdateDeviceStatusCall) (*httpserver.RequestResultJson, error) {
	out := &httpserver.RequestResultJson{}
	return out, c.sendSigned("/api/v1/update-device-status", keyPair, call, out)
}

func (c *Client) RecordMaintenance(keyPair *keys.Ed25519KeyPair, call *publicapi.RecordMaintenanceCall) (*httpserver.RequestResultJson, error) {
	out := &httpserver.RequestResultJson{}
	return out, c.sendSigned("/api/v1/record-maintenance", keyPair, call, out)
}

func (c *Client) GetDevice(id uint64, minBlockHeight uint64) (*httpserver.GetDeviceResponseJson, error) {
	path := fmt.Sprintf("/api/v1/get-device?id=%d", id)
	if minBlockHeight > 0 {
		path += fmt.Sprintf("&min-block-height=%d", minBlockHeight)
	}

	out := &httpserver.GetDeviceResponseJson{}
	res, err := c.httpClient.Get(c.host + path)
	if err != nil {
		return nil, errors.Wrap(err, "get-device request failed")
	}
	return out, readResponse(res, out)
}

func (c *Client) LastDeviceId() (*httpserver.LastDeviceIdResponseJson, error) {
	out := &httpserver.LastDeviceIdResponseJson{}
	res, err := c.httpClient.Get(c.host + "/api/v1/last-device-id")
	if err != nil {
		return nil, errors.Wrap(err, "last-device-id request failed")
	}
	return out, readResponse(res, out)
}

func (c *Client) sendSigned(path string, keyPair *keys.Ed25519KeyPair, call publicapi.Call, out interface{}) error {
	signed, err := publicapi.SignCall(keyPair, call)
	if err != nil {
		return err
	}

	body, err := json.Marshal(httpserver.NewSignedCallJson(signed))
	if err != nil {
		return errors.Wrap(err, "failed to encode signed call")
	}

	res, err := c.httpClient.Post(c.host+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "%s request failed", path)
	}
	return readResponse(res, out)
}

// readResponse decodes the JSON result for any status the registry produced; plain text bodies come from transport level failures
func readResponse(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if !strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		return errors.Errorf("http %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}
