// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package e2e

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-device-registry/bootstrap"
	"github.com/orbs-network/orbs-device-registry/config"
	"github.com/orbs-network/orbs-device-registry/devtools/registrycli"
	"github.com/orbs-network/orbs-device-registry/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io/ioutil"
	"net/http"
	"os"
	"time"
)

type E2EConfig struct {
	Bootstrap bool
	BaseUrl   string
}

func getConfig() E2EConfig {
	if endpoint := os.Getenv("API_ENDPOINT"); endpoint != "" {
		return E2EConfig{Bootstrap: false, BaseUrl: endpoint}
	}
	return E2EConfig{Bootstrap: true}
}

type harness struct {
	config E2EConfig
	node   *bootstrap.Node
	client *registrycli.Client
}

// newHarness starts a local node unless API_ENDPOINT points at a running one
func newHarness(logger log.Logger) (*harness, error) {
	cfg := getConfig()
	h := &harness{config: cfg}

	if cfg.Bootstrap {
		node, err := bootstrap.NewNode(config.ForAcceptanceTests(), logger.WithTags(log.String("_test", "e2e")))
		if err != nil {
			return nil, errors.Wrap(err, "failed to bootstrap e2e node")
		}
		h.node = node
		h.config.BaseUrl = fmt.Sprintf("http://127.0.0.1:%d", node.HttpPort())
	}

	h.client = registrycli.NewClient(h.config.BaseUrl)
	return h, nil
}

func (h *harness) gracefulShutdown() {
	if h.node == nil {
		return
	}

	synchronization.ShutdownGracefully(h.node, 5*time.Second)
	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h.node.WaitUntilShutdown(waitCtx)
}

func (h *harness) absoluteUrlFor(endpoint string) string {
	return h.config.BaseUrl + endpoint
}

func (h *harness) httpGet(endpoint string) ([]byte, error) {
	res, err := http.Get(h.absoluteUrlFor(endpoint))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("got http status code %d calling %s", res.StatusCode, endpoint)
	}

	return ioutil.ReadAll(res.Body)
}
