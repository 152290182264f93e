// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-device-registry/bootstrap/httpserver"
	"github.com/orbs-network/orbs-device-registry/config"
	"github.com/orbs-network/orbs-device-registry/instrumentation/logfields"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/services/deviceregistry"
	"github.com/orbs-network/orbs-device-registry/services/processor/native/repository"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/orbs-network/orbs-device-registry/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-device-registry/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type Node struct {
	govnr.TreeSupervisor
	logger           log.Logger
	cancel           context.CancelFunc
	httpServer       *httpserver.HttpServer
	blockTracker     *synchronization.BlockTracker
	publicApi        *publicapi.Service
	statePersistence *memory.InMemoryStatePersistence
	metricRegistry   metric.Registry
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	if err := config.ValidateNodeConfig(nodeConfig); err != nil {
		return nil, errors.Wrap(err, "node config is invalid")
	}

	ctx, cancel := context.WithCancel(context.Background())
	nodeLogger := logger.WithTags(logfields.VirtualChainId(nodeConfig.VirtualChainId()))
	metricRegistry := metric.NewRegistry().WithVirtualChainId(nodeConfig.VirtualChainId())

	n := &Node{
		logger:         nodeLogger,
		cancel:         cancel,
		metricRegistry: metricRegistry,
	}

	n.statePersistence = memory.NewStatePersistence(metricRegistry)
	registry := deviceregistry.NewRegistry(n.statePersistence.ForContract(deviceregistry.CONTRACT_NAME))

	n.blockTracker = synchronization.NewBlockTracker(nodeLogger, uint64(nodeConfig.BlockTrackerStartingHeight()), uint64(nodeConfig.BlockTrackerGraceDistance()))
	n.Supervise(synchronization.NewBlockClock(ctx, n.blockTracker, nodeConfig.BlockInterval(), nodeLogger))

	n.publicApi = publicapi.NewPublicApi(nodeConfig, registry, n.blockTracker, nodeLogger, metricRegistry)

	httpServer, err := httpserver.NewHttpServer(nodeConfig, nodeLogger, n.publicApi, metricRegistry)
	if err != nil {
		cancel()
		return nil, err
	}
	n.httpServer = httpServer

	n.Supervise(metricRegistry.PeriodicallyReport(ctx, nodeConfig.MetricsReportInterval(), nodeLogger))
	n.Supervise(metric.NewRuntimeReporter(ctx, metricRegistry, nodeLogger))
	n.Supervise(metric.NewSystemReporter(ctx, metricRegistry, nodeLogger))
	if nodeConfig.NTPEndpoint() != "" {
		n.Supervise(metric.NewNtpReporter(ctx, metricRegistry, nodeLogger, nodeConfig.NTPEndpoint()))
	}

	metricRegistry.NewText("Node.Version.Semantic", config.GetVersion().Semantic)
	metricRegistry.NewText("Node.Version.Commit", config.GetVersion().Commit)

	for name, contract := range repository.Contracts {
		nodeLogger.Info("native contract available", log.String("contract", string(name)), log.Int("methods", len(contract.Methods)))
	}

	nodeLogger.Info("device registry node started",
		log.Int("http-port", httpServer.Port()),
		logfields.BlockHeight(n.blockTracker.CurrentHeight()),
		log.Stringable("block-interval", nodeConfig.BlockInterval()))

	return n, nil
}

func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down")
	n.cancel()
	n.httpServer.GracefulShutdown(shutdownContext)
}

func (n *Node) HttpPort() int {
	return n.httpServer.Port()
}

func (n *Node) PublicApi() *publicapi.Service {
	return n.publicApi
}

func (n *Node) BlockTracker() *synchronization.BlockTracker {
	return n.blockTracker
}

func (n *Node) DumpState() string {
	return n.statePersistence.Dump()
}
