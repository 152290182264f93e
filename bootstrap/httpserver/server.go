// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"github.com/orbs-network/orbs-device-registry/instrumentation/metric"
	"github.com/orbs-network/orbs-device-registry/services/publicapi"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/net/netutil"
	"net"
	"net/http"
	"net/http/pprof"
	"time"
)

var LogTag = log.String("adapter", "http-server")

type Config interface {
	HttpAddress() string
	HttpProfiling() bool
	HttpRateLimit() uint32
	HttpRateBurst() uint32
	HttpMaxConnections() uint32
	PublicApiCallTimeout() time.Duration
}

type PublicApi interface {
	RegisterDevice(ctx context.Context, input *publicapi.SignedCall) (*publicapi.RegisterDeviceOutput, error)
	UpdateDeviceStatus(ctx context.Context, input *publicapi.SignedCall) (*publicapi.UpdateDeviceStatusOutput, error)
	RecordMaintenance(ctx context.Context, input *publicapi.SignedCall) (*publicapi.RecordMaintenanceOutput, error)
	GetDevice(ctx context.Context, input *publicapi.GetDeviceInput) (*publicapi.GetDeviceOutput, error)
	LastDeviceId(ctx context.Context) (*publicapi.LastDeviceIdOutput, error)
}

type HttpServer struct {
	httpServer     *http.Server
	logger         log.Logger
	publicApi      PublicApi
	metricRegistry metric.Registry
	config         Config
	started        time.Time

	port int
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlive(true)
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlivePeriod(35 * time.Second)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func NewHttpServer(cfg Config, logger log.Logger, publicApi PublicApi, metricRegistry metric.Registry) (*HttpServer, error) {
	server := &HttpServer{
		logger:         logger.WithTags(LogTag),
		publicApi:      publicApi,
		metricRegistry: metricRegistry,
		config:         cfg,
		started:        time.Now(),
	}

	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start http server on %s", cfg.HttpAddress())
	}

	server.port = listener.Addr().(*net.TCPAddr).Port
	server.httpServer = &http.Server{
		Handler: server.createRouter(),
	}

	var connections net.Listener = tcpKeepAliveListener{listener.(*net.TCPListener)}
	if cfg.HttpMaxConnections() > 0 {
		connections = netutil.LimitListener(connections, int(cfg.HttpMaxConnections()))
	}

	// a busy port fails NewHttpServer, not the serving goroutine
	go func() {
		if err := server.httpServer.Serve(connections); err != nil && err != http.ErrServerClosed {
			server.logger.Error("http server stopped unexpectedly", log.Error(err))
		}
	}()

	server.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", server.port))

	return server, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) timeLimited(h http.Handler) http.Handler {
	return http.TimeoutHandler(h, s.config.PublicApiCallTimeout(), "request timed out")
}

func (s *HttpServer) createRouter() http.Handler {
	api := http.NewServeMux()
	// writes run to completion once admitted, a timeout here could answer 503 for a committed call
	api.Handle("/api/v1/register-device", wrapHandlerWithCORS(postOnly(s.registerDeviceHandler)))
	api.Handle("/api/v1/update-device-status", wrapHandlerWithCORS(postOnly(s.updateDeviceStatusHandler)))
	api.Handle("/api/v1/record-maintenance", wrapHandlerWithCORS(postOnly(s.recordMaintenanceHandler)))
	api.Handle("/api/v1/get-device", s.timeLimited(wrapHandlerWithCORS(getOnly(s.getDeviceHandler))))
	api.Handle("/api/v1/last-device-id", s.timeLimited(wrapHandlerWithCORS(getOnly(s.lastDeviceIdHandler))))

	router := http.NewServeMux()
	router.Handle("/api/", newRateLimiter(s.config.HttpRateLimit(), s.config.HttpRateBurst(), s.logger).wrap(api))
	router.Handle("/metrics", wrapHandlerWithCORS(s.dumpMetrics))
	router.Handle("/metrics.prometheus", http.HandlerFunc(s.dumpPrometheusMetrics))
	router.Handle("/status", wrapHandlerWithCORS(s.getStatus))
	router.Handle("/robots.txt", http.HandlerFunc(s.robots))

	if s.config.HttpProfiling() {
		registerPprof(router)
	}

	return router
}

func registerPprof(router *http.ServeMux) {
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
}

// Allows handler to be called via XHR requests from any host
func wrapHandlerWithCORS(f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
		} else {
			f(w, r)
		}
	}
}

func postOnly(f http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodPost, f)
}

func getOnly(f http.HandlerFunc) http.HandlerFunc {
	return allowMethod(http.MethodGet, f)
}

func allowMethod(method string, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		f(w, r)
	}
}
