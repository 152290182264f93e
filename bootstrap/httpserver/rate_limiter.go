// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"github.com/orbs-network/scribe/log"
	"golang.org/x/time/rate"
	"net/http"
)

type rateLimiter struct {
	limiter *rate.Limiter
	logger  log.Logger
}

// a zero limit disables rate limiting
func newRateLimiter(limit uint32, burst uint32, logger log.Logger) *rateLimiter {
	if limit == 0 {
		return &rateLimiter{logger: logger}
	}
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(limit), int(burst)),
		logger:  logger,
	}
}

func (l *rateLimiter) wrap(next http.Handler) http.Handler {
	if l.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			l.logger.Info("request rate limit exceeded", log.String("path", r.URL.Path), log.String("remote-address", r.RemoteAddr))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
