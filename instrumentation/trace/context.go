// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"time"
)

type entryPointKeyType string

const entryPointKey entryPointKeyType = "ep"
const RequestId = "request-id"
const RequestIdHeader = "X-ORBS-REQUEST-ID"

type Context struct {
	created   time.Time
	name      string
	requestId string
}

func NewContext(parent context.Context, name string) context.Context {
	now := time.Now()
	return context.WithValue(parent, entryPointKey, &Context{
		name:      name,
		created:   now,
		requestId: fmt.Sprintf("%s-%d", name, now.UnixNano()),
	})
}

// NewFromRequest keeps a client supplied request id so that client and node logs can be correlated
func NewFromRequest(parent context.Context, name string, r *http.Request) context.Context {
	requestId := r.Header.Get(RequestIdHeader)
	if requestId == "" {
		return NewContext(parent, name)
	}

	return context.WithValue(parent, entryPointKey, &Context{
		name:      name,
		created:   time.Now(),
		requestId: requestId,
	})
}

// ContinueOrNew keeps an entry point created upstream, such as the one the http server attaches to each request
func ContinueOrNew(parent context.Context, name string) context.Context {
	if _, ok := FromContext(parent); ok {
		return parent
	}
	return NewContext(parent, name)
}

func FromContext(ctx context.Context) (e *Context, ok bool) {
	e, ok = ctx.Value(entryPointKey).(*Context)
	return
}

func (c *Context) RequestId() string {
	if c == nil {
		return ""
	}
	return c.requestId
}

func (c *Context) NestedFields() []*log.Field {
	if c == nil { // this can happen if the tracing.Context was never created
		return nil
	}

	return []*log.Field{
		log.String("entry-point", c.name),
		log.String(RequestId, c.requestId),
	}
}

func LogFieldFrom(ctx context.Context) *log.Field {
	if trace, ok := FromContext(ctx); ok {
		return &log.Field{Key: "trace", Nested: trace, Type: log.AggregateType}
	}
	return log.String("trace", "NO-CONTEXT")
}
