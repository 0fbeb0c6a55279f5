// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
)

type HandlerBuilder struct {
	calls    *prometheus.CounterVec
	duration *prometheus.SummaryVec
	tokens   *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(reg prometheus.Registerer) *HandlerBuilder {
	b := &HandlerBuilder{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "levelup",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "大模型调用次数",
		}, []string{"biz", "result"}),
		duration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "levelup",
			Subsystem: "llm",
			Name:      "duration_seconds",
			Help:      "大模型调用耗时",
			Objectives: map[float64]float64{
				0.5:  0.01,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, []string{"biz"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "levelup",
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "大模型消耗的 token",
		}, []string{"biz"}),
	}
	reg.MustRegister(b.calls, b.duration, b.tokens)
	return b
}

func (b *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		b.duration.WithLabelValues(req.Biz).Observe(time.Since(start).Seconds())
		b.calls.WithLabelValues(req.Biz, result(err)).Inc()
		if err == nil {
			b.tokens.WithLabelValues(req.Biz).Add(float64(resp.Tokens))
		}
		return resp, err
	})
}

func result(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, handler.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, handler.ErrInputTooLong):
		return "input_too_long"
	default:
		return "failed"
	}
}
