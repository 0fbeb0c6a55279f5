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

package record

import (
	"context"
	"errors"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

type HandlerBuilder struct {
	repo   repository.LLMRecordRepo
	logger *elog.Component
}

func NewHandler(repo repository.LLMRecordRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		log := domain.LLMRecord{
			Tid:    req.Tid,
			Biz:    req.Biz,
			Uid:    req.Uid,
			Input:  req.Input,
			Status: domain.RecordStatusProcessing,
		}
		resp, err := next.Handle(ctx, req)
		// 没有配置 key 的请求没有到达大模型，不需要记录
		if errors.Is(err, handler.ErrMissingCredential) {
			return resp, err
		}
		if err != nil {
			log.Status = domain.RecordStatusFailed
		} else {
			log.Tokens = resp.Tokens
			log.Status = domain.RecordStatusSuccess
			log.Answer = resp.Answer
		}
		_, err1 := h.repo.SaveRecord(ctx, log)
		if err1 != nil {
			h.logger.Error("保存 LLM 访问记录失败", elog.String("tid", req.Tid), elog.FieldErr(err1))
		}
		return resp, err
	})
}

var _ handler.Builder = &HandlerBuilder{}
