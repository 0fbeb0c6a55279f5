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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrEmptyInput        = errors.New("输入为空")
	ErrInputTooLong      = handler.ErrInputTooLong
	ErrMissingCredential = handler.ErrMissingCredential
	ErrModelUnavailable  = handler.ErrModelUnavailable
	// ErrResponseFormat 大模型返回的不是 JSON，可以重新提问
	ErrResponseFormat = errors.New("大模型返回的不是合法的 JSON")
	// ErrSchemaMismatch 大模型返回的 JSON 缺少字段或者类型不对，不会返回部分数据
	ErrSchemaMismatch = errors.New("大模型返回的结构不符合预期")
)

//go:generate mockgen -source=./extraction.go -destination=../../mocks/extraction.mock.go -package=aimocks ExtractionService
type ExtractionService interface {
	ParseJob(ctx context.Context, uid int64, text string) (domain.ParsedJob, error)
	ParseResume(ctx context.Context, uid int64, text string) (domain.ParsedResume, error)
}

type extractionService struct {
	llmSvc llm.Service
}

func NewExtractionService(llmSvc llm.Service) ExtractionService {
	return &extractionService{llmSvc: llmSvc}
}

func (s *extractionService) ParseJob(ctx context.Context, uid int64, text string) (domain.ParsedJob, error) {
	obj, err := s.invoke(ctx, uid, domain.BizJobParse, text)
	if err != nil {
		return domain.ParsedJob{}, err
	}
	return toParsedJob(obj)
}

func (s *extractionService) ParseResume(ctx context.Context, uid int64, text string) (domain.ParsedResume, error) {
	obj, err := s.invoke(ctx, uid, domain.BizResumeParse, text)
	if err != nil {
		return domain.ParsedResume{}, err
	}
	return toParsedResume(obj)
}

func (s *extractionService) invoke(ctx context.Context, uid int64, biz, text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	resp, err := s.llmSvc.Invoke(ctx, domain.LLMRequest{
		Uid:   uid,
		Tid:   shortuuid.New(),
		Biz:   biz,
		Input: text,
	})
	if err != nil {
		return nil, err
	}
	return decodeObject(resp.Answer)
}
