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

package zhipu

import (
	"context"
	"fmt"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/yankeguo/zhipu"
)

type Handler struct {
	client *zhipu.Client
	model  string
}

var _ handler.Handler = &Handler{}

// NewHandler apikey 为空的时候不会报错，而是在调用的时候返回 ErrMissingCredential
func NewHandler(apikey, model string) (*Handler, error) {
	h := &Handler{model: model}
	if apikey == "" {
		return h, nil
	}
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	h.client = client
	return h, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	if h.client == nil {
		return domain.LLMResponse{}, handler.ErrMissingCredential
	}
	completion, err := h.buildReq(req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, fmt.Errorf("%w: %w", handler.ErrModelUnavailable, err)
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	chatReq := h.client.ChatCompletion(model)
	// 智谱没有 JSON 模式，依赖系统 prompt 约束输出
	if req.Config.SystemPrompt != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.Config.SystemPrompt,
		})
	}
	chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Input,
	})
	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		chatReq = chatReq.SetTopP(req.Config.TopP)
	}
	return chatReq
}
