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

package openai

import (
	"context"
	"fmt"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Handler 对接 OpenAI 兼容的接口，例如 Gemini 的 OpenAI 兼容端点
type Handler struct {
	client *openai.Client
	// 业务配置里面没有指定模型时使用
	model string
}

var _ handler.Handler = &Handler{}

// NewHandler apikey 为空的时候不会报错，而是在调用的时候返回 ErrMissingCredential
func NewHandler(apikey, baseURL, model string) *Handler {
	h := &Handler{model: model}
	if apikey == "" {
		return h
	}
	opts := []option.RequestOption{option.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	h.client = openai.NewClient(opts...)
	return h
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 最终的出口，不会调用 next
	if h.client == nil {
		return domain.LLMResponse{}, handler.ErrMissingCredential
	}
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
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

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.Config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Input))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(openai.ChatModel(model)),
		// 只返回 JSON
		ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
			openai.ResponseFormatJSONObjectParam{
				Type: openai.F(openai.ResponseFormatJSONObjectTypeJSONObject),
			},
		),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	return params
}
