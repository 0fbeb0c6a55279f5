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

package config

import (
	"context"
	"strings"
	"testing"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	hdlmocks "github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/mocks"
	aimocks "github.com/fnxlabs/levelup/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerBuilder_Next(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		mock    func(ctrl *gomock.Controller) (*aimocks.MockConfigRepository, *hdlmocks.MockHandler)
		wantErr error
	}{
		{
			name:  "填充配置",
			input: "hello",
			mock: func(ctrl *gomock.Controller) (*aimocks.MockConfigRepository, *hdlmocks.MockHandler) {
				repo := aimocks.NewMockConfigRepository(ctrl)
				repo.EXPECT().GetConfig(gomock.Any(), domain.BizJobParse).
					Return(domain.BizConfig{Biz: domain.BizJobParse, Model: "gemini-2.0-flash", MaxInput: 10}, nil)
				next := hdlmocks.NewMockHandler(ctrl)
				next.EXPECT().Handle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, "gemini-2.0-flash", req.Config.Model)
						return domain.LLMResponse{Answer: "{}"}, nil
					})
				return repo, next
			},
		},
		{
			name:  "输入过长",
			input: strings.Repeat("长", 11),
			mock: func(ctrl *gomock.Controller) (*aimocks.MockConfigRepository, *hdlmocks.MockHandler) {
				repo := aimocks.NewMockConfigRepository(ctrl)
				repo.EXPECT().GetConfig(gomock.Any(), domain.BizJobParse).
					Return(domain.BizConfig{Biz: domain.BizJobParse, MaxInput: 10}, nil)
				return repo, hdlmocks.NewMockHandler(ctrl)
			},
			wantErr: handler.ErrInputTooLong,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, next := tc.mock(ctrl)
			h := NewBuilder(repo).Next(next)
			_, err := h.Handle(context.Background(), domain.LLMRequest{Biz: domain.BizJobParse, Input: tc.input})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
