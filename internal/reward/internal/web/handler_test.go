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

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
	rewardmocks "github.com/fnxlabs/levelup/internal/reward/mocks"
	_ "github.com/fnxlabs/levelup/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Adjust(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantRes ginx.Result
	}{
		{
			name: "扣减金币",
			body: `{"uid":2,"amount":-150,"kind":"coins","reason":"兑换礼品"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := rewardmocks.NewMockService(ctrl)
				svc.EXPECT().ManualAdjust(gomock.Any(), int64(1), int64(2), int64(-150), domain.KindCoins, "兑换礼品").
					Return(domain.Transaction{
						Id:          5,
						Uid:         2,
						SourceType:  domain.SourceAdminAdjustment,
						SourceLabel: "兑换礼品",
						CoinAmount:  -150,
						CoinBalance: 0,
						XpBalance:   300,
						Ctime:       123,
					}, nil)
				return svc
			},
			wantRes: ginx.Result{Data: map[string]any{
				"id":          float64(5),
				"uid":         float64(2),
				"sourceType":  "admin_adjustment",
				"sourceLabel": "兑换礼品",
				"xpAmount":    float64(0),
				"coinAmount":  float64(-150),
				"xpBalance":   float64(300),
				"coinBalance": float64(0),
				"ctime":       float64(123),
			}},
		},
		{
			name: "非法的调整类型",
			body: `{"uid":2,"amount":10,"kind":"diamond"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := rewardmocks.NewMockService(ctrl)
				svc.EXPECT().ManualAdjust(gomock.Any(), int64(1), int64(2), int64(10), domain.Kind("diamond"), "").
					Return(domain.Transaction{}, service.ErrInvalidKind)
				return svc
			},
			wantRes: ginx.Result{Code: 413002, Msg: "调整参数非法"},
		},
		{
			name: "用户不存在",
			body: `{"uid":404,"amount":10,"kind":"xp"}`,
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := rewardmocks.NewMockService(ctrl)
				svc.EXPECT().ManualAdjust(gomock.Any(), int64(1), int64(404), int64(10), domain.KindXp, "").
					Return(domain.Transaction{}, service.ErrUserNotFound)
				return svc
			},
			wantRes: ginx.Result{Code: 413001, Msg: "用户不存在"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
					Uid:  1,
					Data: map[string]string{"admin": "true"},
				}))
			})
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/admin/reward/adjust", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusOK, recorder.Code)
			var res ginx.Result
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
