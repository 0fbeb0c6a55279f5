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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	_ "github.com/fnxlabs/levelup/internal/test"
	"github.com/fnxlabs/levelup/internal/user/internal/domain"
	"github.com/fnxlabs/levelup/internal/user/internal/service"
	usermocks "github.com/fnxlabs/levelup/internal/user/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Profile(t *testing.T) {
	testCases := []struct {
		name    string
		claims  session.Claims
		mock    func(ctrl *gomock.Controller) service.UserService
		wantRes ginx.Result
	}{
		{
			name:   "管理员",
			claims: session.Claims{Uid: 1, Data: map[string]string{"admin": "true"}},
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(1)).Return(domain.User{
					Id:           1,
					DisplayName:  "Ada",
					Email:        "ada@fnxlabs.com",
					CoinsBalance: 300,
					Onboarded:    true,
				}, nil)
				return svc
			},
			wantRes: ginx.Result{Data: map[string]any{
				"id":          float64(1),
				"displayName": "Ada",
				"email":       "ada@fnxlabs.com",
				"department":  "",
				"jobTitle":    "",
				"isAdmin":     true,
				"onboarded":   true,
			}},
		},
		{
			name:   "用户不存在",
			claims: session.Claims{Uid: 2},
			mock: func(ctrl *gomock.Controller) service.UserService {
				svc := usermocks.NewMockUserService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(2)).Return(domain.User{}, service.ErrUserNotFound)
				return svc
			},
			wantRes: userNotFoundResult,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(tc.claims))
			})
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/user/profile", nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusOK, recorder.Code)
			var res ginx.Result
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
