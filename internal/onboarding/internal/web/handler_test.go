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
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/domain"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/service"
	onboardingmocks "github.com/fnxlabs/levelup/internal/onboarding/mocks"
	_ "github.com/fnxlabs/levelup/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Resume(t *testing.T) {
	unsupported, _ := ai.ErrorResult(ai.ErrUnsupportedType)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantRes ginx.Result
	}{
		{
			name: "入职成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := onboardingmocks.NewMockService(ctrl)
				svc.EXPECT().OnboardResume(gomock.Any(), int64(8), domain.Upload{
					Filename:    "cv.txt",
					ContentType: "application/octet-stream",
					Data:        []byte("Grace Hopper"),
				}).Return(domain.Result{
					FullName:      "Grace Hopper",
					SkillsCreated: 1,
					SkillsLinked:  2,
					Errors:        []string{},
					BonusGranted:  true,
					Xp:            500,
					Coins:         100,
				}, nil)
				return svc
			},
			wantRes: ginx.Result{Data: map[string]any{
				"fullName":      "Grace Hopper",
				"title":         "",
				"department":    "",
				"skillsCreated": float64(1),
				"skillsLinked":  float64(2),
				"errors":        []any{},
				"bonusGranted":  true,
				"xp":            float64(500),
				"coins":         float64(100),
			}},
		},
		{
			name: "文件类型不支持",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := onboardingmocks.NewMockService(ctrl)
				svc.EXPECT().OnboardResume(gomock.Any(), int64(8), gomock.Any()).
					Return(domain.Result{}, ai.ErrUnsupportedType)
				return svc
			},
			wantRes: unsupported,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := onboardingmocks.NewMockService(ctrl)
				svc.EXPECT().OnboardResume(gomock.Any(), int64(8), gomock.Any()).
					Return(domain.Result{}, service.ErrUserNotFound)
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
				ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 8}))
			})
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)

			body := &bytes.Buffer{}
			w := multipart.NewWriter(body)
			fw, err := w.CreateFormFile("file", "cv.txt")
			require.NoError(t, err)
			_, err = fw.Write([]byte("Grace Hopper"))
			require.NoError(t, err)
			require.NoError(t, w.Close())
			req, err := http.NewRequest(http.MethodPost, "/onboarding/resume", body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", w.FormDataContentType())
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			var res ginx.Result
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
