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

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdminMiddlewareBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		sp       *fakeProvider
		uids     []int64
		wantCode int
	}{
		{
			name: "带有 admin 标记",
			sp: &fakeProvider{sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{"admin": "true"},
			})},
			wantCode: http.StatusOK,
		},
		{
			name:     "在白名单里",
			sp:       &fakeProvider{sess: session.NewMemorySession(session.Claims{Uid: 2})},
			uids:     []int64{2, 3},
			wantCode: http.StatusOK,
		},
		{
			name: "普通员工",
			sp: &fakeProvider{sess: session.NewMemorySession(session.Claims{
				Uid:  4,
				Data: map[string]string{"admin": "false"},
			})},
			uids:     []int64{2, 3},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有会话",
			sp:       &fakeProvider{err: errors.New("mock no session")},
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(NewCheckAdminMiddlewareBuilder(tc.sp, tc.uids).Build())
			server.POST("/admin/ping", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			req, err := http.NewRequest(http.MethodPost, "/admin/ping", nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

type fakeProvider struct {
	session.Provider
	sess session.Session
	err  error
}

func (f *fakeProvider) Get(ctx *gctx.Context) (session.Session, error) {
	return f.sess, f.err
}
