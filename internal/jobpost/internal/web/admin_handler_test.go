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
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	jobmocks "github.com/fnxlabs/levelup/internal/jobpost/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_CreateFromParsed(t *testing.T) {
	schemaMismatch, _ := ai.ErrorResult(ai.ErrSchemaMismatch)
	testCases := []struct {
		name    string
		body    string
		mock    func(ctrl *gomock.Controller) service.Orchestrator
		wantRes ginx.Result
	}{
		{
			name: "创建成功",
			body: `{"job":{"title":"Senior Frontend Engineer","skills":[{"name":"React","level":4.6,"isMandatory":true}]},
"options":{"status":"open","referralCoins":200}}`,
			mock: func(ctrl *gomock.Controller) service.Orchestrator {
				orch := jobmocks.NewMockOrchestrator(ctrl)
				orch.EXPECT().CreateFromParsed(gomock.Any(), ai.ParsedJob{
					Title:      "Senior Frontend Engineer",
					Department: ai.DefaultDepartment,
					Skills:     []ai.ParsedSkill{{Name: "React", Level: 5, IsMandatory: true}},
				}, domain.CreateOptions{Status: domain.StatusOpen, ReferralCoins: 200}).
					Return(domain.ImportResult{
						JobID:         9,
						Code:          "senior-frontend-engineer-lq2x",
						SkillsCreated: 1,
						SkillsLinked:  1,
						Errors:        []string{},
					}, nil)
				return orch
			},
			wantRes: ginx.Result{
				Data: map[string]any{
					"jobId":         float64(9),
					"code":          "senior-frontend-engineer-lq2x",
					"skillsCreated": float64(1),
					"skillsLinked":  float64(1),
					"errors":        []any{},
				},
			},
		},
		{
			name: "缺少标题",
			body: `{"job":{"skills":[]}}`,
			mock: func(ctrl *gomock.Controller) service.Orchestrator {
				return jobmocks.NewMockOrchestrator(ctrl)
			},
			wantRes: schemaMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewAdminHandler(jobmocks.NewMockJobService(ctrl), tc.mock(ctrl)).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/admin/job/create-from-parsed",
				bytes.NewBufferString(tc.body))
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

func TestHandler_DetailHidesDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := jobmocks.NewMockJobService(ctrl)
	svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(service.JobDetail{
		Job: domain.Job{Id: 1, Status: domain.StatusDraft},
	}, nil)
	server := gin.Default()
	NewHandler(svc).PrivateRoutes(server)
	req, err := http.NewRequest(http.MethodPost, "/job/detail", bytes.NewBufferString(`{"id":1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	var res ginx.Result
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.Equal(t, jobNotFoundResult, res)
}
