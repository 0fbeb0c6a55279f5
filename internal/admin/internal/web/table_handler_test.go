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
	"strings"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/fnxlabs/levelup/internal/admin/internal/domain"
	"github.com/fnxlabs/levelup/internal/admin/internal/service"
	adminmocks "github.com/fnxlabs/levelup/internal/admin/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTableHandler_List(t *testing.T) {
	testCases := []struct {
		name     string
		table    string
		mock     func(ctrl *gomock.Controller) service.TableService
		wantCode int
		wantRes  ginx.Result
	}{
		{
			name:  "非法的表名返回 404",
			table: "pg_user",
			mock: func(ctrl *gomock.Controller) service.TableService {
				svc := adminmocks.NewMockTableService(ctrl)
				svc.EXPECT().Fetch(gomock.Any(), "pg_user", 1, 10, "").
					Return(domain.PageResult{}, service.ErrInvalidTable)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantRes:  invalidTableResult,
		},
		{
			name:  "查询成功",
			table: "jobs",
			mock: func(ctrl *gomock.Controller) service.TableService {
				svc := adminmocks.NewMockTableService(ctrl)
				svc.EXPECT().Fetch(gomock.Any(), "jobs", 1, 10, "").
					Return(domain.PageResult{
						Rows:  []domain.Row{{"title": "Go"}},
						Total: 1,
						Page:  1,
						Limit: 10,
					}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantRes: ginx.Result{
				Data: map[string]any{
					"rows":  []any{map[string]any{"title": "Go"}},
					"total": float64(1),
					"page":  float64(1),
					"limit": float64(10),
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewTableHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/admin/tables/"+tc.table+"/list",
				bytes.NewBufferString(`{"page":1,"limit":10}`))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			var res ginx.Result
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSV(&buf, []string{"id", "name", "tags"}, []domain.Row{
		{"id": int64(1), "name": "React, Hooks", "tags": json.RawMessage(`["fe"]`)},
		{"id": int64(2), "name": []byte("Go")},
	})
	require.NoError(t, err)
	assert.Equal(t, "id,name,tags\n1,\"React, Hooks\",\"[\"\"fe\"\"]\"\n2,Go,\n", buf.String())

	rows, err := readCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, []domain.Row{
		{"id": "1", "name": "React, Hooks", "tags": `["fe"]`},
		{"id": "2", "name": "Go", "tags": ""},
	}, rows)

	_, err = readCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestTableHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := adminmocks.NewMockTableService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "job_skills", domain.RowKey{"job_id": float64(3), "skill_id": float64(7)}).
		Return(domain.DeleteResult{Success: true}, nil)
	server := gin.Default()
	NewTableHandler(svc).PrivateRoutes(server)
	req, err := http.NewRequest(http.MethodPost, "/admin/tables/job_skills/delete",
		bytes.NewBufferString(`{"key":{"job_id":3,"skill_id":7}}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var res ginx.Result
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.Equal(t, ginx.Result{Data: map[string]any{"success": true}}, res)
}

func TestTableHandler_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := adminmocks.NewMockTableService(ctrl)
	svc.EXPECT().Upsert(gomock.Any(), "skills", []domain.Row{
		{"slug": "go", "name": "Go"},
	}).Return(domain.UpsertResult{Success: true, Inserted: 1, Errors: []string{}}, nil)
	server := gin.Default()
	NewTableHandler(svc).PrivateRoutes(server)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "skills.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("\ufeffslug,name\ngo,Go\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	req, err := http.NewRequest(http.MethodPost, "/admin/tables/skills/import", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var res ginx.Result
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	assert.Equal(t, ginx.Result{Data: map[string]any{
		"success":  true,
		"inserted": float64(1),
		"errors":   []any{},
	}}, res)
}

func TestTableHandler_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := adminmocks.NewMockTableService(ctrl)
	svc.EXPECT().Schema("skills").Return(domain.TableSchema{
		Name:    "skills",
		Columns: []domain.Column{{Name: "id", Type: domain.ColumnInt}, {Name: "name", Type: domain.ColumnString}},
	}, nil)
	svc.EXPECT().ExportAll(gomock.Any(), "skills").Return([]domain.Row{{"id": int64(1), "name": "Go"}}, nil)
	server := gin.Default()
	NewTableHandler(svc).PrivateRoutes(server)
	req, err := http.NewRequest(http.MethodGet, "/admin/tables/skills/export.csv", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="skills.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,name\n1,Go\n", recorder.Body.String())
}
