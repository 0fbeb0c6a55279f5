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

//go:build e2e

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/admin"
	"github.com/fnxlabs/levelup/internal/admin/internal/errs"
	"github.com/fnxlabs/levelup/internal/admin/internal/web"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/fnxlabs/levelup/internal/test"
	testioc "github.com/fnxlabs/levelup/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TableHandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func TestTableHandler(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

func (s *TableHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	// skills、job_skills 由技能模块建表
	skill.InitModule(s.db)
	module := admin.InitModule(s.db)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *TableHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `skills`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `job_skills`").Error
	s.NoError(err)
}

func (s *TableHandlerTestSuite) TestUpsertThenList() {
	t := s.T()
	res := post[web.UpsertResult](t, s.server, "/admin/tables/skills/upsert", web.UpsertReq{
		Rows: []map[string]any{
			{"slug": "react", "name": "React", "category": "technical", "type": "hard", "source": "admin"},
			{"slug": "go", "name": "Go", "category": "technical", "type": "hard", "source": "admin"},
		},
	})
	require.Equal(t, http.StatusOK, res.status)
	assert.True(t, res.Data.Success)
	assert.Equal(t, int64(2), res.Data.Inserted)
	assert.Empty(t, res.Data.Errors)

	// 按照 slug 冲突更新
	res = post[web.UpsertResult](t, s.server, "/admin/tables/skills/upsert", web.UpsertReq{
		Rows: []map[string]any{
			{"slug": "react", "name": "React.js", "category": "technical", "type": "hard", "source": "admin"},
		},
	})
	assert.True(t, res.Data.Success)
	var cnt int64
	err := s.db.Table("skills").Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	page := post[web.Page](t, s.server, "/admin/tables/skills/list", web.FetchReq{Page: 1, Limit: 10, Search: "REACT"})
	require.Equal(t, http.StatusOK, page.status)
	require.Len(t, page.Data.Rows, 1)
	assert.Equal(t, "React.js", page.Data.Rows[0]["name"])
	assert.Equal(t, int64(1), page.Data.Total)

	// 空白的搜索词等同于不搜索
	all := post[web.Page](t, s.server, "/admin/tables/skills/list", web.FetchReq{Page: 1, Limit: 10})
	blank := post[web.Page](t, s.server, "/admin/tables/skills/list", web.FetchReq{Page: 1, Limit: 10, Search: "   "})
	assert.Equal(t, int64(2), all.Data.Total)
	assert.Equal(t, all.Data, blank.Data)
}

func (s *TableHandlerTestSuite) TestUpsertEmpty() {
	res := post[web.UpsertResult](s.T(), s.server, "/admin/tables/skills/upsert", web.UpsertReq{})
	assert.Equal(s.T(), web.UpsertResult{Success: true, Errors: []string{}}, res.Data)
}

func (s *TableHandlerTestSuite) TestDeleteByCompositeKey() {
	t := s.T()
	err := s.db.Exec("INSERT INTO `job_skills` (`job_id`, `skill_id`, `required_level`, `weight`, `is_mandatory`, `ctime`, `utime`) VALUES (1, 1, 3, 1, true, 1, 1), (1, 2, 2, 0.5, false, 1, 1)").Error
	require.NoError(t, err)
	res := post[web.DeleteResult](t, s.server, "/admin/tables/job_skills/delete", web.DeleteReq{
		Key: map[string]any{"job_id": 1, "skill_id": 2},
	})
	assert.True(t, res.Data.Success)
	var skillIds []int64
	err = s.db.Table("job_skills").Where("job_id = ?", 1).Pluck("skill_id", &skillIds).Error
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, skillIds)
}

func (s *TableHandlerTestSuite) TestRejected() {
	testCases := []struct {
		name     string
		path     string
		wantCode int
		wantRes  int
	}{
		{
			name:     "只读的表",
			path:     "/admin/tables/xp_transactions/upsert",
			wantCode: http.StatusForbidden,
			wantRes:  errs.ReadOnlyTable.Code,
		},
		{
			name:     "未注册的表",
			path:     "/admin/tables/mysql.user/list",
			wantCode: http.StatusNotFound,
			wantRes:  errs.InvalidTable.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := post[web.UpsertResult](t, s.server, tc.path, web.UpsertReq{
				Rows: []map[string]any{{"id": 1}},
			})
			assert.Equal(t, tc.wantCode, res.status)
			assert.Equal(t, tc.wantRes, res.Code)
		})
	}
}

type response[T any] struct {
	test.Result[T]
	status int
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) response[T] {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	res, err := recorder.Scan()
	require.NoError(t, err, fmt.Sprintf("path %s", path))
	return response[T]{Result: res, status: recorder.Code}
}
