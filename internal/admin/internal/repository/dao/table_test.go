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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMTableDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		table   string
		conds   []Condition
		mock    func(mock sqlmock.Sqlmock)
		wantCnt int64
		wantErr error
	}{
		{
			name:  "单主键",
			table: "jobs",
			conds: []Condition{{Column: "id", Value: int64(1)}},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `jobs` WHERE `id` = ?")).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantCnt: 1,
		},
		{
			name:  "复合主键只生成对应的等值条件",
			table: "job_skills",
			conds: []Condition{
				{Column: "job_id", Value: int64(3)},
				{Column: "skill_id", Value: int64(7)},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `job_skills` WHERE `job_id` = ? AND `skill_id` = ?")).
					WithArgs(int64(3), int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantCnt: 1,
		},
		{
			name:  "数据库错误",
			table: "jobs",
			conds: []Condition{{Column: "id", Value: int64(1)}},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM `jobs`").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMTableDAO(newMockDB(t, conn))
			cnt, err := d.Delete(context.Background(), tc.table, tc.conds)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCnt, cnt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMTableDAO_Find(t *testing.T) {
	testCases := []struct {
		name      string
		query     Query
		mock      func(mock sqlmock.Sqlmock)
		wantRows  int
		wantTotal int64
	}{
		{
			name: "没有搜索条件",
			query: Query{
				Columns:     []string{"id", "name"},
				OrderColumn: "ctime",
				Limit:       20,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^" + regexp.QuoteMeta("SELECT count(*) FROM `skills`") + "$").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectQuery("^" + regexp.QuoteMeta("SELECT `id`,`name` FROM `skills` ORDER BY `ctime` DESC LIMIT")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
						AddRow(2, "Go").AddRow(1, "React"))
			},
			wantRows:  2,
			wantTotal: 2,
		},
		{
			name: "大小写不敏感的搜索",
			query: Query{
				Columns:      []string{"id", "name"},
				SearchColumn: "name",
				Search:       "ReAct",
				OrderColumn:  "ctime",
				Offset:       20,
				Limit:        20,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `skills` WHERE LOWER(`name`) LIKE ?")).
					WithArgs("%react%").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT `id`,`name` FROM `skills` WHERE LOWER(`name`) LIKE ? ORDER BY `ctime` DESC LIMIT")).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "React"))
			},
			wantRows:  1,
			wantTotal: 21,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMTableDAO(newMockDB(t, conn))
			rows, total, err := d.Find(context.Background(), "skills", tc.query)
			require.NoError(t, err)
			assert.Len(t, rows, tc.wantRows)
			assert.Equal(t, tc.wantTotal, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMTableDAO_Upsert(t *testing.T) {
	testCases := []struct {
		name    string
		rows    []map[string]any
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "冲突时更新",
			rows: []map[string]any{
				{"slug": "react", "name": "React"},
				{"slug": "go", "name": "Go"},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `skills` (`name`,`slug`) VALUES (?,?) ON DUPLICATE KEY UPDATE `name`=VALUES(`name`)")).
					WithArgs("React", "react").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `skills`").
					WithArgs("Go", "go").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "任何一行失败都回滚",
			rows: []map[string]any{
				{"slug": "react", "name": "React"},
				{"slug": "go", "name": "Go"},
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `skills`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `skills`").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewGORMTableDAO(newMockDB(t, conn))
			err = d.Upsert(context.Background(), "skills", []string{"slug"}, tc.rows)
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOnConflict(t *testing.T) {
	c := onConflict([]string{"job_id", "skill_id"}, map[string]any{
		"job_id": 1, "skill_id": 2, "ctime": 3,
	})
	assert.True(t, c.DoNothing)

	c = onConflict([]string{"slug"}, map[string]any{
		"id": 1, "slug": "go", "name": "Go", "utime": 3, "ctime": 3,
	})
	assert.False(t, c.DoNothing)
	assert.Len(t, c.DoUpdates, 2)
	assert.Equal(t, "name", c.DoUpdates[0].Column.Name)
	assert.Equal(t, "utime", c.DoUpdates[1].Column.Name)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%react%", likePattern("React"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
}
