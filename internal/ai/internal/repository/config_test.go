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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type mapConfigCache struct {
	data map[string]domain.BizConfig
}

func (c *mapConfigCache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, ok := c.data[biz]
	if !ok {
		return domain.BizConfig{}, errors.New("key not found")
	}
	return cfg, nil
}

func (c *mapConfigCache) Set(ctx context.Context, cfg domain.BizConfig) error {
	c.data[cfg.Biz] = cfg
	return nil
}

func TestCachedConfigRepository_GetConfig(t *testing.T) {
	testCases := []struct {
		name    string
		biz     string
		mock    func(mock sqlmock.Sqlmock)
		cached  map[string]domain.BizConfig
		wantCfg domain.BizConfig
		wantErr error
	}{
		{
			name:   "命中缓存",
			biz:    domain.BizJobParse,
			mock:   func(mock sqlmock.Sqlmock) {},
			cached: map[string]domain.BizConfig{domain.BizJobParse: {Biz: domain.BizJobParse, Model: "cached"}},
			wantCfg: domain.BizConfig{
				Biz:   domain.BizJobParse,
				Model: "cached",
			},
		},
		{
			name: "数据库没有配置使用默认值",
			biz:  domain.BizResumeParse,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `ai_biz_configs`").
					WillReturnError(gorm.ErrRecordNotFound)
			},
			cached:  map[string]domain.BizConfig{},
			wantCfg: domain.DefaultBizConfigs[domain.BizResumeParse],
		},
		{
			name: "数据库配置覆盖默认值",
			biz:  domain.BizJobParse,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "biz", "model", "max_input", "temperature", "top_p", "system_prompt", "ctime", "utime"}).
					AddRow(3, domain.BizJobParse, "gemini-2.0-flash", 0, 0.5, 0, "", 1, 2)
				mock.ExpectQuery("SELECT \\* FROM `ai_biz_configs`").WillReturnRows(rows)
			},
			cached: map[string]domain.BizConfig{},
			wantCfg: func() domain.BizConfig {
				cfg := domain.DefaultBizConfigs[domain.BizJobParse]
				cfg.Id = 3
				cfg.Model = "gemini-2.0-flash"
				cfg.Temperature = 0.5
				cfg.Utime = 2
				return cfg
			}(),
		},
		{
			name: "未知的业务",
			biz:  "unknown",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `ai_biz_configs`").
					WillReturnError(gorm.ErrRecordNotFound)
			},
			cached:  map[string]domain.BizConfig{},
			wantErr: ErrUnknownBiz,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      conn,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			c := &mapConfigCache{data: tc.cached}
			repo := NewCachedConfigRepository(dao.NewConfigGORMDAO(db), c)
			cfg, err := repo.GetConfig(context.Background(), tc.biz)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantCfg, cfg)
			// 写回缓存
			assert.Equal(t, tc.wantCfg, c.data[tc.biz])
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
