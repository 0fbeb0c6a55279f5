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

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/cache"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var ErrUnknownBiz = errors.New("未知的业务")

//go:generate mockgen -source=./config.go -destination=../../mocks/config_repo.mock.go -package=aimocks ConfigRepository
type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
}

// CachedConfigRepository 数据库里面的配置覆盖内置的默认配置
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(d dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	res, err := repo.dao.FindByBiz(ctx, biz)
	switch {
	case err == nil:
		cfg = repo.merge(biz, res)
	case errors.Is(err, gorm.ErrRecordNotFound):
		def, ok := domain.DefaultBizConfigs[biz]
		if !ok {
			return domain.BizConfig{}, ErrUnknownBiz
		}
		cfg = def
	default:
		return domain.BizConfig{}, err
	}
	if err = repo.cache.Set(ctx, cfg); err != nil {
		repo.logger.Warn("缓存 AI 配置失败", elog.String("biz", biz), elog.FieldErr(err))
	}
	return cfg, nil
}

// merge 数据库里面没有填的字段使用默认值
func (repo *CachedConfigRepository) merge(biz string, src dao.BizConfig) domain.BizConfig {
	cfg := domain.DefaultBizConfigs[biz]
	cfg.Id = src.Id
	cfg.Biz = biz
	cfg.Utime = src.Utime
	if src.Model != "" {
		cfg.Model = src.Model
	}
	if src.MaxInput > 0 {
		cfg.MaxInput = src.MaxInput
	}
	if src.Temperature > 0 {
		cfg.Temperature = src.Temperature
	}
	if src.TopP > 0 {
		cfg.TopP = src.TopP
	}
	if src.SystemPrompt != "" {
		cfg.SystemPrompt = src.SystemPrompt
	}
	return cfg
}
