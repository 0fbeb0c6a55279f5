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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
)

type ConfigCache interface {
	Get(ctx context.Context, biz string) (domain.BizConfig, error)
	Set(ctx context.Context, cfg domain.BizConfig) error
}

type configECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewConfigECache(ec ecache.Cache) ConfigCache {
	return &configECache{
		ec: &ecache.NamespaceCache{
			Namespace: "ai:",
			C:         ec,
		},
		// 配置通过通用表接口修改，不会主动删缓存，所以过期时间短一点
		expiration: time.Minute,
	}
}

func (c *configECache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	var cfg domain.BizConfig
	err := c.ec.Get(ctx, c.key(biz)).JSONScan(&cfg)
	return cfg, err
}

func (c *configECache) Set(ctx context.Context, cfg domain.BizConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(cfg.Biz), data, c.expiration)
}

func (c *configECache) key(biz string) string {
	return "config:" + biz
}
