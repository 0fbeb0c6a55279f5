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

package ioc

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	ginxredis "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitSession 会话由统一登录签发，这里只负责校验和续期
func InitSession(cmd redis.Cmdable) session.Provider {
	type Config struct {
		SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
		// Expiration 单位小时，默认一天
		Expiration int `yaml:"expiration"`
		Cookie     struct {
			Name   string `yaml:"name"`
			Domain string `yaml:"domain"`
		} `yaml:"cookie"`
	}
	var cfg Config
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	expiration := 24 * time.Hour
	if cfg.Expiration > 0 {
		expiration = time.Duration(cfg.Expiration) * time.Hour
	}
	name := cfg.Cookie.Name
	if name == "" {
		name = "levelup_ssid"
	}
	sp := ginxredis.NewSessionProvider(cmd, cfg.SessionEncryptedKey, expiration)
	// 后台和员工端都是浏览器访问，脚本和内部工具走 header
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), &cookie.TokenCarrier{
		MaxAge:   int(expiration.Seconds()),
		Name:     name,
		Secure:   true,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	})
	return sp
}
