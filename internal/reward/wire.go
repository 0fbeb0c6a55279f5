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

//go:build wireinject

package reward

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/event"
	"github.com/fnxlabs/levelup/internal/reward/internal/event/cache"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
	"github.com/fnxlabs/levelup/internal/reward/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitService,
		cache.NewRewardECache,
		initRewardConsumer,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		d := dao.NewLedgerGORMDAO(db)
		r := repository.NewLedgerRepository(d)
		svc = service.NewLedgerService(r, initLevelPolicy(), service.RetryConfig{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			MaxRetries:      5,
		})
	})
	return svc
}

func initLevelPolicy() domain.LevelPolicy {
	type Config struct {
		XpPerLevel int64 `yaml:"xpPerLevel"`
	}
	var cfg Config
	err := econf.UnmarshalKey("reward", &cfg)
	if err != nil {
		panic(err)
	}
	return domain.LevelPolicy{XpPerLevel: cfg.XpPerLevel}
}

func initRewardConsumer(svc service.Service, c cache.EventCache, q mq.MQ) *event.RewardEventConsumer {
	consumer, err := event.NewRewardEventConsumer(svc, c, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}
