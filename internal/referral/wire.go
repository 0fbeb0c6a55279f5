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

package referral

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/jobpost"
	"github.com/fnxlabs/levelup/internal/referral/internal/event"
	"github.com/fnxlabs/levelup/internal/referral/internal/job"
	"github.com/fnxlabs/levelup/internal/referral/internal/repository"
	"github.com/fnxlabs/levelup/internal/referral/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/referral/internal/service"
	"github.com/fnxlabs/levelup/internal/referral/internal/web"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, jobModule *jobpost.Module) (*Module, error) {
	wire.Build(
		InitService,
		initMaturePayoutsJob,
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

func InitService(db *egorm.Component, q mq.MQ, jobModule *jobpost.Module) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		producer, err := event.NewRewardEventProducer(q)
		if err != nil {
			panic(err)
		}
		repo := repository.NewReferralRepository(dao.NewReferralGORMDAO(db))
		svc = service.NewReferralService(repo, jobModule.Svc, producer)
	})
	return svc
}

func initMaturePayoutsJob(svc service.Service) *MaturePayoutsJob {
	const batchSize = 100
	return job.NewMaturePayoutsJob(svc, batchSize)
}
