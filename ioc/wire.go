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

package ioc

import (
	"github.com/fnxlabs/levelup/internal/admin"
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost"
	"github.com/fnxlabs/levelup/internal/onboarding"
	"github.com/fnxlabs/levelup/internal/referral"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/fnxlabs/levelup/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitRegisterer, InitDB, InitRedis, InitCache, InitMQ, InitSession, initMetricsBuilder)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		admin.InitModule,
		wire.FieldsOf(new(*admin.Module), "Hdl"),
		ai.InitModule,
		wire.FieldsOf(new(*ai.Module), "AdminHdl"),
		skill.InitModule,
		wire.FieldsOf(new(*skill.Module), "Hdl"),
		jobpost.InitModule,
		wire.FieldsOf(new(*jobpost.Module), "Hdl", "AdminHdl"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		reward.InitModule,
		wire.FieldsOf(new(*reward.Module), "Hdl", "AdminHdl"),
		referral.InitModule,
		wire.FieldsOf(new(*referral.Module), "Hdl", "AdminHdl", "MaturePayoutsJob"),
		onboarding.InitModule,
		wire.FieldsOf(new(*onboarding.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
	)
	return new(App), nil
}
