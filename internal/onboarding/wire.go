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

package onboarding

import (
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/service"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/web"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/fnxlabs/levelup/internal/user"
	"github.com/google/wire"
)

func InitModule(aiModule *ai.Module,
	skillModule *skill.Module,
	userModule *user.Module,
	rewardModule *reward.Module) *Module {
	wire.Build(
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initService(aiModule *ai.Module,
	skillModule *skill.Module,
	userModule *user.Module,
	rewardModule *reward.Module) service.Service {
	return service.NewOnboardingService(aiModule.Extractor, aiModule.Svc,
		skillModule.Svc, userModule.Svc, rewardModule.Svc)
}
