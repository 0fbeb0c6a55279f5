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

package jobpost

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/repository"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/web"
	"github.com/fnxlabs/levelup/internal/pkg/sngenerator"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, skillModule *skill.Module, aiModule *ai.Module) *Module {
	wire.Build(
		InitJobDAO,
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		sngenerator.NewCodeGenerator,
		repository.NewJobRepository,
		service.NewJobService,
		service.NewOrchestrator,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitJobDAO(db *egorm.Component) dao.JobDAO {
	InitTableOnce(db)
	return dao.NewGORMJobDAO(db)
}
