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

package admin

import (
	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/admin/internal/repository"
	"github.com/fnxlabs/levelup/internal/admin/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/admin/internal/service"
	"github.com/fnxlabs/levelup/internal/admin/internal/web"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		dao.NewGORMTableDAO,
		repository.NewTableRepository,
		service.NewTableService,
		web.NewTableHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
