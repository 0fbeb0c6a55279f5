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

package ai

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/cache"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/ai/internal/service"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/document"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/config"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/log"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/metrics"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/llm/handler/record"
	"github.com/fnxlabs/levelup/internal/ai/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
)

func InitModule(db *egorm.Component, ec ecache.Cache, reg prometheus.Registerer) (*Module, error) {
	wire.Build(
		InitLLMRecordDAO,
		dao.NewConfigGORMDAO,
		cache.NewConfigECache,
		repository.NewCachedConfigRepository,
		repository.NewLLMRecordRepo,

		log.NewHandler,
		metrics.NewHandlerBuilder,
		config.NewBuilder,
		record.NewHandler,
		InitPlatform,
		InitLLMService,

		service.NewExtractionService,
		document.NewExtractor,
		web.NewAdminHandler,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
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

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}

type Config struct {
	// Platform openai 或者 zhipu，默认 openai
	Platform string `yaml:"platform"`
	APIKey   string `yaml:"apikey"`
	BaseURL  string `yaml:"baseURL"`
	Model    string `yaml:"model"`
}

// InitPlatform 没有配置 key 的时候不会报错，调用的时候返回 ErrMissingCredential
func InitPlatform() (handler.Handler, error) {
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		elog.DefaultLogger.Warn("读取 AI 配置失败", elog.FieldErr(err))
	}
	if cfg.Platform == "zhipu" {
		h, err := zhipu.NewHandler(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return openai.NewHandler(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
}

// InitLLMService 调用链 log -> metrics -> config -> record -> platform
func InitLLMService(l *log.HandlerBuilder,
	m *metrics.HandlerBuilder,
	c *config.HandlerBuilder,
	r *record.HandlerBuilder,
	platform handler.Handler) llm.Service {
	root := handler.Chain(platform, l, m, c, r)
	return llm.NewLLMService(root)
}
