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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/admin"
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost"
	"github.com/fnxlabs/levelup/internal/pkg/middleware"
	"github.com/fnxlabs/levelup/internal/referral"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	tableHdl *admin.TableHandler,
	aiHdl *ai.AdminHandler,
	jobHdl *jobpost.AdminHandler,
	rewardHdl *reward.AdminHandler,
	referralHdl *referral.AdminHandler,
) AdminServer {
	type Config struct {
		Uids []int64 `yaml:"uids"`
	}
	var cfg Config
	err := econf.UnmarshalKey("admin", &cfg)
	if err != nil {
		panic(err)
	}
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.Use(metrics.Build("admin"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckAdminMiddlewareBuilder(sp, cfg.Uids).Build())
	tableHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	rewardHdl.PrivateRoutes(res.Engine)
	referralHdl.PrivateRoutes(res.Engine)
	return res
}

func allowOrigin(origin string) bool {
	if strings.HasPrefix(origin, "http://localhost") {
		return true
	}
	// 只允许公司内部的域名
	return strings.HasSuffix(origin, ".fnxlabs.com")
}
