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

	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/jobpost"
	"github.com/fnxlabs/levelup/internal/onboarding"
	"github.com/fnxlabs/levelup/internal/pkg/middleware"
	"github.com/fnxlabs/levelup/internal/referral"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/fnxlabs/levelup/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	metrics *middleware.MetricsBuilder,
	userHdl *user.Handler,
	skillHdl *skill.Handler,
	jobHdl *jobpost.Handler,
	rewardHdl *reward.Handler,
	referralHdl *referral.Handler,
	onboardingHdl *onboarding.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	res.Use(metrics.Build("web"))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	skillHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	rewardHdl.PrivateRoutes(res.Engine)
	referralHdl.PrivateRoutes(res.Engine)
	onboardingHdl.PrivateRoutes(res.Engine)
	return res
}
