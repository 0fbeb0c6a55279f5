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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckAdminMiddlewareBuilder 放行 admin 标记为 true 或者 uid 在白名单里的会话，
// 需要放在登录校验之后
type CheckAdminMiddlewareBuilder struct {
	sp     session.Provider
	uids   []int64
	logger *elog.Component
}

func NewCheckAdminMiddlewareBuilder(sp session.Provider, uids []int64) *CheckAdminMiddlewareBuilder {
	return &CheckAdminMiddlewareBuilder{
		sp:     sp,
		uids:   uids,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		if claims.Get("admin").StringOrDefault("") == "true" ||
			slice.Contains(c.uids, claims.Uid) {
			return
		}
		gctx.AbortWithStatus(http.StatusForbidden)
		c.logger.Error("非法访问 admin 接口，未设置权限", elog.Int64("uid", claims.Uid))
	}
}
