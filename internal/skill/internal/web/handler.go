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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/skill/internal/domain"
	"github.com/fnxlabs/levelup/internal/skill/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.SkillService
}

func NewHandler(svc service.SkillService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/skill/mine", ginx.S(h.Mine))
}

// Mine 当前用户的技能画像
func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	skills, err := h.svc.UserSkills(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(skills, func(idx int, src domain.UserSkill) UserSkill {
			return newUserSkill(src)
		}),
	}, nil
}
