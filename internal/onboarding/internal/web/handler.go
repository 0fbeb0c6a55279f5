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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/domain"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/errs"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/onboarding/resume", ginx.S(h.Resume))
}

// Resume 表单字段 file 是简历文件，支持 pdf、docx 和纯文本
func (h *Handler) Resume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	filename, contentType, data, err := ai.ReadUpload(ctx, "file")
	if err != nil {
		return h.errorResult(err)
	}
	res, err := h.svc.OnboardResume(ctx, sess.Claims().Uid, domain.Upload{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newResult(res)}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrUserNotFound) {
		return userNotFoundResult, nil
	}
	if res, ok := ai.ErrorResult(err); ok {
		return res, nil
	}
	return systemErrorResult, err
}

type Result struct {
	FullName      string   `json:"fullName"`
	Title         string   `json:"title"`
	Department    string   `json:"department"`
	SkillsCreated int      `json:"skillsCreated"`
	SkillsLinked  int      `json:"skillsLinked"`
	Errors        []string `json:"errors"`
	BonusGranted  bool     `json:"bonusGranted"`
	Xp            int64    `json:"xp"`
	Coins         int64    `json:"coins"`
}

func newResult(r domain.Result) Result {
	return Result{
		FullName:      r.FullName,
		Title:         r.Title,
		Department:    r.Department,
		SkillsCreated: r.SkillsCreated,
		SkillsLinked:  r.SkillsLinked,
		Errors:        r.Errors,
		BonusGranted:  r.BonusGranted,
		Xp:            r.Xp,
		Coins:         r.Coins,
	}
}
