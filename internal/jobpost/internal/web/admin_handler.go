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
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxPageSize = 100

type AdminHandler struct {
	svc    service.JobService
	orch   service.Orchestrator
	logger *elog.Component
}

func NewAdminHandler(svc service.JobService, orch service.Orchestrator) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		orch:   orch,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/job")
	g.POST("/create-from-parsed", ginx.B[CreateFromParsedReq](h.CreateFromParsed))
	g.POST("/create-from-text", ginx.BS[CreateFromTextReq](h.CreateFromText))
	g.POST("/link-skills", ginx.B[LinkSkillsReq](h.LinkSkills))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/status", ginx.B[StatusReq](h.UpdateStatus))
}

func (h *AdminHandler) CreateFromParsed(ctx *ginx.Context, req CreateFromParsedReq) (ginx.Result, error) {
	parsed := ai.ParsedJob{
		Title:      req.Job.Title,
		Department: req.Job.Department,
		Summary:    req.Job.Summary,
		Skills:     toAISkills(req.Job.Skills),
	}
	if parsed.Title == "" {
		res, _ := ai.ErrorResult(ai.ErrSchemaMismatch)
		return res, nil
	}
	if parsed.Department == "" {
		parsed.Department = ai.DefaultDepartment
	}
	return h.importResult(h.orch.CreateFromParsed(ctx, parsed, req.Options.toDomain()))
}

func (h *AdminHandler) CreateFromText(ctx *ginx.Context, req CreateFromTextReq, sess session.Session) (ginx.Result, error) {
	return h.importResult(h.orch.CreateFromText(ctx, sess.Claims().Uid, req.Text, req.Options.toDomain()))
}

func (h *AdminHandler) LinkSkills(ctx *ginx.Context, req LinkSkillsReq) (ginx.Result, error) {
	res, err := h.orch.LinkSkills(ctx, req.JobId, toAISkills(req.Skills))
	if errors.Is(err, service.ErrJobNotFound) {
		return jobNotFoundResult, nil
	}
	return h.importResult(res, err)
}

func (h *AdminHandler) importResult(res domain.ImportResult, err error) (ginx.Result, error) {
	if err != nil {
		if r, ok := ai.ErrorResult(err); ok {
			h.logger.Warn("岗位解析失败", elog.FieldErr(err))
			return r, nil
		}
		return systemErrorResult, err
	}
	if len(res.Errors) > 0 {
		h.logger.Warn("岗位技能部分导入失败",
			elog.Int64("jobId", res.JobID),
			elog.Any("errors", res.Errors))
	}
	return ginx.Result{Data: newImportResult(res)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobDetail(detail)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	jobs, total, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, min(req.Limit, maxPageSize))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
