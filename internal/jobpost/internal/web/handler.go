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
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 员工只能看到开放中的岗位
type Handler struct {
	svc service.JobService
}

func NewHandler(svc service.JobService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/job/list", ginx.B[Page](h.List))
	server.POST("/job/detail", ginx.B[IdReq](h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, total, err := h.svc.List(ctx, domain.StatusOpen, req.Offset, min(req.Limit, maxPageSize))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if detail.Job.Status != domain.StatusOpen {
		return jobNotFoundResult, nil
	}
	return ginx.Result{Data: newJobDetail(detail)}, nil
}
