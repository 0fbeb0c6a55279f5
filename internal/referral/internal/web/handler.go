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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/referral/internal/domain"
	"github.com/fnxlabs/levelup/internal/referral/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxPageSize = 100

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/referral")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/list", ginx.BS[Page](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Referral{
		ReferrerId:     sess.Claims().Uid,
		JobId:          req.JobId,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidatePhone: req.CandidatePhone,
		ResumeURL:      req.ResumeURL,
		Notes:          req.Notes,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	refs, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, min(req.Limit, maxPageSize))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newReferralList(refs, total)}, nil
}

type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc, logger: elog.DefaultLogger}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/referral")
	g.POST("/list", ginx.B[AdminListReq](h.List))
	g.POST("/status", ginx.BS[StatusReq](h.UpdateStatus))
	server.POST("/admin/payout/paid", ginx.BS[PayoutReq](h.MarkPaid))
}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReq) (ginx.Result, error) {
	refs, total, err := h.svc.AdminList(ctx, domain.Status(req.Status), req.Offset, min(req.Limit, maxPageSize))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newReferralList(refs, total)}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status), time.Now())
	if err != nil {
		return errorResult(err)
	}
	h.logger.Info("修改内推状态",
		elog.Int64("operator", sess.Claims().Uid),
		elog.Int64("referralId", req.Id),
		elog.String("status", req.Status))
	res := newReferral(r)
	if r.Status == domain.StatusHired {
		p, err := h.svc.Payout(ctx, r.Id)
		if err != nil {
			return systemErrorResult, err
		}
		res.Payout = newPayout(p)
	}
	return ginx.Result{Data: res}, nil
}

func (h *AdminHandler) MarkPaid(ctx *ginx.Context, req PayoutReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.MarkPaid(ctx, req.Id, time.Now())
	if err != nil {
		return errorResult(err)
	}
	h.logger.Info("内推奖励已发放",
		elog.Int64("operator", sess.Claims().Uid),
		elog.Int64("payoutId", p.Id),
		elog.Int64("amount", p.Amount))
	return ginx.Result{Data: newPayout(p)}, nil
}
