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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
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
	g := server.Group("/reward")
	g.POST("/summary", ginx.S(h.Summary))
	g.POST("/transactions", ginx.BS[Page](h.Transactions))
}

func (h *Handler) Summary(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Summary(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	b := newBalance(s.Balance)
	b.NextLevelXp = s.NextLevelXp
	return ginx.Result{Data: Summary{
		Balance:          b,
		TransactionCount: s.TransactionCount,
		Recent:           newTransactions(s.Recent),
	}}, nil
}

func (h *Handler) Transactions(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	txns, total, err := h.svc.Transactions(ctx, sess.Claims().Uid, req.Offset, min(req.Limit, maxPageSize))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: TransactionList{
		List:  newTransactions(txns),
		Total: total,
	}}, nil
}

type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc, logger: elog.DefaultLogger}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/reward")
	g.POST("/adjust", ginx.BS[AdjustReq](h.Adjust))
	g.POST("/reconcile", ginx.B[UidReq](h.Reconcile))
}

func (h *AdminHandler) Adjust(ctx *ginx.Context, req AdjustReq, sess session.Session) (ginx.Result, error) {
	txn, err := h.svc.ManualAdjust(ctx, sess.Claims().Uid, req.Uid, req.Amount, domain.Kind(req.Kind), req.Reason)
	if err != nil {
		return errorResult(err)
	}
	h.logger.Info("管理员调整余额",
		elog.Int64("operator", sess.Claims().Uid),
		elog.Int64("uid", req.Uid),
		elog.Int64("amount", req.Amount),
		elog.String("kind", req.Kind))
	return ginx.Result{Data: newTransaction(txn)}, nil
}

func (h *AdminHandler) Reconcile(ctx *ginx.Context, req UidReq) (ginx.Result, error) {
	res, err := h.svc.Reconcile(ctx, req.Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ReconcileResult{
		Before:  newBalance(res.Before),
		After:   newBalance(res.After),
		Drifted: res.Drifted,
	}}, nil
}
