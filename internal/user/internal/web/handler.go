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
	"github.com/fnxlabs/levelup/internal/user/internal/domain"
	"github.com/fnxlabs/levelup/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{userSvc: userSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/user")
	users.POST("/profile", ginx.S(h.Profile))
	users.POST("/profile/edit", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	p := newProfile(u)
	p.IsAdmin = sess.Claims().Get("admin").StringOrDefault("") == "true"
	return ginx.Result{Data: p}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateProfile(ctx, domain.User{
		Id:          sess.Claims().Uid,
		DisplayName: req.DisplayName,
		Department:  req.Department,
		JobTitle:    req.JobTitle,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
