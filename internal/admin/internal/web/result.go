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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/fnxlabs/levelup/internal/admin/internal/errs"
	"github.com/fnxlabs/levelup/internal/admin/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTableResult = ginx.Result{
		Code: errs.InvalidTable.Code,
		Msg:  errs.InvalidTable.Msg,
	}
	readOnlyTableResult = ginx.Result{
		Code: errs.ReadOnlyTable.Code,
		Msg:  errs.ReadOnlyTable.Msg,
	}
	invalidFileResult = ginx.Result{
		Code: errs.InvalidFile.Code,
		Msg:  errs.InvalidFile.Msg,
	}
)

// abortWithTableError 表名相关的错误是调用方的问题，返回 4xx
func abortWithTableError(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidTable):
		ctx.AbortWithStatusJSON(http.StatusNotFound, invalidTableResult)
		return invalidTableResult, ginx.ErrNoResponse
	case errors.Is(err, service.ErrReadOnlyTable):
		ctx.AbortWithStatusJSON(http.StatusForbidden, readOnlyTableResult)
		return readOnlyTableResult, ginx.ErrNoResponse
	default:
		return systemErrorResult, err
	}
}
