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
	"github.com/fnxlabs/levelup/internal/reward/internal/errs"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var errorCodes = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrUserNotFound, code: errs.UserNotFound},
	{err: service.ErrInvalidEntry, code: errs.InvalidAdjustment},
	{err: service.ErrInvalidKind, code: errs.InvalidAdjustment},
	{err: service.ErrDuplicatedTransaction, code: errs.DuplicatedTransaction},
}

// errorResult 第二个返回值为 nil 说明是业务错误，不需要记录系统错误日志
func errorResult(err error) (ginx.Result, error) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return ginx.Result{Code: c.code.Code, Msg: c.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
