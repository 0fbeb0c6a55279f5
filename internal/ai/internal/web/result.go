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
	"github.com/fnxlabs/levelup/internal/ai/internal/errs"
	"github.com/fnxlabs/levelup/internal/ai/internal/service"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/document"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

var errorCodes = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrEmptyInput, code: errs.EmptyInput},
	{err: service.ErrInputTooLong, code: errs.InputTooLong},
	{err: service.ErrMissingCredential, code: errs.MissingCredential},
	{err: service.ErrModelUnavailable, code: errs.ModelUnavailable},
	{err: service.ErrResponseFormat, code: errs.ResponseFormat},
	{err: service.ErrSchemaMismatch, code: errs.SchemaMismatch},
	{err: document.ErrFileTooLarge, code: errs.FileTooLarge},
	{err: document.ErrUnsupportedType, code: errs.UnsupportedType},
	{err: document.ErrEmptyDocument, code: errs.EmptyDocument},
	{err: document.ErrInvalidDocument, code: errs.InvalidDocument},
	{err: http.ErrMissingFile, code: errs.MissingFile},
}

// ErrorResult 把解析相关的错误转换成用户能看懂的提示，
// 第二个返回值为 false 说明是系统错误
func ErrorResult(err error) (ginx.Result, bool) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return ginx.Result{Code: c.code.Code, Msg: c.code.Msg}, true
		}
	}
	return systemErrorResult, false
}
