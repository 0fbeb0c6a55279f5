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

package ai

import (
	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/service"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/document"
	"github.com/fnxlabs/levelup/internal/ai/internal/web"
)

type ParsedJob = domain.ParsedJob
type ParsedResume = domain.ParsedResume
type ParsedSkill = domain.ParsedSkill

type ExtractionService = service.ExtractionService
type Extractor = document.Extractor
type AdminHandler = web.AdminHandler

var (
	ErrEmptyInput        = service.ErrEmptyInput
	ErrInputTooLong      = service.ErrInputTooLong
	ErrMissingCredential = service.ErrMissingCredential
	ErrModelUnavailable  = service.ErrModelUnavailable
	ErrResponseFormat    = service.ErrResponseFormat
	ErrSchemaMismatch    = service.ErrSchemaMismatch

	ErrFileTooLarge    = document.ErrFileTooLarge
	ErrUnsupportedType = document.ErrUnsupportedType
	ErrEmptyDocument   = document.ErrEmptyDocument
)

// ErrorResult 其它模块的 web 层用来转换解析相关的错误
var ErrorResult = web.ErrorResult

// ReadUpload 读取 multipart 表单里面的文件
var ReadUpload = web.ReadUpload

const DefaultDepartment = domain.DefaultDepartment

// NormalizeLevel 把技能等级修正到 [1, 5]
var NormalizeLevel = domain.NormalizeLevel
