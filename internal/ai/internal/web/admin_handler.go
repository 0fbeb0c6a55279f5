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
	"io"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fnxlabs/levelup/internal/ai/internal/service"
	"github.com/fnxlabs/levelup/internal/ai/internal/service/document"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 只做解析预览，不落库
type AdminHandler struct {
	svc       service.ExtractionService
	extractor document.Extractor
	logger    *elog.Component
}

func NewAdminHandler(svc service.ExtractionService, extractor document.Extractor) *AdminHandler {
	return &AdminHandler{
		svc:       svc,
		extractor: extractor,
		logger:    elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/ai")
	g.POST("/parse-job", ginx.BS[ParseReq](h.ParseJob))
	g.POST("/parse-resume", ginx.S(h.ParseResume))
}

func (h *AdminHandler) ParseJob(ctx *ginx.Context, req ParseReq, sess session.Session) (ginx.Result, error) {
	job, err := h.svc.ParseJob(ctx.Request.Context(), sess.Claims().Uid, req.Text)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: NewParsedJob(job)}, nil
}

// ParseResume 接收 multipart 表单里面的 file 字段
func (h *AdminHandler) ParseResume(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	filename, contentType, data, err := ReadUpload(ctx, "file")
	if err != nil {
		return h.errorResult(err)
	}
	text, err := h.extractor.Extract(filename, contentType, data)
	if err != nil {
		return h.errorResult(err)
	}
	resume, err := h.svc.ParseResume(ctx.Request.Context(), sess.Claims().Uid, text)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: NewParsedResume(resume)}, nil
}

func (h *AdminHandler) errorResult(err error) (ginx.Result, error) {
	res, ok := ErrorResult(err)
	if ok {
		h.logger.Warn("AI 解析失败", elog.FieldErr(err))
		return res, nil
	}
	return res, err
}

// ReadUpload 读取上传的文件，超过 10MB 的文件不会被完整读入内存
func ReadUpload(ctx *ginx.Context, field string) (string, string, []byte, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return "", "", nil, err
	}
	if fh.Size > document.MaxFileSize {
		return "", "", nil, document.ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, document.MaxFileSize+1))
	if err != nil {
		return "", "", nil, err
	}
	return fh.Filename, fh.Header.Get("Content-Type"), data, nil
}
