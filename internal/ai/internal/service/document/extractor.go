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

package document

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

const (
	MaxFileSize     = 10 << 20
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	// MinTextLength 扫描件之类的 PDF 提取不出文字
	MinTextLength = 30
)

var (
	ErrFileTooLarge     = errors.New("文件超过 10MB")
	ErrUnsupportedType  = errors.New("不支持的文件类型")
	ErrInvalidDocument  = errors.New("文件无法解析")
	ErrEmptyDocument    = errors.New("文件中没有可以识别的文字")
	errUnexpectedFormat = errors.New("pdf 格式错误")
)

type kind uint8

const (
	kindUnknown kind = iota
	kindPDF
	kindText
)

//go:generate mockgen -source=./extractor.go -destination=../../../mocks/extractor.mock.go -package=aimocks Extractor
type Extractor interface {
	// Extract 把上传的文件转换成 UTF-8 文本
	Extract(filename, contentType string, data []byte) (string, error)
}

type extractor struct {
}

func NewExtractor() Extractor {
	return &extractor{}
}

func (e *extractor) Extract(filename, contentType string, data []byte) (string, error) {
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}
	var text string
	switch detect(filename, contentType) {
	case kindPDF:
		var err error
		text, err = extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	case kindText:
		// docx 按照纯文本处理
		text = strings.ToValidUTF8(string(data), "")
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	text = strings.TrimSpace(text)
	if visibleLen(text) < MinTextLength {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func detect(filename, contentType string) kind {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case mediaType == "application/pdf" || ext == ".pdf":
		return kindPDF
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == docxContentType,
		ext == ".txt", ext == ".md", ext == ".docx":
		return kindText
	default:
		return kindUnknown
	}
}

func extractPDF(data []byte) (text string, err error) {
	// 解析损坏的 PDF 可能会 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errUnexpectedFormat, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(reader)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func visibleLen(s string) int {
	cnt := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			cnt++
		}
	}
	return cnt
}
