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

package sngenerator

import (
	"strconv"
	"strings"
	"time"

	"github.com/fnxlabs/levelup/internal/pkg/slug"
)

const (
	maxPrefixLen  = 30
	defaultPrefix = "job"
)

type NowFunc func() time.Time

// CodeGenerator 生成岗位编号：标题 slug（最多 30 个字符）加上 36 进制的毫秒时间戳。
// 同一毫秒内生成的编号可能重复，由数据库唯一索引兜底。
type CodeGenerator struct {
	now NowFunc
}

func NewCodeGeneratorWith(now NowFunc) *CodeGenerator {
	return &CodeGenerator{now: now}
}

func NewCodeGenerator() *CodeGenerator {
	return NewCodeGeneratorWith(time.Now)
}

func (g *CodeGenerator) Generate(title string) string {
	prefix := slug.Make(title)
	if len(prefix) > maxPrefixLen {
		// 截断的位置可能正好是连字符
		prefix = strings.TrimRight(prefix[:maxPrefixLen], "-")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	return prefix + "-" + strconv.FormatInt(g.now().UnixMilli(), 36)
}
