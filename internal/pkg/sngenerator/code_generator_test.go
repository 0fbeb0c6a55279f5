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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_Generate(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	g := NewCodeGeneratorWith(func() time.Time { return now })

	testCases := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "普通标题",
			title: "Senior Frontend Engineer",
			want:  "senior-frontend-engineer-" + suffix,
		},
		{
			name:  "超过 30 个字符被截断",
			title: "Principal Distributed Systems Reliability Engineer",
			want:  "principal-distributed-systems-" + suffix,
		},
		{
			name:  "截断之后末尾是连字符",
			title: "Senior Backend Engineer Golan X",
			want:  "senior-backend-engineer-golan-" + suffix,
		},
		{
			name:  "标题全是特殊字符",
			title: "!!!",
			want:  "job-" + suffix,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Generate(tc.title))
		})
	}
}

func TestCodeGenerator_DifferentTime(t *testing.T) {
	ts := int64(1700000000000)
	g := NewCodeGeneratorWith(func() time.Time {
		ts++
		return time.UnixMilli(ts)
	})
	first, second := g.Generate("Go Developer"), g.Generate("Go Developer")
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "go-developer-"))
	assert.True(t, strings.HasPrefix(second, "go-developer-"))
}
