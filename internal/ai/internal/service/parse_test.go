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

package service

import (
	"math"
	"testing"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "没有代码块", input: ` {"a":1} `, want: `{"a":1}`},
		{name: "json 代码块", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "普通代码块", input: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripFences(tc.input))
		})
	}
}

func TestDecodeObject(t *testing.T) {
	_, err := decodeObject("not json")
	assert.ErrorIs(t, err, ErrResponseFormat)
	_, err = decodeObject(`["title"]`)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	_, err = decodeObject("null")
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	obj, err := decodeObject(`{"title":"Go"}`)
	require.NoError(t, err)
	assert.Equal(t, "Go", obj["title"])
}

func TestToParsedJob(t *testing.T) {
	testCases := []struct {
		name    string
		obj     map[string]any
		want    domain.ParsedJob
		wantErr error
	}{
		{
			name:    "缺少 title",
			obj:     map[string]any{"skills": []any{}},
			wantErr: ErrSchemaMismatch,
		},
		{
			name:    "title 为空",
			obj:     map[string]any{"title": "  ", "skills": []any{}},
			wantErr: ErrSchemaMismatch,
		},
		{
			name:    "skills 不是数组",
			obj:     map[string]any{"title": "Go", "skills": "React"},
			wantErr: ErrSchemaMismatch,
		},
		{
			name: "skill 缺少 name",
			obj: map[string]any{"title": "Go", "skills": []any{
				map[string]any{"name": "React", "level": float64(3)},
				map[string]any{"level": float64(3)},
			}},
			wantErr: ErrSchemaMismatch,
		},
		{
			name: "level 不是数字",
			obj: map[string]any{"title": "Go", "skills": []any{
				map[string]any{"name": "React", "level": "3"},
			}},
			wantErr: ErrSchemaMismatch,
		},
		{
			name: "默认值",
			obj: map[string]any{"title": "Go Developer", "summary": "Backend", "skills": []any{
				map[string]any{"name": "Go", "level": float64(3), "is_new": true, "category": "technical"},
			}},
			want: domain.ParsedJob{
				Title:      "Go Developer",
				Department: "General",
				Summary:    "Backend",
				Skills: []domain.ParsedSkill{
					{Name: "Go", Level: 3, IsNew: true, Category: "technical"},
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			job, err := toParsedJob(tc.obj)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Equal(t, domain.ParsedJob{}, job)
				return
			}
			assert.Equal(t, tc.want, job)
		})
	}
}

func TestToParsedResume(t *testing.T) {
	_, err := toParsedResume(map[string]any{"full_name": 12, "skills": []any{}})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	_, err = toParsedResume(map[string]any{"full_name": "Jane"})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	resume, err := toParsedResume(map[string]any{"skills": []any{}})
	require.NoError(t, err)
	assert.Equal(t, "General", resume.Department)
	assert.Empty(t, resume.Skills)
}

func TestNormalizeLevel(t *testing.T) {
	for _, x := range []float64{-10, -0.5, 0, 0.49, 1, 1.5, 2.5, 3.49, 4.5, 5, 5.4, 99, math.Inf(1), math.Inf(-1)} {
		level := domain.NormalizeLevel(x)
		assert.GreaterOrEqual(t, level, 1)
		assert.LessOrEqual(t, level, 5)
		want := math.Min(math.Max(math.Round(x), 1), 5)
		assert.Equal(t, int(want), level, "x=%v", x)
	}
	assert.Equal(t, 1, domain.NormalizeLevel(math.NaN()))
}
