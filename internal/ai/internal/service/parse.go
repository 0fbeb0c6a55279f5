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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
)

// stripFences 去掉大模型偶尔会加上的 markdown 代码块
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func decodeObject(answer string) (map[string]any, error) {
	var val any
	err := json.Unmarshal([]byte(stripFences(answer)), &val)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResponseFormat, err)
	}
	obj, ok := val.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: 期望 JSON 对象，实际是 %T", ErrSchemaMismatch, val)
	}
	return obj, nil
}

func toParsedJob(obj map[string]any) (domain.ParsedJob, error) {
	title, ok := obj["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return domain.ParsedJob{}, fmt.Errorf("%w: title 必须是非空字符串", ErrSchemaMismatch)
	}
	skills, err := toSkills(obj["skills"])
	if err != nil {
		return domain.ParsedJob{}, err
	}
	return domain.ParsedJob{
		Title:      strings.TrimSpace(title),
		Department: department(obj),
		Summary:    optionalString(obj, "summary"),
		Skills:     skills,
	}, nil
}

func toParsedResume(obj map[string]any) (domain.ParsedResume, error) {
	for _, key := range []string{"full_name", "title"} {
		if val, ok := obj[key]; ok && val != nil {
			if _, ok = val.(string); !ok {
				return domain.ParsedResume{}, fmt.Errorf("%w: %s 必须是字符串", ErrSchemaMismatch, key)
			}
		}
	}
	skills, err := toSkills(obj["skills"])
	if err != nil {
		return domain.ParsedResume{}, err
	}
	return domain.ParsedResume{
		FullName:   optionalString(obj, "full_name"),
		Title:      optionalString(obj, "title"),
		Department: department(obj),
		Summary:    optionalString(obj, "summary"),
		Skills:     skills,
	}, nil
}

func toSkills(val any) ([]domain.ParsedSkill, error) {
	arr, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: skills 必须是数组", ErrSchemaMismatch)
	}
	res := make([]domain.ParsedSkill, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: skills[%d] 必须是对象", ErrSchemaMismatch, i)
		}
		name, ok := obj["name"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: skills[%d].name 必须是非空字符串", ErrSchemaMismatch, i)
		}
		level, ok := obj["level"].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: skills[%d].level 必须是数字", ErrSchemaMismatch, i)
		}
		res = append(res, domain.ParsedSkill{
			Name:        strings.TrimSpace(name),
			Level:       domain.NormalizeLevel(level),
			IsMandatory: optionalBool(obj, "is_mandatory"),
			IsNew:       optionalBool(obj, "is_new"),
			Category:    optionalString(obj, "category"),
		})
	}
	return res, nil
}

func department(obj map[string]any) string {
	if d := optionalString(obj, "department"); d != "" {
		return d
	}
	return domain.DefaultDepartment
}

func optionalString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

func optionalBool(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}
