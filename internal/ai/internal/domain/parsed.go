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

package domain

import (
	"math"
)

const (
	MinSkillLevel     = 1
	MaxSkillLevel     = 5
	DefaultDepartment = "General"
)

type ParsedSkill struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	IsMandatory bool   `json:"is_mandatory"`
	// IsNew 表示岗位希望候选人具备但团队里还没有的技能
	IsNew    bool   `json:"is_new"`
	Category string `json:"category,omitempty"`
}

// ParsedJob 是从岗位描述里面解析出来的结构，不直接落库
type ParsedJob struct {
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Summary    string        `json:"summary"`
	Skills     []ParsedSkill `json:"skills"`
}

// ParsedResume 是从简历里面解析出来的结构，不直接落库
type ParsedResume struct {
	FullName   string        `json:"full_name"`
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Summary    string        `json:"summary"`
	Skills     []ParsedSkill `json:"skills"`
}

// NormalizeLevel 先四舍五入再截断到 [1, 5]，不会因为超出范围报错
func NormalizeLevel(x float64) int {
	if math.IsNaN(x) {
		return MinSkillLevel
	}
	level := math.Round(x)
	if level < MinSkillLevel {
		return MinSkillLevel
	}
	if level > MaxSkillLevel {
		return MaxSkillLevel
	}
	return int(level)
}
