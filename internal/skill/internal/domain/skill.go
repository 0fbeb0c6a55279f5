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

const (
	SourceAdmin        = "admin"
	SourceJobParse     = "ai_job_parse"
	SourceResumeParse  = "ai_resume_parse"
	CategorySoft       = "soft"
	TypeHard           = "hard"
	TypeSoft           = "soft"
	DefaultWeight      = 0.5
	MandatoryWeight    = 1.0
	DefaultSkillLevel  = 3
	DefaultSkillSource = SourceAdmin
)

// Skill 以 slug 去重，"C#" 和 "C #" 会被当成同一个技能
type Skill struct {
	Id         int64
	Slug       string
	Name       string
	Category   string
	Type       string
	IsVerified bool
	Source     string
	Ctime      int64
	Utime      int64
}

type JobSkill struct {
	JobId         int64
	SkillId       int64
	RequiredLevel int
	Weight        float64
	IsMandatory   bool
	// Skill 只在查询的时候填充
	Skill Skill
}

type UserSkill struct {
	UserId  int64
	SkillId int64
	Level   int
	Source  string
	Skill   Skill
}

// NewSkill 描述一个需要查找或者创建的技能
type NewSkill struct {
	Name     string
	Category string
	Source   string
}

func (s NewSkill) Type() string {
	if s.Category == CategorySoft {
		return TypeSoft
	}
	return TypeHard
}
