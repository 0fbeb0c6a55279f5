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

import "github.com/fnxlabs/levelup/internal/skill/internal/domain"

type UserSkill struct {
	SkillId  int64  `json:"skillId"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Source   string `json:"source"`
}

func newUserSkill(us domain.UserSkill) UserSkill {
	return UserSkill{
		SkillId:  us.SkillId,
		Slug:     us.Skill.Slug,
		Name:     us.Skill.Name,
		Category: us.Skill.Category,
		Level:    us.Level,
		Source:   us.Source,
	}
}
