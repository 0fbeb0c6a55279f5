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

package skill

import (
	"github.com/fnxlabs/levelup/internal/skill/internal/domain"
	"github.com/fnxlabs/levelup/internal/skill/internal/service"
	"github.com/fnxlabs/levelup/internal/skill/internal/web"
)

type Service = service.SkillService
type Handler = web.Handler

type Skill = domain.Skill
type NewSkill = domain.NewSkill
type JobSkill = domain.JobSkill
type UserSkill = domain.UserSkill

const (
	SourceAdmin       = domain.SourceAdmin
	SourceJobParse    = domain.SourceJobParse
	SourceResumeParse = domain.SourceResumeParse
)

var ErrInvalidSkillName = service.ErrInvalidSkillName
