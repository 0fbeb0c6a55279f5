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
	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
)

type ParseReq struct {
	Text string `json:"text"`
}

type ParsedSkill struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	IsMandatory bool   `json:"isMandatory"`
	IsNew       bool   `json:"isNew"`
	Category    string `json:"category,omitempty"`
}

type ParsedJob struct {
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Summary    string        `json:"summary"`
	Skills     []ParsedSkill `json:"skills"`
}

type ParsedResume struct {
	FullName   string        `json:"fullName"`
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Summary    string        `json:"summary"`
	Skills     []ParsedSkill `json:"skills"`
}

func newParsedSkills(skills []domain.ParsedSkill) []ParsedSkill {
	return slice.Map(skills, func(idx int, src domain.ParsedSkill) ParsedSkill {
		return ParsedSkill{
			Name:        src.Name,
			Level:       src.Level,
			IsMandatory: src.IsMandatory,
			IsNew:       src.IsNew,
			Category:    src.Category,
		}
	})
}

func NewParsedJob(job domain.ParsedJob) ParsedJob {
	return ParsedJob{
		Title:      job.Title,
		Department: job.Department,
		Summary:    job.Summary,
		Skills:     newParsedSkills(job.Skills),
	}
}

func NewParsedResume(r domain.ParsedResume) ParsedResume {
	return ParsedResume{
		FullName:   r.FullName,
		Title:      r.Title,
		Department: r.Department,
		Summary:    r.Summary,
		Skills:     newParsedSkills(r.Skills),
	}
}
