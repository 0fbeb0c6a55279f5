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
	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	"github.com/fnxlabs/levelup/internal/skill"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListReq struct {
	Page
	Status string `json:"status"`
}

type StatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type ParsedSkill struct {
	Name        string  `json:"name"`
	Level       float64 `json:"level"`
	IsMandatory bool    `json:"isMandatory"`
	Category    string  `json:"category"`
}

func (s ParsedSkill) toAI() ai.ParsedSkill {
	return ai.ParsedSkill{
		Name:        s.Name,
		Level:       ai.NormalizeLevel(s.Level),
		IsMandatory: s.IsMandatory,
		Category:    s.Category,
	}
}

func toAISkills(skills []ParsedSkill) []ai.ParsedSkill {
	return slice.Map(skills, func(idx int, src ParsedSkill) ai.ParsedSkill {
		return src.toAI()
	})
}

type ParsedJob struct {
	Title      string        `json:"title"`
	Department string        `json:"department"`
	Summary    string        `json:"summary"`
	Skills     []ParsedSkill `json:"skills"`
}

type CreateOptions struct {
	Status         string   `json:"status"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	XpReward       int64    `json:"xpReward"`
	CoinReward     int64    `json:"coinReward"`
	InternalXp     int64    `json:"internalXp"`
	ReferralCoins  int64    `json:"referralCoins"`
	RecruiterName  string   `json:"recruiterName"`
	RecruiterEmail string   `json:"recruiterEmail"`
}

func (o CreateOptions) toDomain() domain.CreateOptions {
	return domain.CreateOptions{
		Status:         domain.Status(o.Status),
		Description:    o.Description,
		Tags:           o.Tags,
		XpReward:       o.XpReward,
		CoinReward:     o.CoinReward,
		InternalXp:     o.InternalXp,
		ReferralCoins:  o.ReferralCoins,
		RecruiterName:  o.RecruiterName,
		RecruiterEmail: o.RecruiterEmail,
	}
}

// CreateFromParsedReq 管理员确认过解析预览之后提交
type CreateFromParsedReq struct {
	Job     ParsedJob     `json:"job"`
	Options CreateOptions `json:"options"`
}

type CreateFromTextReq struct {
	Text    string        `json:"text"`
	Options CreateOptions `json:"options"`
}

type LinkSkillsReq struct {
	JobId  int64         `json:"jobId"`
	Skills []ParsedSkill `json:"skills"`
}

type ImportResult struct {
	JobId         int64    `json:"jobId"`
	Code          string   `json:"code"`
	SkillsCreated int      `json:"skillsCreated"`
	SkillsLinked  int      `json:"skillsLinked"`
	Errors        []string `json:"errors"`
}

func newImportResult(r domain.ImportResult) ImportResult {
	return ImportResult{
		JobId:         r.JobID,
		Code:          r.Code,
		SkillsCreated: r.SkillsCreated,
		SkillsLinked:  r.SkillsLinked,
		Errors:        r.Errors,
	}
}

type Job struct {
	Id             int64          `json:"id"`
	Code           string         `json:"code"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Department     string         `json:"department"`
	Status         string         `json:"status"`
	Tags           []string       `json:"tags"`
	XpReward       int64          `json:"xpReward"`
	CoinReward     int64          `json:"coinReward"`
	InternalXp     int64          `json:"internalXp"`
	ReferralCoins  int64          `json:"referralCoins"`
	RecruiterName  string         `json:"recruiterName"`
	RecruiterEmail string         `json:"recruiterEmail"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Ctime          int64          `json:"ctime"`
	Utime          int64          `json:"utime"`
	Skills         []JobSkill     `json:"skills,omitempty"`
}

type JobSkill struct {
	SkillId       int64   `json:"skillId"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	RequiredLevel int     `json:"requiredLevel"`
	Weight        float64 `json:"weight"`
	IsMandatory   bool    `json:"isMandatory"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:             j.Id,
		Code:           j.Code,
		Title:          j.Title,
		Description:    j.Description,
		Department:     j.Department,
		Status:         j.Status.String(),
		Tags:           j.Tags,
		XpReward:       j.XpReward,
		CoinReward:     j.CoinReward,
		InternalXp:     j.InternalXp,
		ReferralCoins:  j.ReferralCoins,
		RecruiterName:  j.RecruiterName,
		RecruiterEmail: j.RecruiterEmail,
		Metadata:       j.Metadata,
		Ctime:          j.Ctime,
		Utime:          j.Utime,
	}
}

func newJobDetail(d service.JobDetail) Job {
	res := newJob(d.Job)
	res.Skills = slice.Map(d.Skills, func(idx int, src skill.JobSkill) JobSkill {
		return JobSkill{
			SkillId:       src.SkillId,
			Name:          src.Skill.Name,
			Slug:          src.Skill.Slug,
			RequiredLevel: src.RequiredLevel,
			Weight:        src.Weight,
			IsMandatory:   src.IsMandatory,
		}
	})
	return res
}

type JobList struct {
	List  []Job `json:"list"`
	Total int64 `json:"total"`
}

func newJobList(jobs []domain.Job, total int64) JobList {
	return JobList{
		List: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
		Total: total,
	}
}
