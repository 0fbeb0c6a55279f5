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
	"context"
	"errors"
	"fmt"

	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/repository"
	"github.com/fnxlabs/levelup/internal/pkg/sngenerator"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCreateJob = errors.New("创建岗位失败")

// Orchestrator 把解析出来的岗位落成 Job、Skill 和 JobSkill
//
//go:generate mockgen -source=./orchestrator.go -package=jobmocks -destination=../../mocks/orchestrator.mock.go Orchestrator
type Orchestrator interface {
	GenerateCode(title string) string
	// CreateFromParsed 岗位插入失败直接返回错误，不会处理技能；
	// 单个技能失败只记录到 Errors 里面，继续处理剩下的技能
	CreateFromParsed(ctx context.Context, parsed ai.ParsedJob, opts domain.CreateOptions) (domain.ImportResult, error)
	CreateFromText(ctx context.Context, uid int64, text string, opts domain.CreateOptions) (domain.ImportResult, error)
	// LinkSkills 对同一个岗位重复执行是幂等的
	LinkSkills(ctx context.Context, jobId int64, skills []ai.ParsedSkill) (domain.ImportResult, error)
}

type orchestrator struct {
	repo      repository.JobRepository
	skillSvc  skill.Service
	parser    ai.ExtractionService
	generator *sngenerator.CodeGenerator
	logger    *elog.Component
}

func NewOrchestrator(repo repository.JobRepository,
	skillSvc skill.Service,
	parser ai.ExtractionService,
	generator *sngenerator.CodeGenerator) Orchestrator {
	return &orchestrator{
		repo:      repo,
		skillSvc:  skillSvc,
		parser:    parser,
		generator: generator,
		logger:    elog.DefaultLogger,
	}
}

func (o *orchestrator) GenerateCode(title string) string {
	return o.generator.Generate(title)
}

func (o *orchestrator) CreateFromText(ctx context.Context, uid int64, text string, opts domain.CreateOptions) (domain.ImportResult, error) {
	parsed, err := o.parser.ParseJob(ctx, uid, text)
	if err != nil {
		return domain.ImportResult{}, err
	}
	return o.CreateFromParsed(ctx, parsed, opts)
}

func (o *orchestrator) CreateFromParsed(ctx context.Context, parsed ai.ParsedJob, opts domain.CreateOptions) (domain.ImportResult, error) {
	job := o.newJob(parsed, opts)
	id, err := o.repo.Create(ctx, job)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %w", ErrCreateJob, err)
	}
	res := o.linkSkills(ctx, id, parsed.Skills)
	res.Code = job.Code
	return res, nil
}

func (o *orchestrator) LinkSkills(ctx context.Context, jobId int64, skills []ai.ParsedSkill) (domain.ImportResult, error) {
	// 确认岗位存在
	if _, err := o.repo.FindById(ctx, jobId); err != nil {
		return domain.ImportResult{}, err
	}
	return o.linkSkills(ctx, jobId, skills), nil
}

func (o *orchestrator) linkSkills(ctx context.Context, jobId int64, skills []ai.ParsedSkill) domain.ImportResult {
	res := domain.ImportResult{JobID: jobId, Errors: []string{}}
	for _, ps := range skills {
		sk, created, err := o.skillSvc.FindOrCreate(ctx, skill.NewSkill{
			Name:     ps.Name,
			Category: ps.Category,
			Source:   skill.SourceJobParse,
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("技能 %s: %s", ps.Name, err.Error()))
			o.logger.Warn("查找或者创建技能失败",
				elog.Int64("jobId", jobId),
				elog.String("skill", ps.Name),
				elog.FieldErr(err))
			continue
		}
		if created {
			res.SkillsCreated++
		}
		err = o.skillSvc.LinkJob(ctx, skill.JobSkill{
			JobId:         jobId,
			SkillId:       sk.Id,
			RequiredLevel: ai.NormalizeLevel(float64(ps.Level)),
			IsMandatory:   ps.IsMandatory,
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("技能 %s: %s", ps.Name, err.Error()))
			o.logger.Warn("关联岗位技能失败",
				elog.Int64("jobId", jobId),
				elog.Int64("skillId", sk.Id),
				elog.FieldErr(err))
			continue
		}
		res.SkillsLinked++
	}
	return res
}

func (o *orchestrator) newJob(parsed ai.ParsedJob, opts domain.CreateOptions) domain.Job {
	status := opts.Status
	if status == "" {
		status = domain.StatusDraft
	}
	description := opts.Description
	if description == "" {
		description = parsed.Summary
	}
	tags := opts.Tags
	if len(tags) == 0 {
		for _, ps := range parsed.Skills {
			if ps.IsMandatory {
				tags = append(tags, ps.Name)
			}
		}
	}
	return domain.Job{
		Code:           o.GenerateCode(parsed.Title),
		Title:          parsed.Title,
		Description:    description,
		Department:     parsed.Department,
		Status:         status,
		Tags:           tags,
		XpReward:       opts.XpReward,
		CoinReward:     opts.CoinReward,
		InternalXp:     opts.InternalXp,
		ReferralCoins:  opts.ReferralCoins,
		RecruiterName:  opts.RecruiterName,
		RecruiterEmail: opts.RecruiterEmail,
		Metadata: map[string]any{
			"source":      skill.SourceJobParse,
			"skill_count": len(parsed.Skills),
		},
	}
}
