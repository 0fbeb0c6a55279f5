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
	"strings"

	"github.com/fnxlabs/levelup/internal/pkg/slug"
	"github.com/fnxlabs/levelup/internal/skill/internal/domain"
	"github.com/fnxlabs/levelup/internal/skill/internal/repository"
)

var (
	ErrInvalidSkillName = errors.New("技能名称不合法")
	ErrInvalidLevel     = errors.New("技能等级必须在 1 到 5 之间")
)

//go:generate mockgen -source=./skill.go -package=skillmocks -destination=../../mocks/skill.mock.go SkillService
type SkillService interface {
	// FindOrCreate 先按照名字（忽略大小写）查找，找不到就按照 slug 插入。
	// 并发插入同一个 slug 的时候以唯一索引为准，返回值 created 只有真正插入的那一方是 true
	FindOrCreate(ctx context.Context, ns domain.NewSkill) (domain.Skill, bool, error)
	// LinkJob 重复调用是幂等的
	LinkJob(ctx context.Context, js domain.JobSkill) error
	JobSkills(ctx context.Context, jobId int64) ([]domain.JobSkill, error)
	LinkUser(ctx context.Context, us domain.UserSkill) error
	UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error)
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) FindOrCreate(ctx context.Context, ns domain.NewSkill) (domain.Skill, bool, error) {
	name := strings.TrimSpace(ns.Name)
	sg := slug.Make(name)
	if sg == "" {
		return domain.Skill{}, false, fmt.Errorf("%w: %q", ErrInvalidSkillName, ns.Name)
	}
	sk, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return sk, false, nil
	}
	if !errors.Is(err, repository.ErrSkillNotFound) {
		return domain.Skill{}, false, err
	}
	source := ns.Source
	if source == "" {
		source = domain.DefaultSkillSource
	}
	created, err := s.repo.InsertIfAbsent(ctx, domain.Skill{
		Slug:     sg,
		Name:     name,
		Category: ns.Category,
		Type:     ns.Type(),
		Source:   source,
	})
	if err != nil {
		return domain.Skill{}, false, err
	}
	sk, err = s.repo.FindBySlug(ctx, sg)
	if err != nil {
		return domain.Skill{}, false, err
	}
	return sk, created, nil
}

func (s *skillService) LinkJob(ctx context.Context, js domain.JobSkill) error {
	if js.RequiredLevel < 1 || js.RequiredLevel > 5 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, js.RequiredLevel)
	}
	if js.Weight <= 0 {
		js.Weight = domain.DefaultWeight
		if js.IsMandatory {
			js.Weight = domain.MandatoryWeight
		}
	}
	return s.repo.SaveJobSkill(ctx, js)
}

func (s *skillService) JobSkills(ctx context.Context, jobId int64) ([]domain.JobSkill, error) {
	return s.repo.JobSkills(ctx, jobId)
}

func (s *skillService) LinkUser(ctx context.Context, us domain.UserSkill) error {
	if us.Level < 1 || us.Level > 5 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, us.Level)
	}
	if us.Source == "" {
		us.Source = domain.DefaultSkillSource
	}
	return s.repo.SaveUserSkill(ctx, us)
}

func (s *skillService) UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error) {
	return s.repo.UserSkills(ctx, uid)
}
