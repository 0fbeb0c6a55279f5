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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/skill/internal/domain"
	"github.com/fnxlabs/levelup/internal/skill/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("技能不存在")

//go:generate mockgen -source=./skill.go -package=repomocks -destination=mocks/skill.mock.go SkillRepository
type SkillRepository interface {
	FindByName(ctx context.Context, name string) (domain.Skill, error)
	FindBySlug(ctx context.Context, slug string) (domain.Skill, error)
	InsertIfAbsent(ctx context.Context, s domain.Skill) (bool, error)
	SaveJobSkill(ctx context.Context, js domain.JobSkill) error
	JobSkills(ctx context.Context, jobId int64) ([]domain.JobSkill, error)
	SaveUserSkill(ctx context.Context, us domain.UserSkill) error
	UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error)
}

type skillRepository struct {
	dao dao.SkillDAO
}

func NewSkillRepository(d dao.SkillDAO) SkillRepository {
	return &skillRepository{dao: d}
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (domain.Skill, error) {
	s, err := r.dao.FindByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Skill{}, ErrSkillNotFound
	}
	return r.toDomain(s), err
}

func (r *skillRepository) FindBySlug(ctx context.Context, slug string) (domain.Skill, error) {
	s, err := r.dao.FindBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Skill{}, ErrSkillNotFound
	}
	return r.toDomain(s), err
}

func (r *skillRepository) InsertIfAbsent(ctx context.Context, s domain.Skill) (bool, error) {
	return r.dao.InsertIgnore(ctx, r.toEntity(s))
}

func (r *skillRepository) SaveJobSkill(ctx context.Context, js domain.JobSkill) error {
	return r.dao.UpsertJobSkill(ctx, dao.JobSkill{
		JobId:         js.JobId,
		SkillId:       js.SkillId,
		RequiredLevel: js.RequiredLevel,
		Weight:        js.Weight,
		IsMandatory:   js.IsMandatory,
	})
}

func (r *skillRepository) JobSkills(ctx context.Context, jobId int64) ([]domain.JobSkill, error) {
	links, err := r.dao.JobSkills(ctx, jobId)
	if err != nil {
		return nil, err
	}
	skills, err := r.skillMap(ctx, slice.Map(links, func(idx int, src dao.JobSkill) int64 {
		return src.SkillId
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(links, func(idx int, src dao.JobSkill) domain.JobSkill {
		sk := skills[src.SkillId]
		return domain.JobSkill{
			JobId:         src.JobId,
			SkillId:       src.SkillId,
			RequiredLevel: src.RequiredLevel,
			Weight:        src.Weight,
			IsMandatory:   src.IsMandatory,
			Skill:         sk,
		}
	}), nil
}

func (r *skillRepository) SaveUserSkill(ctx context.Context, us domain.UserSkill) error {
	return r.dao.UpsertUserSkill(ctx, dao.UserSkill{
		UserId:  us.UserId,
		SkillId: us.SkillId,
		Level:   us.Level,
		Source:  us.Source,
	})
}

func (r *skillRepository) UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error) {
	links, err := r.dao.UserSkills(ctx, uid)
	if err != nil {
		return nil, err
	}
	skills, err := r.skillMap(ctx, slice.Map(links, func(idx int, src dao.UserSkill) int64 {
		return src.SkillId
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(links, func(idx int, src dao.UserSkill) domain.UserSkill {
		sk := skills[src.SkillId]
		return domain.UserSkill{
			UserId:  src.UserId,
			SkillId: src.SkillId,
			Level:   src.Level,
			Source:  src.Source,
			Skill:   sk,
		}
	}), nil
}

func (r *skillRepository) skillMap(ctx context.Context, ids []int64) (map[int64]domain.Skill, error) {
	if len(ids) == 0 {
		return map[int64]domain.Skill{}, nil
	}
	skills, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMapV(skills, func(element dao.Skill) (int64, domain.Skill) {
		return element.Id, r.toDomain(element)
	}), nil
}

func (r *skillRepository) toDomain(s dao.Skill) domain.Skill {
	return domain.Skill{
		Id:         s.Id,
		Slug:       s.Slug,
		Name:       s.Name,
		Category:   s.Category,
		Type:       s.Type,
		IsVerified: s.IsVerified,
		Source:     s.Source,
		Ctime:      s.Ctime,
		Utime:      s.Utime,
	}
}

func (r *skillRepository) toEntity(s domain.Skill) dao.Skill {
	return dao.Skill{
		Id:         s.Id,
		Slug:       s.Slug,
		Name:       s.Name,
		Category:   s.Category,
		Type:       s.Type,
		IsVerified: s.IsVerified,
		Source:     s.Source,
	}
}
