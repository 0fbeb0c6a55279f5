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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("岗位不存在")

//go:generate mockgen -source=./job.go -package=repomocks -destination=mocks/job.mock.go JobRepository
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(job))
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(j), nil
}

func (r *jobRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error) {
	jobs, err := r.dao.List(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.Count(ctx, status.String())
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), total, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrJobNotFound
	}
	return err
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:          j.Id,
		Code:        j.Code,
		Title:       j.Title,
		Description: j.Description,
		Department:  j.Department,
		Status:      j.Status.String(),
		Tags: sqlx.JsonColumn[[]string]{
			Val:   j.Tags,
			Valid: len(j.Tags) > 0,
		},
		XpReward:       j.XpReward,
		CoinReward:     j.CoinReward,
		InternalXp:     j.InternalXp,
		ReferralCoins:  j.ReferralCoins,
		RecruiterName:  j.RecruiterName,
		RecruiterEmail: j.RecruiterEmail,
		Metadata: sqlx.JsonColumn[map[string]any]{
			Val:   j.Metadata,
			Valid: len(j.Metadata) > 0,
		},
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:             j.Id,
		Code:           j.Code,
		Title:          j.Title,
		Description:    j.Description,
		Department:     j.Department,
		Status:         domain.Status(j.Status),
		Tags:           j.Tags.Val,
		XpReward:       j.XpReward,
		CoinReward:     j.CoinReward,
		InternalXp:     j.InternalXp,
		ReferralCoins:  j.ReferralCoins,
		RecruiterName:  j.RecruiterName,
		RecruiterEmail: j.RecruiterEmail,
		Metadata:       j.Metadata.Val,
		Ctime:          j.Ctime,
		Utime:          j.Utime,
	}
}
