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

	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/repository"
	"github.com/fnxlabs/levelup/internal/skill"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound   = repository.ErrJobNotFound
	ErrInvalidStatus = errors.New("岗位状态不合法")
)

type JobDetail struct {
	Job    domain.Job
	Skills []skill.JobSkill
}

//go:generate mockgen -source=./job.go -package=jobmocks -destination=../../mocks/job.mock.go JobService
type JobService interface {
	Detail(ctx context.Context, id int64) (JobDetail, error)
	// List status 为空表示全部
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type jobService struct {
	repo     repository.JobRepository
	skillSvc skill.Service
}

func NewJobService(repo repository.JobRepository, skillSvc skill.Service) JobService {
	return &jobService{repo: repo, skillSvc: skillSvc}
}

func (s *jobService) Detail(ctx context.Context, id int64) (JobDetail, error) {
	var (
		eg     errgroup.Group
		job    domain.Job
		skills []skill.JobSkill
	)
	eg.Go(func() error {
		var err error
		job, err = s.repo.FindById(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		skills, err = s.skillSvc.JobSkills(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return JobDetail{}, err
	}
	return JobDetail{Job: job, Skills: skills}, nil
}

func (s *jobService) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.repo.List(ctx, status, offset, limit)
}

func (s *jobService) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
