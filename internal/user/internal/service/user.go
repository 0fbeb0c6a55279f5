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
	"strings"

	"github.com/fnxlabs/levelup/internal/user/internal/domain"
	"github.com/fnxlabs/levelup/internal/user/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, uid int64) (domain.User, error)
	BatchProfile(ctx context.Context, uids []int64) (map[int64]domain.User, error)
	// UpdateProfile 只会更新非零值
	UpdateProfile(ctx context.Context, u domain.User) error
	// FillProfile 只填充还没有值的职位和部门，不会覆盖用户自己填的
	FillProfile(ctx context.Context, uid int64, jobTitle, department string) error
	MarkOnboarded(ctx context.Context, uid int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Profile(ctx context.Context, uid int64) (domain.User, error) {
	return s.repo.FindById(ctx, uid)
}

func (s *userService) BatchProfile(ctx context.Context, uids []int64) (map[int64]domain.User, error) {
	res := make(map[int64]domain.User, len(uids))
	if len(uids) == 0 {
		return res, nil
	}
	users, err := s.repo.FindByIds(ctx, uids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		res[u.Id] = u
	}
	return res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, u domain.User) error {
	u.DisplayName = strings.TrimSpace(u.DisplayName)
	u.Department = strings.TrimSpace(u.Department)
	u.JobTitle = strings.TrimSpace(u.JobTitle)
	return s.repo.Update(ctx, u)
}

func (s *userService) FillProfile(ctx context.Context, uid int64, jobTitle, department string) error {
	jobTitle = strings.TrimSpace(jobTitle)
	department = strings.TrimSpace(department)
	if jobTitle == "" && department == "" {
		return nil
	}
	return s.repo.FillEmptyFields(ctx, uid, jobTitle, department)
}

func (s *userService) MarkOnboarded(ctx context.Context, uid int64) error {
	return s.repo.SetOnboarded(ctx, uid)
}
