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
	"github.com/fnxlabs/levelup/internal/user/internal/domain"
	"github.com/fnxlabs/levelup/internal/user/internal/repository/cache"
	"github.com/fnxlabs/levelup/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUserNotFound = errors.New("用户不存在")

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FillEmptyFields(ctx context.Context, id int64, jobTitle, department string) error
	SetOnboarded(ctx context.Context, id int64) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	ur.evict(ctx, u.Id)
	return nil
}

func (ur *CachedUserRepository) FillEmptyFields(ctx context.Context, id int64, jobTitle, department string) error {
	err := ur.dao.FillEmptyFields(ctx, id, jobTitle, department)
	if err != nil {
		return err
	}
	ur.evict(ctx, id)
	return nil
}

func (ur *CachedUserRepository) SetOnboarded(ctx context.Context, id int64) error {
	err := ur.dao.SetOnboarded(ctx, id)
	if err != nil {
		return err
	}
	ur.evict(ctx, id)
	return nil
}

// evict 数据库已经更新成功，删除缓存失败只记录日志，等缓存过期
func (ur *CachedUserRepository) evict(ctx context.Context, id int64) {
	if err := ur.cache.Delete(ctx, id); err != nil {
		ur.logger.Warn("删除用户缓存失败", elog.Int64("uid", id), elog.FieldErr(err))
	}
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:          u.Id,
		DisplayName: u.DisplayName,
		Department:  u.Department,
		JobTitle:    u.JobTitle,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:           ue.Id,
		DisplayName:  ue.DisplayName,
		Email:        ue.Email,
		Department:   ue.Department,
		JobTitle:     ue.JobTitle,
		CurrentXp:    ue.CurrentXp,
		CoinsBalance: ue.CoinsBalance,
		CurrentLevel: ue.CurrentLevel,
		IsActive:     ue.IsActive,
		Onboarded:    ue.Onboarded,
		Ctime:        ue.Ctime,
		Utime:        ue.Utime,
	}
}
