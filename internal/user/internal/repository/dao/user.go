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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	// UpdateNonZeroFields 只更新资料字段，余额相关的字段由积分账本维护
	UpdateNonZeroFields(ctx context.Context, u User) error
	// FillEmptyFields 只填充还没有值的职位和部门
	FillEmptyFields(ctx context.Context, id int64, jobTitle, department string) error
	SetOnboarded(ctx context.Context, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.Id).
		Updates(ud.profileFields(u)).Error
}

func (ud *GORMUserDAO) profileFields(u User) map[string]any {
	fields := map[string]any{"utime": time.Now().UnixMilli()}
	if u.DisplayName != "" {
		fields["display_name"] = u.DisplayName
	}
	if u.Department != "" {
		fields["department"] = u.Department
	}
	if u.JobTitle != "" {
		fields["job_title"] = u.JobTitle
	}
	return fields
}

func (ud *GORMUserDAO) FillEmptyFields(ctx context.Context, id int64, jobTitle, department string) error {
	now := time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if jobTitle != "" {
			err := tx.Model(&User{}).
				Where("id = ? AND (job_title IS NULL OR job_title = '')", id).
				Updates(map[string]any{"job_title": jobTitle, "utime": now}).Error
			if err != nil {
				return err
			}
		}
		if department != "" {
			return tx.Model(&User{}).
				Where("id = ? AND (department IS NULL OR department = '')", id).
				Updates(map[string]any{"department": department, "utime": now}).Error
		}
		return nil
	})
}

func (ud *GORMUserDAO) SetOnboarded(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"onboarded": true,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

// User 余额相关的字段（current_xp、coins_balance、current_level、version）
// 只能由积分账本在事务里面修改
type User struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	DisplayName  string `gorm:"type:varchar(256)"`
	Email        string `gorm:"type:varchar(256);uniqueIndex"`
	Department   string `gorm:"type:varchar(128)"`
	JobTitle     string `gorm:"type:varchar(256)"`
	CurrentXp    int64  `gorm:"not null;default:0"`
	CoinsBalance int64  `gorm:"not null;default:0"`
	CurrentLevel int64  `gorm:"not null;default:1"`
	IsActive     bool   `gorm:"not null;default:true"`
	Onboarded    bool   `gorm:"not null;default:false"`
	Version      int64  `gorm:"not null;default:0"`
	// 创建时间
	Ctime int64 `gorm:"index"`
	// 更新时间
	Utime int64
}

func (User) TableName() string {
	return "users"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}
