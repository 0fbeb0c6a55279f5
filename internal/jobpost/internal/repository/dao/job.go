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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type JobDAO interface {
	Insert(ctx context.Context, j Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	// List status 为空的时候不过滤
	List(ctx context.Context, status string, offset, limit int) ([]Job, error)
	Count(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (dao *GORMJobDAO) Insert(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := dao.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (dao *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var res Job
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMJobDAO) List(ctx context.Context, status string, offset, limit int) ([]Job, error) {
	var res []Job
	err := dao.filter(ctx, status).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMJobDAO) Count(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := dao.filter(ctx, status).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMJobDAO) filter(ctx context.Context, status string) *gorm.DB {
	db := dao.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (dao *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type Job struct {
	Id             int64                     `gorm:"primaryKey,autoIncrement"`
	Code           string                    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Title          string                    `gorm:"type:varchar(512);not null"`
	Description    string                    `gorm:"type:text"`
	Department     string                    `gorm:"type:varchar(128)"`
	Status         string                    `gorm:"type:varchar(32);index"`
	Tags           sqlx.JsonColumn[[]string] `gorm:"type:json"`
	XpReward       int64
	CoinReward     int64
	InternalXp     int64
	ReferralCoins  int64
	RecruiterName  string                          `gorm:"type:varchar(128)"`
	RecruiterEmail string                          `gorm:"type:varchar(256)"`
	Metadata       sqlx.JsonColumn[map[string]any] `gorm:"type:json"`
	Ctime          int64                           `gorm:"index"`
	Utime          int64
}

func (Job) TableName() string {
	return "jobs"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Job{})
}
