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
	"gorm.io/gorm/clause"
)

type SkillDAO interface {
	FindByName(ctx context.Context, name string) (Skill, error)
	FindBySlug(ctx context.Context, slug string) (Skill, error)
	FindByIds(ctx context.Context, ids []int64) ([]Skill, error)
	// InsertIgnore slug 冲突的时候什么也不做，返回值表示是否真的插入了
	InsertIgnore(ctx context.Context, s Skill) (bool, error)
	UpsertJobSkill(ctx context.Context, js JobSkill) error
	JobSkills(ctx context.Context, jobId int64) ([]JobSkill, error)
	UpsertUserSkill(ctx context.Context, us UserSkill) error
	UserSkills(ctx context.Context, uid int64) ([]UserSkill, error)
}

type GORMSkillDAO struct {
	db *egorm.Component
}

func NewGORMSkillDAO(db *egorm.Component) SkillDAO {
	return &GORMSkillDAO{db: db}
}

func (dao *GORMSkillDAO) FindByName(ctx context.Context, name string) (Skill, error) {
	var res Skill
	err := dao.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id").
		First(&res).Error
	return res, err
}

func (dao *GORMSkillDAO) FindBySlug(ctx context.Context, slug string) (Skill, error) {
	var res Skill
	err := dao.db.WithContext(ctx).Where("slug = ?", slug).First(&res).Error
	return res, err
}

func (dao *GORMSkillDAO) FindByIds(ctx context.Context, ids []int64) ([]Skill, error) {
	var res []Skill
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMSkillDAO) InsertIgnore(ctx context.Context, s Skill) (bool, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	res := dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&s)
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMSkillDAO) UpsertJobSkill(ctx context.Context, js JobSkill) error {
	now := time.Now().UnixMilli()
	js.Ctime = now
	js.Utime = now
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"required_level", "weight", "is_mandatory", "utime"}),
	}).Create(&js).Error
}

func (dao *GORMSkillDAO) JobSkills(ctx context.Context, jobId int64) ([]JobSkill, error) {
	var res []JobSkill
	err := dao.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("is_mandatory DESC, required_level DESC, id").
		Find(&res).Error
	return res, err
}

func (dao *GORMSkillDAO) UpsertUserSkill(ctx context.Context, us UserSkill) error {
	now := time.Now().UnixMilli()
	us.Ctime = now
	us.Utime = now
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "source", "utime"}),
	}).Create(&us).Error
}

func (dao *GORMSkillDAO) UserSkills(ctx context.Context, uid int64) ([]UserSkill, error) {
	var res []UserSkill
	err := dao.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("level DESC, id").
		Find(&res).Error
	return res, err
}

type Skill struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Slug       string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Name       string `gorm:"type:varchar(256);index;not null"`
	Category   string `gorm:"type:varchar(64)"`
	Type       string `gorm:"type:varchar(64)"`
	IsVerified bool
	Source     string `gorm:"type:varchar(64)"`
	Ctime      int64
	Utime      int64
}

func (Skill) TableName() string {
	return "skills"
}

type JobSkill struct {
	Id            int64 `gorm:"primaryKey,autoIncrement"`
	JobId         int64 `gorm:"uniqueIndex:job_skill"`
	SkillId       int64 `gorm:"uniqueIndex:job_skill"`
	RequiredLevel int
	Weight        float64
	IsMandatory   bool
	Ctime         int64
	Utime         int64
}

func (JobSkill) TableName() string {
	return "job_skills"
}

type UserSkill struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	UserId  int64 `gorm:"uniqueIndex:user_skill"`
	SkillId int64 `gorm:"uniqueIndex:user_skill"`
	Level   int
	Source  string `gorm:"type:varchar(64)"`
	Ctime   int64
	Utime   int64
}

func (UserSkill) TableName() string {
	return "user_skills"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Skill{}, &JobSkill{}, &UserSkill{})
}
