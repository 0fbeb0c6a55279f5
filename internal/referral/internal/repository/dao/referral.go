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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound   = gorm.ErrRecordNotFound
	ErrStatusChanged    = errors.New("状态已经被修改")
	ErrDuplicatedPayout = errors.New("该内推已经生成过奖励")
	ErrDuplicatedEntry  = errors.New("重复的内推")
)

type ReferralDAO interface {
	Insert(ctx context.Context, r Referral) (int64, error)
	FindById(ctx context.Context, id int64) (Referral, error)
	List(ctx context.Context, referrerId int64, offset, limit int) ([]Referral, error)
	Count(ctx context.Context, referrerId int64) (int64, error)
	// AdminList status 为空的时候返回所有状态
	AdminList(ctx context.Context, status string, offset, limit int) ([]Referral, error)
	AdminCount(ctx context.Context, status string) (int64, error)
	// UpdateStatus 只有当前状态还是 from 的时候才更新
	UpdateStatus(ctx context.Context, id int64, from, to string, now int64) error
	// Hire 在同一个事务里面修改状态并且生成奖励，payout.Ctime 就是录用时间
	Hire(ctx context.Context, id int64, from string, payout ReferralPayout) (ReferralPayout, error)

	FindPayoutById(ctx context.Context, id int64) (ReferralPayout, error)
	FindPayoutByReferralId(ctx context.Context, referralId int64) (ReferralPayout, error)
	// MatureBefore 把到期时间早于 now 的奖励改为可发放
	MatureBefore(ctx context.Context, now int64, limit int) (int64, error)
	MarkPaid(ctx context.Context, id int64, now int64) error
}

type ReferralGORMDAO struct {
	db *egorm.Component
}

func NewReferralGORMDAO(db *egorm.Component) ReferralDAO {
	return &ReferralGORMDAO{db: db}
}

func (g *ReferralGORMDAO) Insert(ctx context.Context, r Referral) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	if isDuplicateKey(err) {
		return 0, ErrDuplicatedEntry
	}
	return r.Id, err
}

func (g *ReferralGORMDAO) FindById(ctx context.Context, id int64) (Referral, error) {
	var res Referral
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *ReferralGORMDAO) List(ctx context.Context, referrerId int64, offset, limit int) ([]Referral, error) {
	var res []Referral
	err := g.db.WithContext(ctx).
		Where("referrer_id = ?", referrerId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *ReferralGORMDAO) Count(ctx context.Context, referrerId int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Referral{}).
		Where("referrer_id = ?", referrerId).
		Count(&cnt).Error
	return cnt, err
}

func (g *ReferralGORMDAO) AdminList(ctx context.Context, status string, offset, limit int) ([]Referral, error) {
	var res []Referral
	err := g.statusScope(ctx, status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *ReferralGORMDAO) AdminCount(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := g.statusScope(ctx, status).Count(&cnt).Error
	return cnt, err
}

func (g *ReferralGORMDAO) statusScope(ctx context.Context, status string) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Referral{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (g *ReferralGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to string, now int64) error {
	return g.updateStatus(g.db.WithContext(ctx), id, from, to, now)
}

func (g *ReferralGORMDAO) updateStatus(db *gorm.DB, id int64, from, to string, now int64) error {
	res := db.Model(&Referral{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (g *ReferralGORMDAO) Hire(ctx context.Context, id int64, from string, payout ReferralPayout) (ReferralPayout, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if payout.Ctime == 0 {
			payout.Ctime = time.Now().UnixMilli()
		}
		payout.Utime = payout.Ctime
		if err := g.updateStatus(tx, id, from, "hired", payout.Ctime); err != nil {
			return err
		}
		err := tx.Create(&payout).Error
		if isDuplicateKey(err) {
			return ErrDuplicatedPayout
		}
		return err
	})
	return payout, err
}

func (g *ReferralGORMDAO) FindPayoutById(ctx context.Context, id int64) (ReferralPayout, error) {
	var res ReferralPayout
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *ReferralGORMDAO) FindPayoutByReferralId(ctx context.Context, referralId int64) (ReferralPayout, error) {
	var res ReferralPayout
	err := g.db.WithContext(ctx).Where("referral_id = ?", referralId).First(&res).Error
	return res, err
}

func (g *ReferralGORMDAO) MatureBefore(ctx context.Context, now int64, limit int) (int64, error) {
	res := g.db.WithContext(ctx).Model(&ReferralPayout{}).
		Where("status = ? AND maturity_date <= ?", "pending_maturity", now).
		Limit(limit).
		Updates(map[string]any{
			"status": "eligible",
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (g *ReferralGORMDAO) MarkPaid(ctx context.Context, id int64, now int64) error {
	res := g.db.WithContext(ctx).Model(&ReferralPayout{}).
		Where("id = ? AND status = ?", id, "eligible").
		Updates(map[string]any{
			"status":  "paid",
			"paid_at": now,
			"utime":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	const uniqueIndexErrNo uint16 = 1062
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

type Referral struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	ReferrerId     int64  `gorm:"not null;index:idx_referrer_id;comment:推荐人ID"`
	JobId          int64  `gorm:"not null;uniqueIndex:unq_job_candidate,priority:1;comment:职位ID"`
	CandidateName  string `gorm:"type:varchar(256);not null"`
	CandidateEmail string `gorm:"type:varchar(256);not null;uniqueIndex:unq_job_candidate,priority:2"`
	CandidatePhone string `gorm:"type:varchar(64)"`
	ResumeURL      string `gorm:"type:varchar(1024)"`
	Notes          string `gorm:"type:text"`
	Status         string `gorm:"type:varchar(32);not null;index:idx_status;comment:new/reviewing/interview/offer/hired/rejected"`
	BonusAmount    int64  `gorm:"not null;comment:录用之后奖励的金币"`
	Ctime          int64
	Utime          int64
}

func (Referral) TableName() string {
	return "referrals"
}

type ReferralPayout struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	ReferralId   int64  `gorm:"not null;uniqueIndex:unq_referral_id"`
	UserId       int64  `gorm:"not null;index:idx_user_id"`
	Amount       int64  `gorm:"not null"`
	Status       string `gorm:"type:varchar(32);not null;index:idx_status_maturity,priority:1;comment:pending_maturity/eligible/paid"`
	MaturityDate int64  `gorm:"not null;index:idx_status_maturity,priority:2"`
	IsEligible   bool   `gorm:"not null"`
	PaidAt       int64
	Ctime        int64
	Utime        int64
}

func (ReferralPayout) TableName() string {
	return "referral_payouts"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Referral{}, &ReferralPayout{})
}
