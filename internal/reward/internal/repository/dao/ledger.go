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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
	ErrDuplicatedTransaction     = errors.New("重复的积分流水")
	ErrUserNotFound              = gorm.ErrRecordNotFound
)

// NextFunc 根据当前余额计算新的余额
type NextFunc func(b UserBalance) UserBalance

//go:generate mockgen -source=./ledger.go -package=daomocks -destination=mocks/ledger.mock.go LedgerDAO
type LedgerDAO interface {
	// Apply 在同一个事务里面读余额、写余额（乐观锁）并且追加流水
	Apply(ctx context.Context, txn XpTransaction, next NextFunc) (XpTransaction, error)
	FindBalance(ctx context.Context, uid int64) (UserBalance, error)
	// Rewrite 对账修正余额，version 不一致说明期间有新的流水
	Rewrite(ctx context.Context, b UserBalance) error
	Transactions(ctx context.Context, uid int64, offset, limit int) ([]XpTransaction, error)
	CountTransactions(ctx context.Context, uid int64) (int64, error)
	// AllTransactions 按照写入顺序返回全部流水
	AllTransactions(ctx context.Context, uid int64) ([]XpTransaction, error)
}

type ledgerDAO struct {
	db *egorm.Component
}

func NewLedgerGORMDAO(db *egorm.Component) LedgerDAO {
	return &ledgerDAO{db: db}
}

func (g *ledgerDAO) Apply(ctx context.Context, txn XpTransaction, next NextFunc) (XpTransaction, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur UserBalance
		if err := tx.Where("id = ?", txn.UserId).First(&cur).Error; err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		nb := next(cur)
		res := tx.Model(&UserBalance{}).
			Where("id = ? AND version = ?", cur.Id, cur.Version).
			Updates(map[string]any{
				"current_xp":    nb.CurrentXp,
				"coins_balance": nb.CoinsBalance,
				"current_level": nb.CurrentLevel,
				"version":       cur.Version + 1,
				"utime":         now,
			})
		if res.Error != nil {
			return fmt.Errorf("更新余额失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRecordChangedConcurrently
		}
		txn.XpBalance = nb.CurrentXp
		txn.CoinBalance = nb.CoinsBalance
		txn.Ctime = now
		if err := tx.Create(&txn).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrDuplicatedTransaction
			}
			return fmt.Errorf("创建积分流水失败: %w", err)
		}
		return nil
	})
	return txn, err
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	const uniqueIndexErrNo uint16 = 1062
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

func (g *ledgerDAO) FindBalance(ctx context.Context, uid int64) (UserBalance, error) {
	var res UserBalance
	err := g.db.WithContext(ctx).Where("id = ?", uid).First(&res).Error
	return res, err
}

func (g *ledgerDAO) Rewrite(ctx context.Context, b UserBalance) error {
	res := g.db.WithContext(ctx).Model(&UserBalance{}).
		Where("id = ? AND version = ?", b.Id, b.Version).
		Updates(map[string]any{
			"current_xp":    b.CurrentXp,
			"coins_balance": b.CoinsBalance,
			"current_level": b.CurrentLevel,
			"version":       b.Version + 1,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordChangedConcurrently
	}
	return nil
}

func (g *ledgerDAO) Transactions(ctx context.Context, uid int64, offset, limit int) ([]XpTransaction, error) {
	var res []XpTransaction
	err := g.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *ledgerDAO) CountTransactions(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&XpTransaction{}).
		Where("user_id = ?", uid).
		Count(&cnt).Error
	return cnt, err
}

func (g *ledgerDAO) AllTransactions(ctx context.Context, uid int64) ([]XpTransaction, error) {
	var res []XpTransaction
	err := g.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

// UserBalance 映射 users 表里面余额相关的列，表结构由用户模块维护
type UserBalance struct {
	Id           int64
	CurrentXp    int64
	CoinsBalance int64
	CurrentLevel int64
	Version      int64
	Utime        int64
}

func (UserBalance) TableName() string {
	return "users"
}

type XpTransaction struct {
	Id          int64                           `gorm:"primaryKey;autoIncrement;comment:流水自增ID"`
	UserId      int64                           `gorm:"not null;index:idx_user_id;comment:用户ID"`
	BizKey      string                          `gorm:"type:varchar(256);not null;uniqueIndex:unq_biz_key;comment:幂等键"`
	SourceType  string                          `gorm:"type:varchar(64);not null;comment:来源 admin_adjustment/onboarding/referral"`
	SourceLabel string                          `gorm:"type:varchar(512);comment:来源描述"`
	XpAmount    int64                           `gorm:"not null;comment:经验值变动，正数为增加，负数为减少"`
	CoinAmount  int64                           `gorm:"not null;comment:金币变动，正数为增加，负数为减少"`
	XpBalance   int64                           `gorm:"not null;comment:变动后的经验值"`
	CoinBalance int64                           `gorm:"not null;comment:变动后的金币"`
	Metadata    sqlx.JsonColumn[map[string]any] `gorm:"type:json"`
	Ctime       int64
}

func (XpTransaction) TableName() string {
	return "xp_transactions"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&XpTransaction{})
}
