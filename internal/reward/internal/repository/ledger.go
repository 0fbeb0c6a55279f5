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
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository/dao"
)

var (
	ErrUserNotFound              = errors.New("用户不存在")
	ErrDuplicatedTransaction     = dao.ErrDuplicatedTransaction
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./ledger.go -package=repomocks -destination=mocks/ledger.mock.go LedgerRepository
type LedgerRepository interface {
	Apply(ctx context.Context, entry domain.Entry, policy domain.LevelPolicy) (domain.Transaction, error)
	Balance(ctx context.Context, uid int64) (domain.Balance, error)
	Rewrite(ctx context.Context, b domain.Balance) error
	Transactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context, uid int64) (int64, error)
	AllTransactions(ctx context.Context, uid int64) ([]domain.Transaction, error)
}

type ledgerRepository struct {
	dao dao.LedgerDAO
}

func NewLedgerRepository(d dao.LedgerDAO) LedgerRepository {
	return &ledgerRepository{dao: d}
}

func (r *ledgerRepository) Apply(ctx context.Context, entry domain.Entry, policy domain.LevelPolicy) (domain.Transaction, error) {
	txn, err := r.dao.Apply(ctx, dao.XpTransaction{
		UserId:      entry.Uid,
		BizKey:      entry.Key,
		SourceType:  entry.SourceType.String(),
		SourceLabel: entry.SourceLabel,
		XpAmount:    entry.XpDelta,
		CoinAmount:  entry.CoinDelta,
		Metadata: sqlx.JsonColumn[map[string]any]{
			Val:   entry.Metadata,
			Valid: len(entry.Metadata) > 0,
		},
	}, func(b dao.UserBalance) dao.UserBalance {
		nb := r.toBalance(b).Apply(entry.XpDelta, entry.CoinDelta, policy)
		b.CurrentXp = nb.Xp
		b.CoinsBalance = nb.Coins
		b.CurrentLevel = nb.Level
		return b
	})
	if errors.Is(err, dao.ErrUserNotFound) {
		return domain.Transaction{}, ErrUserNotFound
	}
	if err != nil {
		return domain.Transaction{}, err
	}
	return r.toTransaction(txn), nil
}

func (r *ledgerRepository) Balance(ctx context.Context, uid int64) (domain.Balance, error) {
	b, err := r.dao.FindBalance(ctx, uid)
	if errors.Is(err, dao.ErrUserNotFound) {
		return domain.Balance{}, ErrUserNotFound
	}
	return r.toBalance(b), err
}

func (r *ledgerRepository) Rewrite(ctx context.Context, b domain.Balance) error {
	return r.dao.Rewrite(ctx, dao.UserBalance{
		Id:           b.Uid,
		CurrentXp:    b.Xp,
		CoinsBalance: b.Coins,
		CurrentLevel: b.Level,
		Version:      b.Version,
	})
}

func (r *ledgerRepository) Transactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, error) {
	txns, err := r.dao.Transactions(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toTransactions(txns), nil
}

func (r *ledgerRepository) CountTransactions(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountTransactions(ctx, uid)
}

func (r *ledgerRepository) AllTransactions(ctx context.Context, uid int64) ([]domain.Transaction, error) {
	txns, err := r.dao.AllTransactions(ctx, uid)
	if err != nil {
		return nil, err
	}
	return r.toTransactions(txns), nil
}

func (r *ledgerRepository) toTransactions(txns []dao.XpTransaction) []domain.Transaction {
	return slice.Map(txns, func(idx int, src dao.XpTransaction) domain.Transaction {
		return r.toTransaction(src)
	})
}

func (r *ledgerRepository) toBalance(b dao.UserBalance) domain.Balance {
	return domain.Balance{
		Uid:     b.Id,
		Xp:      b.CurrentXp,
		Coins:   b.CoinsBalance,
		Level:   b.CurrentLevel,
		Version: b.Version,
	}
}

func (r *ledgerRepository) toTransaction(t dao.XpTransaction) domain.Transaction {
	return domain.Transaction{
		Id:          t.Id,
		Uid:         t.UserId,
		Key:         t.BizKey,
		SourceType:  domain.SourceType(t.SourceType),
		SourceLabel: t.SourceLabel,
		XpAmount:    t.XpAmount,
		CoinAmount:  t.CoinAmount,
		XpBalance:   t.XpBalance,
		CoinBalance: t.CoinBalance,
		Metadata:    t.Metadata.Val,
		Ctime:       t.Ctime,
	}
}
