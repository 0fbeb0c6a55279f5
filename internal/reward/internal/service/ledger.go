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
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound          = repository.ErrUserNotFound
	ErrDuplicatedTransaction = repository.ErrDuplicatedTransaction
	ErrInvalidEntry          = errors.New("积分变更信息非法")
	ErrInvalidKind           = errors.New("调整类型只能是 xp 或者 coins")
	ErrTooManyRetries        = errors.New("余额并发修改，重试次数已用完")
)

const recentTransactions = 5

//go:generate mockgen -source=./ledger.go -destination=../../mocks/reward.mock.go -package=rewardmocks Service
type Service interface {
	// Apply 是修改余额的唯一入口，重复的 Key 返回 ErrDuplicatedTransaction
	Apply(ctx context.Context, entry domain.Entry) (domain.Transaction, error)
	ManualAdjust(ctx context.Context, operator, uid, amount int64, kind domain.Kind, reason string) (domain.Transaction, error)
	// GrantOnboardingBonus 每个用户只会发放一次
	GrantOnboardingBonus(ctx context.Context, uid int64) (domain.Transaction, error)
	// Reconcile 根据流水重新计算余额，余额和流水不一致的时候以流水为准
	Reconcile(ctx context.Context, uid int64) (domain.ReconcileResult, error)
	Summary(ctx context.Context, uid int64) (domain.Summary, error)
	Transactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, int64, error)
}

type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      int32
}

type ledgerService struct {
	repo   repository.LedgerRepository
	policy domain.LevelPolicy
	retry  RetryConfig
	logger *elog.Component
}

func NewLedgerService(repo repository.LedgerRepository, policy domain.LevelPolicy, retryCfg RetryConfig) Service {
	return &ledgerService{
		repo:   repo,
		policy: policy,
		retry:  retryCfg,
		logger: elog.DefaultLogger,
	}
}

func (s *ledgerService) Apply(ctx context.Context, entry domain.Entry) (domain.Transaction, error) {
	if entry.Uid <= 0 || entry.Key == "" || entry.SourceType == "" ||
		(entry.XpDelta == 0 && entry.CoinDelta == 0) {
		return domain.Transaction{}, fmt.Errorf("%w: uid=%d key=%s", ErrInvalidEntry, entry.Uid, entry.Key)
	}
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.retry.InitialInterval, s.retry.MaxInterval, s.retry.MaxRetries)
	if err != nil {
		return domain.Transaction{}, err
	}
	for {
		txn, err := s.repo.Apply(ctx, entry, s.policy)
		if !errors.Is(err, repository.ErrRecordChangedConcurrently) {
			return txn, err
		}
		next, ok := strategy.Next()
		if !ok {
			return domain.Transaction{}, fmt.Errorf("%w: uid=%d key=%s", ErrTooManyRetries, entry.Uid, entry.Key)
		}
		s.logger.Debug("余额被并发修改，准备重试", elog.Int64("uid", entry.Uid), elog.String("key", entry.Key))
		select {
		case <-ctx.Done():
			return domain.Transaction{}, ctx.Err()
		case <-time.After(next):
		}
	}
}

func (s *ledgerService) ManualAdjust(ctx context.Context, operator, uid, amount int64, kind domain.Kind, reason string) (domain.Transaction, error) {
	entry := domain.Entry{
		Uid:         uid,
		Key:         "admin_adjustment:" + shortuuid.New(),
		SourceType:  domain.SourceAdminAdjustment,
		SourceLabel: strings.TrimSpace(reason),
		Metadata: map[string]any{
			"operator": operator,
			"kind":     string(kind),
		},
	}
	switch kind {
	case domain.KindXp:
		entry.XpDelta = amount
	case domain.KindCoins:
		entry.CoinDelta = amount
	default:
		return domain.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if entry.SourceLabel == "" {
		entry.SourceLabel = "管理员调整"
	}
	return s.Apply(ctx, entry)
}

func (s *ledgerService) GrantOnboardingBonus(ctx context.Context, uid int64) (domain.Transaction, error) {
	return s.Apply(ctx, domain.Entry{
		Uid:         uid,
		Key:         "onboarding:" + strconv.FormatInt(uid, 10),
		SourceType:  domain.SourceOnboarding,
		SourceLabel: "完成入职引导",
		XpDelta:     domain.OnboardingXp,
		CoinDelta:   domain.OnboardingCoins,
	})
}

func (s *ledgerService) Reconcile(ctx context.Context, uid int64) (domain.ReconcileResult, error) {
	before, err := s.repo.Balance(ctx, uid)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	txns, err := s.repo.AllTransactions(ctx, uid)
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	after := domain.Fold(txns, s.policy)
	after.Uid = uid
	after.Version = before.Version
	res := domain.ReconcileResult{Before: before, After: after}
	if before.SameAmounts(after) {
		return res, nil
	}
	res.Drifted = true
	s.logger.Warn("余额和流水不一致，按照流水修正",
		elog.Int64("uid", uid),
		elog.Any("before", before),
		elog.Any("after", after))
	if err = s.repo.Rewrite(ctx, after); err != nil {
		return domain.ReconcileResult{}, err
	}
	return res, nil
}

func (s *ledgerService) Summary(ctx context.Context, uid int64) (domain.Summary, error) {
	var (
		eg  errgroup.Group
		res domain.Summary
	)
	eg.Go(func() error {
		var err error
		res.Balance, err = s.repo.Balance(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.TransactionCount, err = s.repo.CountTransactions(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Recent, err = s.repo.Transactions(ctx, uid, 0, recentTransactions)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Summary{}, err
	}
	res.NextLevelXp = s.policy.NextLevelXp(res.Balance.Xp)
	return res, nil
}

func (s *ledgerService) Transactions(ctx context.Context, uid int64, offset, limit int) ([]domain.Transaction, int64, error) {
	var (
		eg    errgroup.Group
		txns  []domain.Transaction
		total int64
	)
	eg.Go(func() error {
		var err error
		txns, err = s.repo.Transactions(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountTransactions(ctx, uid)
		return err
	})
	return txns, total, eg.Wait()
}
