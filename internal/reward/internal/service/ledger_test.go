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
	"strings"
	"testing"
	"time"

	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository"
	repomocks "github.com/fnxlabs/levelup/internal/reward/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testPolicy = domain.LevelPolicy{XpPerLevel: 1000}
	testRetry  = RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond * 2,
		MaxRetries:      2,
	}
)

func TestLedgerService_Apply(t *testing.T) {
	entry := domain.Entry{
		Uid:        1,
		Key:        "referral_payout:3",
		SourceType: domain.SourceReferral,
		XpDelta:    200,
		CoinDelta:  50,
	}
	txn := domain.Transaction{Id: 9, Uid: 1, Key: entry.Key, XpAmount: 200, CoinAmount: 50}
	testCases := []struct {
		name    string
		entry   domain.Entry
		mock    func(ctrl *gomock.Controller) repository.LedgerRepository
		wantTxn domain.Transaction
		wantErr error
	}{
		{
			name:  "入账成功",
			entry: entry,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), entry, testPolicy).Return(txn, nil)
				return repo
			},
			wantTxn: txn,
		},
		{
			name:  "并发修改之后重试成功",
			entry: entry,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				gomock.InOrder(
					repo.EXPECT().Apply(gomock.Any(), entry, testPolicy).
						Return(domain.Transaction{}, repository.ErrRecordChangedConcurrently),
					repo.EXPECT().Apply(gomock.Any(), entry, testPolicy).Return(txn, nil),
				)
				return repo
			},
			wantTxn: txn,
		},
		{
			name:  "重试次数用完",
			entry: entry,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), entry, testPolicy).
					Return(domain.Transaction{}, repository.ErrRecordChangedConcurrently).Times(3)
				return repo
			},
			wantErr: ErrTooManyRetries,
		},
		{
			name:  "重复的幂等键",
			entry: entry,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), entry, testPolicy).
					Return(domain.Transaction{}, repository.ErrDuplicatedTransaction)
				return repo
			},
			wantErr: ErrDuplicatedTransaction,
		},
		{
			name:  "没有变动",
			entry: domain.Entry{Uid: 1, Key: "k", SourceType: domain.SourceReferral},
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				return repomocks.NewMockLedgerRepository(ctrl)
			},
			wantErr: ErrInvalidEntry,
		},
		{
			name:  "缺少幂等键",
			entry: domain.Entry{Uid: 1, SourceType: domain.SourceReferral, XpDelta: 1},
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				return repomocks.NewMockLedgerRepository(ctrl)
			},
			wantErr: ErrInvalidEntry,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewLedgerService(tc.mock(ctrl), testPolicy, testRetry)
			res, err := svc.Apply(context.Background(), tc.entry)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantTxn, res)
		})
	}
}

func TestLedgerService_ManualAdjust(t *testing.T) {
	testCases := []struct {
		name    string
		amount  int64
		kind    domain.Kind
		reason  string
		mock    func(ctrl *gomock.Controller) repository.LedgerRepository
		wantErr error
	}{
		{
			name:   "扣减金币",
			amount: -150,
			kind:   domain.KindCoins,
			reason: " 兑换礼品 ",
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), gomock.Any(), testPolicy).
					DoAndReturn(func(ctx context.Context, entry domain.Entry, policy domain.LevelPolicy) (domain.Transaction, error) {
						assert.True(t, strings.HasPrefix(entry.Key, "admin_adjustment:"))
						assert.Equal(t, domain.SourceAdminAdjustment, entry.SourceType)
						assert.Equal(t, "兑换礼品", entry.SourceLabel)
						assert.Equal(t, int64(0), entry.XpDelta)
						assert.Equal(t, int64(-150), entry.CoinDelta)
						assert.Equal(t, int64(99), entry.Metadata["operator"])
						return domain.Transaction{Id: 1}, nil
					})
				return repo
			},
		},
		{
			name:   "增加经验值，没有原因",
			amount: 300,
			kind:   domain.KindXp,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), gomock.Any(), testPolicy).
					DoAndReturn(func(ctx context.Context, entry domain.Entry, policy domain.LevelPolicy) (domain.Transaction, error) {
						assert.Equal(t, "管理员调整", entry.SourceLabel)
						assert.Equal(t, int64(300), entry.XpDelta)
						assert.Equal(t, int64(0), entry.CoinDelta)
						return domain.Transaction{Id: 2}, nil
					})
				return repo
			},
		},
		{
			name:   "非法的调整类型",
			amount: 10,
			kind:   domain.Kind("diamond"),
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				return repomocks.NewMockLedgerRepository(ctrl)
			},
			wantErr: ErrInvalidKind,
		},
		{
			name:   "调整数量为 0",
			amount: 0,
			kind:   domain.KindXp,
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				return repomocks.NewMockLedgerRepository(ctrl)
			},
			wantErr: ErrInvalidEntry,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewLedgerService(tc.mock(ctrl), testPolicy, testRetry)
			_, err := svc.ManualAdjust(context.Background(), 99, 1, tc.amount, tc.kind, tc.reason)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLedgerService_GrantOnboardingBonus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockLedgerRepository(ctrl)
	repo.EXPECT().Apply(gomock.Any(), domain.Entry{
		Uid:         12,
		Key:         "onboarding:12",
		SourceType:  domain.SourceOnboarding,
		SourceLabel: "完成入职引导",
		XpDelta:     domain.OnboardingXp,
		CoinDelta:   domain.OnboardingCoins,
	}, testPolicy).Return(domain.Transaction{}, repository.ErrDuplicatedTransaction)
	svc := NewLedgerService(repo, testPolicy, testRetry)
	_, err := svc.GrantOnboardingBonus(context.Background(), 12)
	assert.ErrorIs(t, err, ErrDuplicatedTransaction)
}

func TestLedgerService_Reconcile(t *testing.T) {
	txns := []domain.Transaction{
		{XpAmount: 500, CoinAmount: 100},
		{CoinAmount: -150},
		{XpAmount: 700, CoinAmount: 30},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.LedgerRepository
		wantRes domain.ReconcileResult
		wantErr error
	}{
		{
			name: "余额和流水一致",
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Balance(gomock.Any(), int64(1)).
					Return(domain.Balance{Uid: 1, Xp: 1200, Coins: 30, Level: 2, Version: 3}, nil)
				repo.EXPECT().AllTransactions(gomock.Any(), int64(1)).Return(txns, nil)
				return repo
			},
			wantRes: domain.ReconcileResult{
				Before: domain.Balance{Uid: 1, Xp: 1200, Coins: 30, Level: 2, Version: 3},
				After:  domain.Balance{Uid: 1, Xp: 1200, Coins: 30, Level: 2, Version: 3},
			},
		},
		{
			name: "余额漂移，按照流水修正",
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Balance(gomock.Any(), int64(1)).
					Return(domain.Balance{Uid: 1, Xp: 9999, Coins: 0, Level: 10, Version: 3}, nil)
				repo.EXPECT().AllTransactions(gomock.Any(), int64(1)).Return(txns, nil)
				repo.EXPECT().Rewrite(gomock.Any(),
					domain.Balance{Uid: 1, Xp: 1200, Coins: 30, Level: 2, Version: 3}).Return(nil)
				return repo
			},
			wantRes: domain.ReconcileResult{
				Before:  domain.Balance{Uid: 1, Xp: 9999, Coins: 0, Level: 10, Version: 3},
				After:   domain.Balance{Uid: 1, Xp: 1200, Coins: 30, Level: 2, Version: 3},
				Drifted: true,
			},
		},
		{
			name: "修正的时候又有新的流水",
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Balance(gomock.Any(), int64(1)).
					Return(domain.Balance{Uid: 1, Xp: 1, Version: 3}, nil)
				repo.EXPECT().AllTransactions(gomock.Any(), int64(1)).Return(txns, nil)
				repo.EXPECT().Rewrite(gomock.Any(), gomock.Any()).
					Return(repository.ErrRecordChangedConcurrently)
				return repo
			},
			wantErr: repository.ErrRecordChangedConcurrently,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.LedgerRepository {
				repo := repomocks.NewMockLedgerRepository(ctrl)
				repo.EXPECT().Balance(gomock.Any(), int64(1)).
					Return(domain.Balance{}, repository.ErrUserNotFound)
				return repo
			},
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewLedgerService(tc.mock(ctrl), testPolicy, testRetry)
			res, err := svc.Reconcile(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestLedgerService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockLedgerRepository(ctrl)
	recent := []domain.Transaction{{Id: 2}, {Id: 1}}
	repo.EXPECT().Balance(gomock.Any(), int64(1)).Return(domain.Balance{Uid: 1, Xp: 1500, Coins: 7, Level: 2}, nil)
	repo.EXPECT().CountTransactions(gomock.Any(), int64(1)).Return(int64(2), nil)
	repo.EXPECT().Transactions(gomock.Any(), int64(1), 0, recentTransactions).Return(recent, nil)
	svc := NewLedgerService(repo, testPolicy, testRetry)
	res, err := svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Summary{
		Balance:          domain.Balance{Uid: 1, Xp: 1500, Coins: 7, Level: 2},
		NextLevelXp:      2000,
		TransactionCount: 2,
		Recent:           recent,
	}, res)

	repo.EXPECT().Transactions(gomock.Any(), int64(1), 10, 10).Return(nil, errors.New("mock db error"))
	repo.EXPECT().CountTransactions(gomock.Any(), int64(1)).Return(int64(0), nil)
	_, _, err = svc.Transactions(context.Background(), 1, 10, 10)
	assert.Error(t, err)
}
