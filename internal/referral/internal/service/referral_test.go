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
	"testing"
	"time"

	"github.com/fnxlabs/levelup/internal/jobpost"
	jobmocks "github.com/fnxlabs/levelup/internal/jobpost/mocks"
	mqxmocks "github.com/fnxlabs/levelup/internal/pkg/mqx/mocks"
	"github.com/fnxlabs/levelup/internal/referral/internal/domain"
	"github.com/fnxlabs/levelup/internal/referral/internal/event"
	"github.com/fnxlabs/levelup/internal/referral/internal/repository"
	repomocks "github.com/fnxlabs/levelup/internal/referral/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *repomocks.MockReferralRepository
	jobSvc   *jobmocks.MockJobService
	producer *mqxmocks.MockProducer[event.RewardEvent]
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:     repomocks.NewMockReferralRepository(ctrl),
		jobSvc:   jobmocks.NewMockJobService(ctrl),
		producer: mqxmocks.NewMockProducer[event.RewardEvent](ctrl),
	}
}

func (m mocks) svc() Service {
	return NewReferralService(m.repo, m.jobSvc, m.producer)
}

func TestReferralService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		input   domain.Referral
		mock    func(m mocks)
		wantId  int64
		wantErr error
	}{
		{
			name: "推荐成功，奖励取职位的内推金币",
			input: domain.Referral{
				ReferrerId:     7,
				JobId:          3,
				CandidateName:  " Alice ",
				CandidateEmail: "Alice@Example.com",
			},
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(3)).Return(jobpost.JobDetail{
					Job: jobpost.Job{Id: 3, Status: jobpost.StatusOpen, ReferralCoins: 200},
				}, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Referral{
					ReferrerId:     7,
					JobId:          3,
					CandidateName:  "Alice",
					CandidateEmail: "alice@example.com",
					Status:         domain.StatusNew,
					BonusAmount:    200,
				}).Return(int64(11), nil)
			},
			wantId: 11,
		},
		{
			name:    "缺少候选人邮箱",
			input:   domain.Referral{ReferrerId: 7, JobId: 3, CandidateName: "Alice"},
			mock:    func(m mocks) {},
			wantErr: ErrInvalidCandidate,
		},
		{
			name:  "职位还是草稿",
			input: domain.Referral{ReferrerId: 7, JobId: 3, CandidateName: "Alice", CandidateEmail: "a@b.c"},
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(3)).Return(jobpost.JobDetail{
					Job: jobpost.Job{Id: 3, Status: jobpost.StatusDraft},
				}, nil)
			},
			wantErr: ErrJobNotOpen,
		},
		{
			name:  "职位不存在",
			input: domain.Referral{ReferrerId: 7, JobId: 404, CandidateName: "Alice", CandidateEmail: "a@b.c"},
			mock: func(m mocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(404)).
					Return(jobpost.JobDetail{}, jobpost.ErrJobNotFound)
			},
			wantErr: ErrJobNotOpen,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			id, err := m.svc().Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestReferralService_UpdateStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	offer := domain.Referral{Id: 3, ReferrerId: 7, JobId: 2, Status: domain.StatusOffer, BonusAmount: 200}
	testCases := []struct {
		name       string
		to         domain.Status
		mock       func(m mocks)
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "录用生成 90 天之后到期的奖励",
			to:   domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).Return(offer, nil)
				m.repo.EXPECT().Hire(gomock.Any(), int64(3), domain.StatusOffer, gomock.Any()).
					DoAndReturn(func(ctx context.Context, id int64, from domain.Status, p domain.Payout) (domain.Payout, error) {
						assert.Equal(t, now.Add(90*24*time.Hour).UnixMilli(), p.MaturityDate)
						assert.Equal(t, now.UnixMilli(), p.Ctime)
						assert.True(t, p.IsEligible)
						assert.Equal(t, domain.PayoutPendingMaturity, p.Status)
						assert.Equal(t, int64(200), p.Amount)
						assert.Equal(t, int64(7), p.Uid)
						assert.Equal(t, int64(3), p.ReferralId)
						p.Id = 1
						return p, nil
					})
			},
			wantStatus: domain.StatusHired,
		},
		{
			name: "正常推进",
			to:   domain.StatusReviewing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Referral{Id: 3, Status: domain.StatusNew}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), domain.StatusNew, domain.StatusReviewing, now).Return(nil)
			},
			wantStatus: domain.StatusReviewing,
		},
		{
			name: "面试阶段直接录用",
			to:   domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Referral{Id: 3, ReferrerId: 7, Status: domain.StatusInterview, BonusAmount: 200}, nil)
				m.repo.EXPECT().Hire(gomock.Any(), int64(3), domain.StatusInterview, gomock.Any()).
					Return(domain.Payout{Id: 1}, nil)
			},
			wantStatus: domain.StatusHired,
		},
		{
			name: "跳过中间状态",
			to:   domain.StatusOffer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Referral{Id: 3, Status: domain.StatusNew}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "已经拒绝",
			to:   domain.StatusReviewing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Referral{Id: 3, Status: domain.StatusRejected}, nil)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "并发录用，奖励已经存在",
			to:   domain.StatusHired,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).Return(offer, nil)
				m.repo.EXPECT().Hire(gomock.Any(), int64(3), domain.StatusOffer, gomock.Any()).
					Return(domain.Payout{}, repository.ErrDuplicatedPayout)
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "内推不存在",
			to:   domain.StatusReviewing,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(3)).
					Return(domain.Referral{}, repository.ErrReferralNotFound)
			},
			wantErr: ErrReferralNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			r, err := m.svc().UpdateStatus(context.Background(), 3, tc.to, now)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantStatus, r.Status)
		})
	}
}

func TestReferralService_MarkPaid(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	eligible := domain.Payout{Id: 5, ReferralId: 3, Uid: 7, Amount: 200, Status: domain.PayoutEligible, IsEligible: true}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.Payout
		wantErr error
	}{
		{
			name: "发送消息之后标记为已发放",
			mock: func(m mocks) {
				m.repo.EXPECT().FindPayoutById(gomock.Any(), int64(5)).Return(eligible, nil)
				gomock.InOrder(
					m.producer.EXPECT().Produce(gomock.Any(), event.RewardEvent{
						Key:         "referral_payout:5",
						Uid:         7,
						Coins:       200,
						SourceType:  "referral",
						SourceLabel: "内推奖励",
						Metadata:    map[string]any{"referral_id": int64(3), "payout_id": int64(5)},
					}).Return(nil),
					m.repo.EXPECT().MarkPaid(gomock.Any(), int64(5), now).Return(nil),
				)
			},
			want: domain.Payout{
				Id: 5, ReferralId: 3, Uid: 7, Amount: 200,
				Status: domain.PayoutPaid, IsEligible: true, PaidAt: now.UnixMilli(),
			},
		},
		{
			name: "还没有到期",
			mock: func(m mocks) {
				p := eligible
				p.Status = domain.PayoutPendingMaturity
				m.repo.EXPECT().FindPayoutById(gomock.Any(), int64(5)).Return(p, nil)
			},
			wantErr: ErrPayoutNotEligible,
		},
		{
			name: "发送消息失败不修改状态",
			mock: func(m mocks) {
				m.repo.EXPECT().FindPayoutById(gomock.Any(), int64(5)).Return(eligible, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantErr: errors.New("mock mq error"),
		},
		{
			name: "被别人抢先发放",
			mock: func(m mocks) {
				m.repo.EXPECT().FindPayoutById(gomock.Any(), int64(5)).Return(eligible, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().MarkPaid(gomock.Any(), int64(5), now).Return(repository.ErrStatusChanged)
			},
			wantErr: ErrPayoutNotEligible,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			p, err := m.svc().MarkPaid(context.Background(), 5, now)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrPayoutNotEligible) {
					assert.ErrorIs(t, err, ErrPayoutNotEligible)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p)
		})
	}
}
