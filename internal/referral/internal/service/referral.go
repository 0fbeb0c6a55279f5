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

	"github.com/fnxlabs/levelup/internal/jobpost"
	"github.com/fnxlabs/levelup/internal/referral/internal/domain"
	"github.com/fnxlabs/levelup/internal/referral/internal/event"
	"github.com/fnxlabs/levelup/internal/referral/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrReferralNotFound  = repository.ErrReferralNotFound
	ErrPayoutNotFound    = repository.ErrPayoutNotFound
	ErrDuplicatedEntry   = repository.ErrDuplicatedEntry
	ErrInvalidTransition = errors.New("非法的内推状态流转")
	ErrInvalidCandidate  = errors.New("候选人姓名和邮箱不能为空")
	ErrJobNotOpen        = errors.New("职位不存在或者没有开放")
	ErrPayoutNotEligible = errors.New("奖励还没有到可发放状态")
)

//go:generate mockgen -source=./referral.go -destination=../../mocks/referral.mock.go -package=referralmocks Service
type Service interface {
	Create(ctx context.Context, r domain.Referral) (int64, error)
	List(ctx context.Context, referrerId int64, offset, limit int) ([]domain.Referral, int64, error)
	AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Referral, int64, error)
	// UpdateStatus 录用的时候同时生成奖励，到期时间从 now 开始算
	UpdateStatus(ctx context.Context, id int64, to domain.Status, now time.Time) (domain.Referral, error)
	Payout(ctx context.Context, referralId int64) (domain.Payout, error)
	// MaturePayouts 返回本次变为可发放的奖励数量
	MaturePayouts(ctx context.Context, now time.Time, limit int) (int64, error)
	// MarkPaid 标记已发放并且通知积分模块入账
	MarkPaid(ctx context.Context, payoutId int64, now time.Time) (domain.Payout, error)
}

type referralService struct {
	repo     repository.ReferralRepository
	jobSvc   jobpost.Service
	producer event.RewardEventProducer
	logger   *elog.Component
}

func NewReferralService(repo repository.ReferralRepository,
	jobSvc jobpost.Service,
	producer event.RewardEventProducer) Service {
	return &referralService{
		repo:     repo,
		jobSvc:   jobSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *referralService) Create(ctx context.Context, r domain.Referral) (int64, error) {
	r.CandidateName = strings.TrimSpace(r.CandidateName)
	r.CandidateEmail = strings.ToLower(strings.TrimSpace(r.CandidateEmail))
	if r.CandidateName == "" || r.CandidateEmail == "" {
		return 0, ErrInvalidCandidate
	}
	detail, err := s.jobSvc.Detail(ctx, r.JobId)
	if errors.Is(err, jobpost.ErrJobNotFound) {
		return 0, fmt.Errorf("%w: jobId=%d", ErrJobNotOpen, r.JobId)
	}
	if err != nil {
		return 0, err
	}
	if detail.Job.Status != jobpost.StatusOpen {
		return 0, fmt.Errorf("%w: jobId=%d status=%s", ErrJobNotOpen, r.JobId, detail.Job.Status)
	}
	r.Status = domain.StatusNew
	r.BonusAmount = detail.Job.ReferralCoins
	return s.repo.Create(ctx, r)
}

func (s *referralService) List(ctx context.Context, referrerId int64, offset, limit int) ([]domain.Referral, int64, error) {
	return s.repo.List(ctx, referrerId, offset, limit)
}

func (s *referralService) AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Referral, int64, error) {
	return s.repo.AdminList(ctx, status, offset, limit)
}

func (s *referralService) UpdateStatus(ctx context.Context, id int64, to domain.Status, now time.Time) (domain.Referral, error) {
	r, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Referral{}, err
	}
	if !to.Valid() || !r.Status.CanTransitTo(to) {
		return domain.Referral{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	if to == domain.StatusHired {
		var p domain.Payout
		p, err = s.repo.Hire(ctx, id, r.Status, domain.NewPayout(r, now))
		if err == nil {
			s.logger.Info("候选人已录用，生成内推奖励",
				elog.Int64("referralId", id),
				elog.Int64("payoutId", p.Id),
				elog.Int64("maturityDate", p.MaturityDate))
		}
	} else {
		err = s.repo.UpdateStatus(ctx, id, r.Status, to, now)
	}
	switch {
	case errors.Is(err, repository.ErrStatusChanged), errors.Is(err, repository.ErrDuplicatedPayout):
		return domain.Referral{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	case err != nil:
		return domain.Referral{}, err
	}
	r.Status = to
	r.Utime = now.UnixMilli()
	return r, nil
}

func (s *referralService) Payout(ctx context.Context, referralId int64) (domain.Payout, error) {
	return s.repo.FindPayoutByReferralId(ctx, referralId)
}

func (s *referralService) MaturePayouts(ctx context.Context, now time.Time, limit int) (int64, error) {
	return s.repo.MatureBefore(ctx, now, limit)
}

func (s *referralService) MarkPaid(ctx context.Context, payoutId int64, now time.Time) (domain.Payout, error) {
	p, err := s.repo.FindPayoutById(ctx, payoutId)
	if err != nil {
		return domain.Payout{}, err
	}
	if p.Status != domain.PayoutEligible {
		return domain.Payout{}, fmt.Errorf("%w: payoutId=%d status=%s", ErrPayoutNotEligible, payoutId, p.Status)
	}
	// 先发消息再改状态，消息的 Key 固定，重复发送只会入账一次
	err = s.producer.Produce(ctx, event.RewardEvent{
		Key:         "referral_payout:" + strconv.FormatInt(p.Id, 10),
		Uid:         p.Uid,
		Coins:       p.Amount,
		SourceType:  "referral",
		SourceLabel: "内推奖励",
		Metadata: map[string]any{
			"referral_id": p.ReferralId,
			"payout_id":   p.Id,
		},
	})
	if err != nil {
		return domain.Payout{}, fmt.Errorf("发送内推奖励消息失败: %w", err)
	}
	err = s.repo.MarkPaid(ctx, payoutId, now)
	if errors.Is(err, repository.ErrStatusChanged) {
		return domain.Payout{}, fmt.Errorf("%w: payoutId=%d", ErrPayoutNotEligible, payoutId)
	}
	if err != nil {
		return domain.Payout{}, err
	}
	p.Status = domain.PayoutPaid
	p.PaidAt = now.UnixMilli()
	return p, nil
}
