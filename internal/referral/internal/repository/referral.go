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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/referral/internal/domain"
	"github.com/fnxlabs/levelup/internal/referral/internal/repository/dao"
)

var (
	ErrReferralNotFound = errors.New("内推记录不存在")
	ErrPayoutNotFound   = errors.New("奖励记录不存在")
	ErrStatusChanged    = dao.ErrStatusChanged
	ErrDuplicatedPayout = dao.ErrDuplicatedPayout
	ErrDuplicatedEntry  = dao.ErrDuplicatedEntry
)

//go:generate mockgen -source=./referral.go -package=repomocks -destination=mocks/referral.mock.go ReferralRepository
type ReferralRepository interface {
	Create(ctx context.Context, r domain.Referral) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Referral, error)
	List(ctx context.Context, referrerId int64, offset, limit int) ([]domain.Referral, int64, error)
	AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Referral, int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status, now time.Time) error
	Hire(ctx context.Context, id int64, from domain.Status, payout domain.Payout) (domain.Payout, error)

	FindPayoutById(ctx context.Context, id int64) (domain.Payout, error)
	FindPayoutByReferralId(ctx context.Context, referralId int64) (domain.Payout, error)
	MatureBefore(ctx context.Context, now time.Time, limit int) (int64, error)
	MarkPaid(ctx context.Context, id int64, now time.Time) error
}

type referralRepository struct {
	dao dao.ReferralDAO
}

func NewReferralRepository(d dao.ReferralDAO) ReferralRepository {
	return &referralRepository{dao: d}
}

func (r *referralRepository) Create(ctx context.Context, ref domain.Referral) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(ref))
}

func (r *referralRepository) FindById(ctx context.Context, id int64) (domain.Referral, error) {
	ref, err := r.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Referral{}, ErrReferralNotFound
	}
	return r.toDomain(ref), err
}

func (r *referralRepository) List(ctx context.Context, referrerId int64, offset, limit int) ([]domain.Referral, int64, error) {
	refs, err := r.dao.List(ctx, referrerId, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.Count(ctx, referrerId)
	return r.toDomains(refs), total, err
}

func (r *referralRepository) AdminList(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Referral, int64, error) {
	refs, err := r.dao.AdminList(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.AdminCount(ctx, status.String())
	return r.toDomains(refs), total, err
}

func (r *referralRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, now time.Time) error {
	return r.dao.UpdateStatus(ctx, id, from.String(), to.String(), now.UnixMilli())
}

func (r *referralRepository) Hire(ctx context.Context, id int64, from domain.Status, payout domain.Payout) (domain.Payout, error) {
	p, err := r.dao.Hire(ctx, id, from.String(), r.toPayoutEntity(payout))
	if err != nil {
		return domain.Payout{}, err
	}
	return r.toPayout(p), nil
}

func (r *referralRepository) FindPayoutById(ctx context.Context, id int64) (domain.Payout, error) {
	p, err := r.dao.FindPayoutById(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Payout{}, ErrPayoutNotFound
	}
	return r.toPayout(p), err
}

func (r *referralRepository) FindPayoutByReferralId(ctx context.Context, referralId int64) (domain.Payout, error) {
	p, err := r.dao.FindPayoutByReferralId(ctx, referralId)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Payout{}, ErrPayoutNotFound
	}
	return r.toPayout(p), err
}

func (r *referralRepository) MatureBefore(ctx context.Context, now time.Time, limit int) (int64, error) {
	return r.dao.MatureBefore(ctx, now.UnixMilli(), limit)
}

func (r *referralRepository) MarkPaid(ctx context.Context, id int64, now time.Time) error {
	return r.dao.MarkPaid(ctx, id, now.UnixMilli())
}

func (r *referralRepository) toDomains(refs []dao.Referral) []domain.Referral {
	return slice.Map(refs, func(idx int, src dao.Referral) domain.Referral {
		return r.toDomain(src)
	})
}

func (r *referralRepository) toDomain(ref dao.Referral) domain.Referral {
	return domain.Referral{
		Id:             ref.Id,
		ReferrerId:     ref.ReferrerId,
		JobId:          ref.JobId,
		CandidateName:  ref.CandidateName,
		CandidateEmail: ref.CandidateEmail,
		CandidatePhone: ref.CandidatePhone,
		ResumeURL:      ref.ResumeURL,
		Notes:          ref.Notes,
		Status:         domain.Status(ref.Status),
		BonusAmount:    ref.BonusAmount,
		Ctime:          ref.Ctime,
		Utime:          ref.Utime,
	}
}

func (r *referralRepository) toEntity(ref domain.Referral) dao.Referral {
	return dao.Referral{
		Id:             ref.Id,
		ReferrerId:     ref.ReferrerId,
		JobId:          ref.JobId,
		CandidateName:  ref.CandidateName,
		CandidateEmail: ref.CandidateEmail,
		CandidatePhone: ref.CandidatePhone,
		ResumeURL:      ref.ResumeURL,
		Notes:          ref.Notes,
		Status:         ref.Status.String(),
		BonusAmount:    ref.BonusAmount,
	}
}

func (r *referralRepository) toPayout(p dao.ReferralPayout) domain.Payout {
	return domain.Payout{
		Id:           p.Id,
		ReferralId:   p.ReferralId,
		Uid:          p.UserId,
		Amount:       p.Amount,
		Status:       domain.PayoutStatus(p.Status),
		MaturityDate: p.MaturityDate,
		IsEligible:   p.IsEligible,
		PaidAt:       p.PaidAt,
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}

func (r *referralRepository) toPayoutEntity(p domain.Payout) dao.ReferralPayout {
	return dao.ReferralPayout{
		Id:           p.Id,
		ReferralId:   p.ReferralId,
		UserId:       p.Uid,
		Amount:       p.Amount,
		Status:       p.Status.String(),
		MaturityDate: p.MaturityDate,
		IsEligible:   p.IsEligible,
		PaidAt:       p.PaidAt,
		Ctime:        p.Ctime,
		Utime:        p.Utime,
	}
}
