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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/referral/internal/domain"
)

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type CreateReq struct {
	JobId          int64  `json:"jobId"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	CandidatePhone string `json:"candidatePhone"`
	ResumeURL      string `json:"resumeUrl"`
	Notes          string `json:"notes"`
}

type AdminListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type StatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type PayoutReq struct {
	Id int64 `json:"id"`
}

type Referral struct {
	Id             int64   `json:"id"`
	ReferrerId     int64   `json:"referrerId"`
	JobId          int64   `json:"jobId"`
	CandidateName  string  `json:"candidateName"`
	CandidateEmail string  `json:"candidateEmail"`
	CandidatePhone string  `json:"candidatePhone,omitempty"`
	ResumeURL      string  `json:"resumeUrl,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	Status         string  `json:"status"`
	BonusAmount    int64   `json:"bonusAmount"`
	Ctime          int64   `json:"ctime"`
	Utime          int64   `json:"utime"`
	Payout         *Payout `json:"payout,omitempty"`
}

func newReferral(r domain.Referral) Referral {
	return Referral{
		Id:             r.Id,
		ReferrerId:     r.ReferrerId,
		JobId:          r.JobId,
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		CandidatePhone: r.CandidatePhone,
		ResumeURL:      r.ResumeURL,
		Notes:          r.Notes,
		Status:         r.Status.String(),
		BonusAmount:    r.BonusAmount,
		Ctime:          r.Ctime,
		Utime:          r.Utime,
	}
}

type Payout struct {
	Id           int64  `json:"id"`
	ReferralId   int64  `json:"referralId"`
	Uid          int64  `json:"uid"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	MaturityDate int64  `json:"maturityDate"`
	IsEligible   bool   `json:"isEligible"`
	PaidAt       int64  `json:"paidAt,omitempty"`
}

func newPayout(p domain.Payout) *Payout {
	return &Payout{
		Id:           p.Id,
		ReferralId:   p.ReferralId,
		Uid:          p.Uid,
		Amount:       p.Amount,
		Status:       p.Status.String(),
		MaturityDate: p.MaturityDate,
		IsEligible:   p.IsEligible,
		PaidAt:       p.PaidAt,
	}
}

type ReferralList struct {
	List  []Referral `json:"list"`
	Total int64      `json:"total"`
}

func newReferralList(refs []domain.Referral, total int64) ReferralList {
	return ReferralList{
		List: slice.Map(refs, func(idx int, src domain.Referral) Referral {
			return newReferral(src)
		}),
		Total: total,
	}
}
