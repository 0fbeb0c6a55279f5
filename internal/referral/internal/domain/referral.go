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

package domain

import "time"

// MaturityPeriod 候选人入职满 90 天之后奖励才能发放
const MaturityPeriod = 90 * 24 * time.Hour

type Status string

const (
	StatusNew       Status = "new"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// 只能前进一步；任意非终态都可以直接录用或者拒绝
var nextStatus = map[Status]Status{
	StatusNew:       StatusReviewing,
	StatusReviewing: StatusInterview,
	StatusInterview: StatusOffer,
	StatusOffer:     StatusHired,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewing, StatusInterview, StatusOffer, StatusHired, StatusRejected:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

func (s Status) CanTransitTo(to Status) bool {
	if s.IsTerminal() {
		return false
	}
	return to == StatusRejected || to == StatusHired || nextStatus[s] == to
}

type Referral struct {
	Id             int64
	ReferrerId     int64
	JobId          int64
	CandidateName  string
	CandidateEmail string
	CandidatePhone string
	ResumeURL      string
	Notes          string
	Status         Status
	BonusAmount    int64
	Ctime          int64
	Utime          int64
}

type PayoutStatus string

const (
	PayoutPendingMaturity PayoutStatus = "pending_maturity"
	PayoutEligible        PayoutStatus = "eligible"
	PayoutPaid            PayoutStatus = "paid"
)

func (s PayoutStatus) String() string {
	return string(s)
}

type Payout struct {
	Id           int64
	ReferralId   int64
	Uid          int64
	Amount       int64
	Status       PayoutStatus
	MaturityDate int64
	IsEligible   bool
	PaidAt       int64
	Ctime        int64
	Utime        int64
}

// NewPayout 录用的时候生成奖励，到期时间从录用时刻开始算
func NewPayout(r Referral, hiredAt time.Time) Payout {
	return Payout{
		ReferralId:   r.Id,
		Uid:          r.ReferrerId,
		Amount:       r.BonusAmount,
		Status:       PayoutPendingMaturity,
		MaturityDate: hiredAt.Add(MaturityPeriod).UnixMilli(),
		IsEligible:   true,
		Ctime:        hiredAt.UnixMilli(),
		Utime:        hiredAt.UnixMilli(),
	}
}
