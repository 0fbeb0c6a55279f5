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

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

type Job struct {
	Id             int64
	Code           string
	Title          string
	Description    string
	Department     string
	Status         Status
	Tags           []string
	XpReward       int64
	CoinReward     int64
	InternalXp     int64
	ReferralCoins  int64
	RecruiterName  string
	RecruiterEmail string
	Metadata       map[string]any
	Ctime          int64
	Utime          int64
}

// CreateOptions 是解析结果里面没有、需要管理员补充的字段
type CreateOptions struct {
	Status         Status
	Description    string
	Tags           []string
	XpReward       int64
	CoinReward     int64
	InternalXp     int64
	ReferralCoins  int64
	RecruiterName  string
	RecruiterEmail string
}

// ImportResult 允许部分成功，调用者需要同时看计数和 Errors
type ImportResult struct {
	JobID         int64
	Code          string
	SkillsCreated int
	SkillsLinked  int
	Errors        []string
}
