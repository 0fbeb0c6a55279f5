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

import (
	"sort"
)

var (
	colID    = Column{Name: "id", Type: ColumnInt}
	colCtime = Column{Name: "ctime", Type: ColumnTime, ReadOnly: true}
	colUtime = Column{Name: "utime", Type: ColumnTime, ReadOnly: true}
)

var registry = map[string]TableSchema{
	"jobs": {
		Name: "jobs",
		Columns: []Column{
			colID,
			{Name: "code", Type: ColumnString},
			{Name: "title", Type: ColumnString},
			{Name: "description", Type: ColumnString},
			{Name: "department", Type: ColumnString},
			{Name: "status", Type: ColumnString},
			{Name: "tags", Type: ColumnJSON},
			{Name: "xp_reward", Type: ColumnInt},
			{Name: "coin_reward", Type: ColumnInt},
			{Name: "internal_xp", Type: ColumnInt},
			{Name: "referral_coins", Type: ColumnInt},
			{Name: "recruiter_name", Type: ColumnString},
			{Name: "recruiter_email", Type: ColumnString},
			{Name: "metadata", Type: ColumnJSON},
			colCtime, colUtime,
		},
		SearchColumn:    "title",
		ConflictColumns: []string{"code"},
		OrderColumn:     "ctime",
	},
	"skills": {
		Name: "skills",
		Columns: []Column{
			colID,
			{Name: "slug", Type: ColumnString},
			{Name: "name", Type: ColumnString},
			{Name: "category", Type: ColumnString},
			{Name: "type", Type: ColumnString},
			{Name: "is_verified", Type: ColumnBool},
			{Name: "source", Type: ColumnString},
			colCtime, colUtime,
		},
		SearchColumn:    "name",
		ConflictColumns: []string{"slug"},
		OrderColumn:     "ctime",
	},
	"job_skills": {
		Name: "job_skills",
		Columns: []Column{
			colID,
			{Name: "job_id", Type: ColumnInt},
			{Name: "skill_id", Type: ColumnInt},
			{Name: "required_level", Type: ColumnInt},
			{Name: "weight", Type: ColumnFloat},
			{Name: "is_mandatory", Type: ColumnBool},
			colCtime, colUtime,
		},
		ConflictColumns: []string{"job_id", "skill_id"},
		OrderColumn:     "ctime",
	},
	"users": {
		Name: "users",
		Columns: []Column{
			colID,
			{Name: "display_name", Type: ColumnString},
			{Name: "email", Type: ColumnString},
			{Name: "department", Type: ColumnString},
			{Name: "job_title", Type: ColumnString},
			// 余额只能通过账本修改
			{Name: "current_xp", Type: ColumnInt, ReadOnly: true},
			{Name: "coins_balance", Type: ColumnInt, ReadOnly: true},
			{Name: "current_level", Type: ColumnInt, ReadOnly: true},
			{Name: "is_active", Type: ColumnBool},
			{Name: "onboarded", Type: ColumnBool},
			{Name: "version", Type: ColumnInt, ReadOnly: true},
			colCtime, colUtime,
		},
		SearchColumn:    "display_name",
		ConflictColumns: []string{"email"},
		OrderColumn:     "ctime",
	},
	"user_skills": {
		Name: "user_skills",
		Columns: []Column{
			colID,
			{Name: "user_id", Type: ColumnInt},
			{Name: "skill_id", Type: ColumnInt},
			{Name: "level", Type: ColumnInt},
			{Name: "source", Type: ColumnString},
			colCtime, colUtime,
		},
		ConflictColumns: []string{"user_id", "skill_id"},
		OrderColumn:     "ctime",
	},
	"xp_transactions": {
		Name: "xp_transactions",
		Columns: []Column{
			colID,
			{Name: "user_id", Type: ColumnInt},
			{Name: "biz_key", Type: ColumnString},
			{Name: "source_type", Type: ColumnString},
			{Name: "source_label", Type: ColumnString},
			{Name: "xp_amount", Type: ColumnInt},
			{Name: "coin_amount", Type: ColumnInt},
			{Name: "xp_balance", Type: ColumnInt},
			{Name: "coin_balance", Type: ColumnInt},
			{Name: "metadata", Type: ColumnJSON},
			colCtime,
		},
		SearchColumn: "source_label",
		OrderColumn:  "ctime",
		// 账本只追加
		ReadOnly: true,
	},
	"referrals": {
		Name: "referrals",
		Columns: []Column{
			colID,
			{Name: "referrer_id", Type: ColumnInt},
			{Name: "job_id", Type: ColumnInt},
			{Name: "candidate_name", Type: ColumnString},
			{Name: "candidate_email", Type: ColumnString},
			{Name: "candidate_phone", Type: ColumnString},
			{Name: "resume_url", Type: ColumnString},
			{Name: "notes", Type: ColumnString},
			// 状态只能通过状态机流转
			{Name: "status", Type: ColumnString, ReadOnly: true},
			{Name: "bonus_amount", Type: ColumnInt},
			colCtime, colUtime,
		},
		SearchColumn: "candidate_name",
		OrderColumn:  "ctime",
	},
	"referral_payouts": {
		Name: "referral_payouts",
		Columns: []Column{
			colID,
			{Name: "referral_id", Type: ColumnInt},
			{Name: "user_id", Type: ColumnInt},
			{Name: "amount", Type: ColumnInt},
			{Name: "status", Type: ColumnString},
			{Name: "maturity_date", Type: ColumnTime},
			{Name: "is_eligible", Type: ColumnBool},
			{Name: "paid_at", Type: ColumnTime},
			colCtime, colUtime,
		},
		OrderColumn: "ctime",
		ReadOnly:    true,
	},
	"ai_biz_configs": {
		Name: "ai_biz_configs",
		Columns: []Column{
			colID,
			{Name: "biz", Type: ColumnString},
			{Name: "model", Type: ColumnString},
			{Name: "max_input", Type: ColumnInt},
			{Name: "temperature", Type: ColumnFloat},
			{Name: "top_p", Type: ColumnFloat},
			{Name: "system_prompt", Type: ColumnString},
			colCtime, colUtime,
		},
		SearchColumn:    "biz",
		ConflictColumns: []string{"biz"},
		OrderColumn:     "ctime",
	},
}

func Lookup(name string) (TableSchema, bool) {
	s, ok := registry[name]
	return s, ok
}

// Schemas 按表名排序
func Schemas() []TableSchema {
	res := make([]TableSchema, 0, len(registry))
	for _, s := range registry {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}
