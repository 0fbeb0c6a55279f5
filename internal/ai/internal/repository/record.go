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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/fnxlabs/levelup/internal/ai/internal/domain"
	"github.com/fnxlabs/levelup/internal/ai/internal/repository/dao"
)

//go:generate mockgen -source=./record.go -destination=../../mocks/record_repo.mock.go -package=aimocks LLMRecordRepo
type LLMRecordRepo interface {
	SaveRecord(ctx context.Context, r domain.LLMRecord) (int64, error)
}

type llmRecordRepo struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepo(d dao.LLMRecordDAO) LLMRecordRepo {
	return &llmRecordRepo{dao: d}
}

func (repo *llmRecordRepo) SaveRecord(ctx context.Context, r domain.LLMRecord) (int64, error) {
	return repo.dao.Save(ctx, dao.LLMRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Uid:    r.Uid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Status: r.Status.ToUint8(),
		Input:  sqlx.NewNullString(r.Input),
		Answer: sqlx.NewNullString(r.Answer),
	})
}
