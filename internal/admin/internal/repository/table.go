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

	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/admin/internal/domain"
	"github.com/fnxlabs/levelup/internal/admin/internal/repository/dao"
)

//go:generate mockgen -source=./table.go -destination=../../mocks/table_repo.mock.go -package=adminmocks TableRepository
type TableRepository interface {
	Find(ctx context.Context, schema domain.TableSchema, offset, limit int, search string) ([]domain.Row, int64, error)
	Upsert(ctx context.Context, schema domain.TableSchema, rows []domain.Row) error
	Delete(ctx context.Context, schema domain.TableSchema, key domain.RowKey) (int64, error)
}

type tableRepository struct {
	dao dao.TableDAO
}

func NewTableRepository(d dao.TableDAO) TableRepository {
	return &tableRepository{dao: d}
}

func (r *tableRepository) Find(ctx context.Context, schema domain.TableSchema, offset, limit int, search string) ([]domain.Row, int64, error) {
	rows, total, err := r.dao.Find(ctx, schema.Name, dao.Query{
		Columns:      schema.ColumnNames(),
		SearchColumn: schema.SearchColumn,
		Search:       search,
		OrderColumn:  schema.OrderColumn,
		Offset:       offset,
		Limit:        limit,
	})
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(rows, func(idx int, src map[string]any) domain.Row {
		return schema.Present(src)
	}), total, nil
}

func (r *tableRepository) Upsert(ctx context.Context, schema domain.TableSchema, rows []domain.Row) error {
	return r.dao.Upsert(ctx, schema.Name, schema.ConflictColumns,
		slice.Map(rows, func(idx int, src domain.Row) map[string]any {
			return src
		}))
}

func (r *tableRepository) Delete(ctx context.Context, schema domain.TableSchema, key domain.RowKey) (int64, error) {
	return r.dao.Delete(ctx, schema.Name, slice.Map(key.Conditions(), func(idx int, src domain.Condition) dao.Condition {
		return dao.Condition{Column: src.Column, Value: src.Value}
	}))
}
