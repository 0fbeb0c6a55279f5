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
	"math"
	"strings"
	"time"

	"github.com/fnxlabs/levelup/internal/admin/internal/domain"
	"github.com/fnxlabs/levelup/internal/admin/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

const (
	DefaultLimit  = 20
	MaxLimit      = 100
	MaxExportRows = 5000
	// MaxPage 保证 (page-1)*limit 在任何平台上都不会溢出
	MaxPage = math.MaxInt32 / MaxLimit
)

var (
	ErrInvalidTable  = errors.New("不支持的表")
	ErrReadOnlyTable = errors.New("只读的表")
)

//go:generate mockgen -source=./table.go -destination=../../mocks/table_service.mock.go -package=adminmocks TableService
type TableService interface {
	Schemas() []domain.TableSchema
	Schema(table string) (domain.TableSchema, error)
	// Fetch 只有表名非法的时候返回 error，其余的错误放在 PageResult.Error 里面
	Fetch(ctx context.Context, table string, page, limit int, search string) (domain.PageResult, error)
	Upsert(ctx context.Context, table string, rows []domain.Row) (domain.UpsertResult, error)
	Delete(ctx context.Context, table string, key domain.RowKey) (domain.DeleteResult, error)
	// ExportAll 最多导出 MaxExportRows 行
	ExportAll(ctx context.Context, table string) ([]domain.Row, error)
}

type tableService struct {
	repo   repository.TableRepository
	logger *elog.Component
}

func NewTableService(repo repository.TableRepository) TableService {
	return &tableService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *tableService) Schemas() []domain.TableSchema {
	return domain.Schemas()
}

func (s *tableService) Schema(table string) (domain.TableSchema, error) {
	schema, ok := domain.Lookup(table)
	if !ok {
		return domain.TableSchema{}, fmt.Errorf("%w: %s", ErrInvalidTable, table)
	}
	return schema, nil
}

func (s *tableService) Fetch(ctx context.Context, table string, page, limit int, search string) (domain.PageResult, error) {
	schema, err := s.Schema(table)
	if err != nil {
		return domain.PageResult{}, err
	}
	if page < 1 {
		page = 1
	}
	page = min(page, MaxPage)
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	res := domain.PageResult{Page: page, Limit: limit, Rows: []domain.Row{}}
	rows, total, err := s.repo.Find(ctx, schema, (page-1)*limit, limit, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error("查询表数据失败", elog.String("table", table), elog.FieldErr(err))
		res.Error = err.Error()
		return res, nil
	}
	res.Rows = rows
	res.Total = total
	return res, nil
}

func (s *tableService) Upsert(ctx context.Context, table string, rows []domain.Row) (domain.UpsertResult, error) {
	schema, err := s.writableSchema(table)
	if err != nil {
		return domain.UpsertResult{}, err
	}
	if len(rows) == 0 {
		return domain.UpsertResult{Success: true, Errors: []string{}}, nil
	}
	now := time.Now().UnixMilli()
	normalized := make([]domain.Row, 0, len(rows))
	var errs []string
	for i, row := range rows {
		r, err := schema.Normalize(row)
		if err != nil {
			errs = append(errs, fmt.Sprintf("第 %d 行: %s", i+1, err.Error()))
			continue
		}
		s.stamp(schema, r, now)
		normalized = append(normalized, r)
	}
	// 整批数据在一个事务里面写入，有一行不合法就整批放弃
	if len(errs) > 0 {
		return domain.UpsertResult{Errors: errs}, nil
	}
	err = s.repo.Upsert(ctx, schema, normalized)
	if err != nil {
		s.logger.Error("批量写入表数据失败", elog.String("table", table), elog.FieldErr(err))
		return domain.UpsertResult{Errors: []string{err.Error()}}, nil
	}
	return domain.UpsertResult{
		Success:  true,
		Inserted: int64(len(normalized)),
		Errors:   []string{},
	}, nil
}

func (s *tableService) stamp(schema domain.TableSchema, row domain.Row, now int64) {
	if _, ok := schema.Column("ctime"); ok {
		row["ctime"] = now
	}
	if _, ok := schema.Column("utime"); ok {
		row["utime"] = now
	}
}

func (s *tableService) Delete(ctx context.Context, table string, key domain.RowKey) (domain.DeleteResult, error) {
	schema, err := s.writableSchema(table)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	// 没有条件等于删除整张表
	if len(key) == 0 {
		return domain.DeleteResult{Error: "删除条件不能为空"}, nil
	}
	key, err = schema.NormalizeKey(key)
	if err != nil {
		return domain.DeleteResult{Error: err.Error()}, nil
	}
	_, err = s.repo.Delete(ctx, schema, key)
	if err != nil {
		s.logger.Error("删除表数据失败", elog.String("table", table), elog.FieldErr(err))
		return domain.DeleteResult{Error: err.Error()}, nil
	}
	return domain.DeleteResult{Success: true}, nil
}

func (s *tableService) ExportAll(ctx context.Context, table string) ([]domain.Row, error) {
	schema, err := s.Schema(table)
	if err != nil {
		return nil, err
	}
	rows, _, err := s.repo.Find(ctx, schema, 0, MaxExportRows, "")
	return rows, err
}

func (s *tableService) writableSchema(table string) (domain.TableSchema, error) {
	schema, err := s.Schema(table)
	if err != nil {
		return domain.TableSchema{}, err
	}
	if schema.ReadOnly {
		return domain.TableSchema{}, fmt.Errorf("%w: %s", ErrReadOnlyTable, table)
	}
	return schema, nil
}
