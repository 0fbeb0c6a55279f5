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

package dao

import (
	"context"
	"sort"
	"strings"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query 描述一次分页查询
type Query struct {
	Columns      []string
	SearchColumn string
	// Search 已经去掉了首尾空格，为空表示不过滤
	Search      string
	OrderColumn string
	Offset      int
	Limit       int
}

type Condition struct {
	Column string
	Value  any
}

// TableDAO 直接按照表名操作数据，表名和列名必须是经过校验的
type TableDAO interface {
	Find(ctx context.Context, table string, q Query) ([]map[string]any, int64, error)
	// Upsert 在同一个事务里面写入所有的行，任何一行失败都会回滚
	Upsert(ctx context.Context, table string, conflictColumns []string, rows []map[string]any) error
	Delete(ctx context.Context, table string, conds []Condition) (int64, error)
}

type GORMTableDAO struct {
	db *egorm.Component
}

func NewGORMTableDAO(db *egorm.Component) TableDAO {
	return &GORMTableDAO{db: db}
}

func (dao *GORMTableDAO) Find(ctx context.Context, table string, q Query) ([]map[string]any, int64, error) {
	query := func() *gorm.DB {
		db := dao.db.WithContext(ctx).Table(table)
		if q.SearchColumn != "" && q.Search != "" {
			db = db.Where(clause.Expr{
				SQL:  "LOWER(?) LIKE ?",
				Vars: []any{clause.Column{Name: q.SearchColumn}, likePattern(q.Search)},
			})
		}
		return db
	}
	var total int64
	err := query().Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	var rows []map[string]any
	db := query().Select(q.Columns).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderColumn}, Desc: true})
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	err = db.Limit(q.Limit).Find(&rows).Error
	return rows, total, err
}

func (dao *GORMTableDAO) Upsert(ctx context.Context, table string, conflictColumns []string, rows []map[string]any) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			db := tx.Table(table)
			if len(conflictColumns) > 0 {
				db = db.Clauses(onConflict(conflictColumns, row))
			}
			if err := db.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (dao *GORMTableDAO) Delete(ctx context.Context, table string, conds []Condition) (int64, error) {
	db := dao.db.WithContext(ctx).Table(table)
	for _, c := range conds {
		db = db.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	res := db.Delete(map[string]any{})
	return res.RowsAffected, res.Error
}

// onConflict 冲突时更新除了冲突列、id 和 ctime 之外的列
func onConflict(conflictColumns []string, row map[string]any) clause.OnConflict {
	skip := make(map[string]struct{}, len(conflictColumns)+2)
	for _, c := range conflictColumns {
		skip[c] = struct{}{}
	}
	skip["id"] = struct{}{}
	skip["ctime"] = struct{}{}
	updates := make([]string, 0, len(row))
	for col := range row {
		if _, ok := skip[col]; !ok {
			updates = append(updates, col)
		}
	}
	sort.Strings(updates)
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}
	if len(updates) == 0 {
		return clause.OnConflict{Columns: cols, DoNothing: true}
	}
	return clause.OnConflict{Columns: cols, DoUpdates: clause.AssignmentColumns(updates)}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}
