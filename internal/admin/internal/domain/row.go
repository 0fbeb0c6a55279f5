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

// Row 是一行数据，键为列名
type Row map[string]any

// Condition 是一个等值条件
type Condition struct {
	Column string
	Value  any
}

// RowKey 定位一行数据。单主键表使用 IDKey，复合主键表传入所有的键列
type RowKey map[string]any

func IDKey(id any) RowKey {
	return RowKey{"id": id}
}

// Conditions 每个键都会变成一个等值条件，多个条件之间是 AND 关系。
// 按列名排序，保证生成的 SQL 稳定。
func (k RowKey) Conditions() []Condition {
	res := make([]Condition, 0, len(k))
	for col, val := range k {
		res = append(res, Condition{Column: col, Value: val})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Column < res[j].Column
	})
	return res
}

type PageResult struct {
	Rows  []Row
	Total int64
	Page  int
	Limit int
	// Error 不为空说明查询失败，此时 Rows 为空
	Error string
}

type UpsertResult struct {
	Success  bool
	Inserted int64
	Errors   []string
}

type DeleteResult struct {
	Success bool
	Error   string
}
