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

type FetchReq struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

type Page struct {
	Rows  []map[string]any `json:"rows"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Error string           `json:"error,omitempty"`
}

type UpsertReq struct {
	Rows []map[string]any `json:"rows"`
}

type UpsertResult struct {
	Success  bool     `json:"success"`
	Inserted int64    `json:"inserted"`
	Errors   []string `json:"errors"`
}

// DeleteReq Id 和 Key 二选一，Key 用于复合主键
type DeleteReq struct {
	Id  any            `json:"id,omitempty"`
	Key map[string]any `json:"key,omitempty"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ReadOnly bool   `json:"readOnly"`
}

type Schema struct {
	Name            string   `json:"name"`
	Columns         []Column `json:"columns"`
	SearchColumn    string   `json:"searchColumn,omitempty"`
	ConflictColumns []string `json:"conflictColumns,omitempty"`
	ReadOnly        bool     `json:"readOnly"`
}
