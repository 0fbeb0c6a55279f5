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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownColumn  = errors.New("未知的列")
	ErrReadOnlyColumn = errors.New("只读列")
	ErrInvalidValue   = errors.New("列的值不合法")
)

type ColumnType string

const (
	ColumnString ColumnType = "string"
	ColumnInt    ColumnType = "int"
	ColumnFloat  ColumnType = "float"
	ColumnBool   ColumnType = "bool"
	// ColumnJSON 以 JSON 字符串的形式存储
	ColumnJSON ColumnType = "json"
	// ColumnTime 以毫秒时间戳存储，输入可以是 RFC3339 字符串
	ColumnTime ColumnType = "time"
)

type Column struct {
	Name string
	Type ColumnType
	// ReadOnly 的列可以查询和导出，但是不能通过通用接口写入
	ReadOnly bool
}

// TableSchema 描述一张可以被通用管理接口操作的表
type TableSchema struct {
	Name    string
	Columns []Column
	// SearchColumn 为空时，忽略搜索关键字
	SearchColumn string
	// ConflictColumns 不为空时，写入使用 upsert
	ConflictColumns []string
	OrderColumn     string
	// ReadOnly 的表只允许查询和导出
	ReadOnly bool
}

func (s TableSchema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (s TableSchema) ColumnNames() []string {
	res := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		res = append(res, c.Name)
	}
	return res
}

func (s TableSchema) IsConflictColumn(name string) bool {
	for _, c := range s.ConflictColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Normalize 去掉值为 nil 或者空字符串的键，并且按照列类型转换值。
// 空字符串写入 UUID、数字这类列会出错，所以直接丢弃。
func (s TableSchema) Normalize(row Row) (Row, error) {
	res := make(Row, len(row))
	for key, val := range row {
		if val == nil {
			continue
		}
		if str, ok := val.(string); ok && str == "" {
			continue
		}
		col, ok := s.Column(key)
		if !ok {
			return nil, fmt.Errorf("%w %s.%s", ErrUnknownColumn, s.Name, key)
		}
		if col.ReadOnly {
			return nil, fmt.Errorf("%w %s.%s", ErrReadOnlyColumn, s.Name, key)
		}
		v, err := col.coerce(val)
		if err != nil {
			return nil, fmt.Errorf("%w %s.%s: %w", ErrInvalidValue, s.Name, key, err)
		}
		res[key] = v
	}
	return res, nil
}

// Present 把数据库返回的值转换成适合展示的形式
func (s TableSchema) Present(row Row) Row {
	for key, val := range row {
		col, ok := s.Column(key)
		if !ok || col.Type != ColumnJSON {
			continue
		}
		var raw []byte
		switch v := val.(type) {
		case string:
			raw = []byte(v)
		case []byte:
			raw = v
		default:
			continue
		}
		if json.Valid(raw) {
			row[key] = json.RawMessage(raw)
		}
	}
	return row
}

func (c Column) coerce(val any) (any, error) {
	switch c.Type {
	case ColumnString:
		return toString(val)
	case ColumnInt:
		return toInt(val)
	case ColumnFloat:
		return toFloat(val)
	case ColumnBool:
		return toBool(val)
	case ColumnJSON:
		return toJSON(val)
	case ColumnTime:
		return toMillis(val)
	default:
		return val, nil
	}
}

func toString(val any) (any, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int, int64, bool, json.Number:
		return fmt.Sprint(v), nil
	default:
		return nil, fmt.Errorf("期望字符串，实际是 %T", val)
	}
}

func toInt(val any) (any, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("期望整数，实际是 %v", v)
		}
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return nil, fmt.Errorf("期望整数，实际是 %T", val)
	}
}

func toFloat(val any) (any, error) {
	switch v := val.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return nil, fmt.Errorf("期望数字，实际是 %T", val)
	}
}

func toBool(val any) (any, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return nil, fmt.Errorf("期望布尔值，实际是 %T", val)
	}
}

func toJSON(val any) (any, error) {
	if str, ok := val.(string); ok && json.Valid([]byte(str)) {
		return str, nil
	}
	data, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func toMillis(val any) (any, error) {
	if str, ok := val.(string); ok {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(str)); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return toInt(val)
}

// NormalizeKey 校验键列并转换键的值，键列可以是只读列
func (s TableSchema) NormalizeKey(key RowKey) (RowKey, error) {
	res := make(RowKey, len(key))
	for name, val := range key {
		col, ok := s.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w %s.%s", ErrUnknownColumn, s.Name, name)
		}
		if val == nil {
			return nil, fmt.Errorf("%w %s.%s: 空值", ErrInvalidValue, s.Name, name)
		}
		v, err := col.coerce(val)
		if err != nil {
			return nil, fmt.Errorf("%w %s.%s: %w", ErrInvalidValue, s.Name, name, err)
		}
		res[name] = v
	}
	return res, nil
}
