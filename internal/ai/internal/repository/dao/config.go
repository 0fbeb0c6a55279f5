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

	"github.com/ego-component/egorm"
)

// ConfigDAO 只读，配置通过通用表管理接口维护
type ConfigDAO interface {
	FindByBiz(ctx context.Context, biz string) (BizConfig, error)
}

type configGORMDAO struct {
	db *egorm.Component
}

func NewConfigGORMDAO(db *egorm.Component) ConfigDAO {
	return &configGORMDAO{db: db}
}

func (g *configGORMDAO) FindByBiz(ctx context.Context, biz string) (BizConfig, error) {
	var res BizConfig
	err := g.db.WithContext(ctx).Where("biz = ?", biz).First(&res).Error
	return res, err
}

// BizConfig 空字段表示沿用内置的默认值
type BizConfig struct {
	Id  int64  `gorm:"primaryKey;autoIncrement"`
	Biz string `gorm:"type:varchar(64);uniqueIndex;not null;comment:job_parse 或者 resume_parse"`
	// Model 为空的时候使用 ai.model
	Model        string  `gorm:"type:varchar(128)"`
	MaxInput     int     `gorm:"comment:输入的最大字符数"`
	Temperature  float64 `gorm:"comment:为 0 表示使用默认值"`
	TopP         float64
	SystemPrompt string `gorm:"type:text"`
	Ctime        int64
	Utime        int64
}

func (BizConfig) TableName() string {
	return "ai_biz_configs"
}
