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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/fnxlabs/levelup/internal/referral/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*MaturePayoutsJob)(nil)

type MaturePayoutsJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewMaturePayoutsJob(svc service.Service, limit int) *MaturePayoutsJob {
	return &MaturePayoutsJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (j *MaturePayoutsJob) Name() string {
	return "MaturePayoutsJob"
}

func (j *MaturePayoutsJob) Run(ctx context.Context) error {
	now := time.Now()
	var total int64
	for {
		cnt, err := j.svc.MaturePayouts(ctx, now, j.limit)
		if err != nil {
			return fmt.Errorf("更新到期的内推奖励失败: %w", err)
		}
		total += cnt
		if cnt < int64(j.limit) {
			break
		}
	}
	if total > 0 {
		j.logger.Info("内推奖励到期", elog.Int64("count", total))
	}
	return nil
}
