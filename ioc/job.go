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

package ioc

import (
	"context"
	"time"

	"github.com/fnxlabs/levelup/internal/referral"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(payoutJob *referral.MaturePayoutsJob) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.payout").Build(ecron.WithJob(funcJobWrapper(payoutJob))),
	}
}

// funcJobWrapper 统一记录任务的耗时和错误
func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	logger := elog.DefaultLogger.With(elog.String("cronjob", name))
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		if err != nil {
			logger.Error("定时任务执行失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return err
		}
		logger.Debug("定时任务执行完毕", elog.FieldCost(time.Since(start)))
		return nil
	}
}
