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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
)

// waitFor 依赖的组件启动得比应用慢，指数退避重试 ping，全部失败就 panic
func waitFor(name string, ping func(ctx context.Context) error) {
	const (
		initialInterval = time.Second
		maxInterval     = 10 * time.Second
		maxRetries      = 10
		timeout         = 5 * time.Second
	)
	strategy, err := retry.NewExponentialBackoffRetryStrategy(initialInterval, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = ping(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic(fmt.Sprintf("等待 %s 启动失败: %s", name, err))
		}
		elog.DefaultLogger.Warn("依赖还没有就绪", elog.String("name", name),
			elog.FieldErr(err), elog.String("next", next.String()))
		time.Sleep(next)
	}
}
