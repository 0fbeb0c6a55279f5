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

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

// EventCache 消费者用来挡住重复投递的消息，真正的幂等由流水表的唯一索引保证
type EventCache interface {
	SetNXEventKey(ctx context.Context, key string) (bool, error)
	DelEventKey(ctx context.Context, key string) (int64, error)
}

type rewardECache struct {
	ec ecache.Cache
}

func NewRewardECache(ec ecache.Cache) EventCache {
	return &rewardECache{
		ec: &ecache.NamespaceCache{
			Namespace: "reward:",
			C:         ec,
		},
	}
}

func (q *rewardECache) SetNXEventKey(ctx context.Context, key string) (bool, error) {
	return q.ec.SetNX(ctx, q.eventKey(key), 1, 24*time.Hour)
}

func (q *rewardECache) DelEventKey(ctx context.Context, key string) (int64, error) {
	return q.ec.Delete(ctx, q.eventKey(key))
}

func (q *rewardECache) eventKey(key string) string {
	return "event:" + key
}
