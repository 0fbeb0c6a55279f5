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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/event/cache"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type RewardEventConsumer struct {
	svc      service.Service
	cache    cache.EventCache
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRewardEventConsumer(svc service.Service, c cache.EventCache, q mq.MQ) (*RewardEventConsumer, error) {
	const groupID = "reward"
	consumer, err := q.Consumer(RewardEventsTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &RewardEventConsumer{
		svc:      svc,
		cache:    c,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RewardEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费奖励事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RewardEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt RewardEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

func (c *RewardEventConsumer) handle(ctx context.Context, evt RewardEvent) error {
	ok, err := c.cache.SetNXEventKey(ctx, evt.Key)
	if err != nil {
		// 缓存不可用的时候依赖流水表的唯一索引
		c.logger.Warn("设置奖励事件幂等键失败", elog.String("key", evt.Key), elog.FieldErr(err))
	} else if !ok {
		c.logger.Debug("重复的奖励事件", elog.String("key", evt.Key))
		return nil
	}
	_, err = c.svc.Apply(ctx, domain.Entry{
		Uid:         evt.Uid,
		Key:         evt.Key,
		SourceType:  domain.SourceType(evt.SourceType),
		SourceLabel: evt.SourceLabel,
		XpDelta:     evt.Xp,
		CoinDelta:   evt.Coins,
		Metadata:    evt.Metadata,
	})
	if errors.Is(err, service.ErrDuplicatedTransaction) {
		return nil
	}
	if err != nil {
		// 允许重新投递之后再处理
		_, _ = c.cache.DelEventKey(ctx, evt.Key)
		return fmt.Errorf("入账失败 key=%s: %w", evt.Key, err)
	}
	return nil
}

func (c *RewardEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
