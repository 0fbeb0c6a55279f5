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

const RewardEventsTopic = "reward_events"

// RewardEvent 其它模块发放奖励的消息，Key 同时也是流水的幂等键
type RewardEvent struct {
	Key         string         `json:"key"`
	Uid         int64          `json:"uid"`
	Xp          int64          `json:"xp"`
	Coins       int64          `json:"coins"`
	SourceType  string         `json:"source_type"`
	SourceLabel string         `json:"source_label"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
