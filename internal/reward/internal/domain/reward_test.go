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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance_Apply(t *testing.T) {
	policy := LevelPolicy{XpPerLevel: 1000}
	testCases := []struct {
		name      string
		balance   Balance
		xpDelta   int64
		coinDelta int64
		want      Balance
	}{
		{
			name:      "扣减超过余额归零",
			balance:   Balance{Xp: 0, Coins: 100, Level: 1},
			coinDelta: -150,
			want:      Balance{Xp: 0, Coins: 0, Level: 1},
		},
		{
			name:    "升级",
			balance: Balance{Xp: 800, Level: 1},
			xpDelta: 500,
			want:    Balance{Xp: 1300, Level: 2},
		},
		{
			name:    "降级",
			balance: Balance{Xp: 2100, Level: 3},
			xpDelta: -200,
			want:    Balance{Xp: 1900, Level: 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.balance.Apply(tc.xpDelta, tc.coinDelta, policy))
		})
	}
}

func TestFold(t *testing.T) {
	policy := LevelPolicy{}
	b := Fold([]Transaction{
		{XpAmount: 500, CoinAmount: 100},
		{CoinAmount: -150},
		{CoinAmount: 30, XpAmount: 600},
	}, policy)
	// 中间一步被截断到 0，后面从 0 开始累加
	assert.Equal(t, Balance{Xp: 1100, Coins: 30, Level: 2}, b)
	assert.Equal(t, int64(2000), policy.NextLevelXp(b.Xp))
}
