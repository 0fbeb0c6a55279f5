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

type SourceType string

const (
	SourceAdminAdjustment SourceType = "admin_adjustment"
	SourceOnboarding      SourceType = "onboarding"
	SourceReferral        SourceType = "referral"
)

func (s SourceType) String() string {
	return string(s)
}

// Kind 手动调整的时候指定调整经验值还是金币
type Kind string

const (
	KindXp    Kind = "xp"
	KindCoins Kind = "coins"
)

const (
	OnboardingXp      = 500
	OnboardingCoins   = 100
	DefaultXpPerLevel = 1000
)

// LevelPolicy 等级 = 1 + 经验值 / 每级经验值
type LevelPolicy struct {
	XpPerLevel int64
}

func (p LevelPolicy) Level(xp int64) int64 {
	per := p.XpPerLevel
	if per <= 0 {
		per = DefaultXpPerLevel
	}
	return 1 + xp/per
}

// NextLevelXp 升到下一级一共需要的经验值
func (p LevelPolicy) NextLevelXp(xp int64) int64 {
	per := p.XpPerLevel
	if per <= 0 {
		per = DefaultXpPerLevel
	}
	return p.Level(xp) * per
}

type Balance struct {
	Uid     int64
	Xp      int64
	Coins   int64
	Level   int64
	Version int64
}

// Apply 余额不会小于 0，扣减超过余额的时候直接归零
func (b Balance) Apply(xpDelta, coinDelta int64, policy LevelPolicy) Balance {
	b.Xp = max(0, b.Xp+xpDelta)
	b.Coins = max(0, b.Coins+coinDelta)
	b.Level = policy.Level(b.Xp)
	return b
}

func (b Balance) SameAmounts(other Balance) bool {
	return b.Xp == other.Xp && b.Coins == other.Coins && b.Level == other.Level
}

// Entry 是一次余额变更的请求
type Entry struct {
	Uid int64
	// Key 是幂等键，同一个 Key 只会入账一次
	Key         string
	SourceType  SourceType
	SourceLabel string
	XpDelta     int64
	CoinDelta   int64
	Metadata    map[string]any
}

// Transaction 流水只追加，不修改也不删除。
// XpAmount 和 CoinAmount 记录的是原始变动值，余额是截断之后的结果
type Transaction struct {
	Id          int64
	Uid         int64
	Key         string
	SourceType  SourceType
	SourceLabel string
	XpAmount    int64
	CoinAmount  int64
	XpBalance   int64
	CoinBalance int64
	Metadata    map[string]any
	Ctime       int64
}

// Fold 按照流水顺序重新计算余额
func Fold(txns []Transaction, policy LevelPolicy) Balance {
	b := Balance{Level: policy.Level(0)}
	for _, t := range txns {
		b = b.Apply(t.XpAmount, t.CoinAmount, policy)
	}
	return b
}

type Summary struct {
	Balance          Balance
	NextLevelXp      int64
	TransactionCount int64
	Recent           []Transaction
}

type ReconcileResult struct {
	Before  Balance
	After   Balance
	Drifted bool
}
