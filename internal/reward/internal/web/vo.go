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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
)

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type UidReq struct {
	Uid int64 `json:"uid"`
}

type AdjustReq struct {
	Uid    int64  `json:"uid"`
	Amount int64  `json:"amount"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type Balance struct {
	Xp          int64 `json:"xp"`
	Coins       int64 `json:"coins"`
	Level       int64 `json:"level"`
	NextLevelXp int64 `json:"nextLevelXp,omitempty"`
}

func newBalance(b domain.Balance) Balance {
	return Balance{Xp: b.Xp, Coins: b.Coins, Level: b.Level}
}

type Transaction struct {
	Id          int64  `json:"id"`
	Uid         int64  `json:"uid"`
	SourceType  string `json:"sourceType"`
	SourceLabel string `json:"sourceLabel"`
	XpAmount    int64  `json:"xpAmount"`
	CoinAmount  int64  `json:"coinAmount"`
	XpBalance   int64  `json:"xpBalance"`
	CoinBalance int64  `json:"coinBalance"`
	Ctime       int64  `json:"ctime"`
}

func newTransaction(t domain.Transaction) Transaction {
	return Transaction{
		Id:          t.Id,
		Uid:         t.Uid,
		SourceType:  t.SourceType.String(),
		SourceLabel: t.SourceLabel,
		XpAmount:    t.XpAmount,
		CoinAmount:  t.CoinAmount,
		XpBalance:   t.XpBalance,
		CoinBalance: t.CoinBalance,
		Ctime:       t.Ctime,
	}
}

func newTransactions(txns []domain.Transaction) []Transaction {
	return slice.Map(txns, func(idx int, src domain.Transaction) Transaction {
		return newTransaction(src)
	})
}

type Summary struct {
	Balance          Balance       `json:"balance"`
	TransactionCount int64         `json:"transactionCount"`
	Recent           []Transaction `json:"recent"`
}

type TransactionList struct {
	List  []Transaction `json:"list"`
	Total int64         `json:"total"`
}

type ReconcileResult struct {
	Before  Balance `json:"before"`
	After   Balance `json:"after"`
	Drifted bool    `json:"drifted"`
}
