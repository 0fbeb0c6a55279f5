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

package reward

import (
	"github.com/fnxlabs/levelup/internal/reward/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward/internal/event"
	"github.com/fnxlabs/levelup/internal/reward/internal/service"
)

type Service = service.Service
type Transaction = domain.Transaction
type Entry = domain.Entry
type Summary = domain.Summary
type RewardEvent = event.RewardEvent

const (
	RewardEventsTopic     = event.RewardEventsTopic
	SourceAdminAdjustment = domain.SourceAdminAdjustment
	SourceOnboarding      = domain.SourceOnboarding
	SourceReferral        = domain.SourceReferral
)

var (
	ErrDuplicatedTransaction = service.ErrDuplicatedTransaction
	ErrUserNotFound          = service.ErrUserNotFound
)
