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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fnxlabs/levelup/internal/ai"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/fnxlabs/levelup/internal/skill"
	"github.com/fnxlabs/levelup/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUserNotFound = user.ErrUserNotFound

//go:generate mockgen -source=./onboarding.go -destination=../../mocks/onboarding.mock.go -package=onboardingmocks Service
type Service interface {
	// OnboardResume 解析简历，补全技能和资料，然后发放入职奖励。
	// 入职奖励只会发放一次，重复上传简历只会更新技能
	OnboardResume(ctx context.Context, uid int64, file domain.Upload) (domain.Result, error)
}

type onboardingService struct {
	extractor ai.Extractor
	aiSvc     ai.ExtractionService
	skillSvc  skill.Service
	userSvc   user.Service
	rewardSvc reward.Service
	logger    *elog.Component
}

func NewOnboardingService(extractor ai.Extractor,
	aiSvc ai.ExtractionService,
	skillSvc skill.Service,
	userSvc user.Service,
	rewardSvc reward.Service) Service {
	return &onboardingService{
		extractor: extractor,
		aiSvc:     aiSvc,
		skillSvc:  skillSvc,
		userSvc:   userSvc,
		rewardSvc: rewardSvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *onboardingService) OnboardResume(ctx context.Context, uid int64, file domain.Upload) (domain.Result, error) {
	text, err := s.extractor.Extract(file.Filename, file.ContentType, file.Data)
	if err != nil {
		return domain.Result{}, err
	}
	parsed, err := s.aiSvc.ParseResume(ctx, uid, text)
	if err != nil {
		return domain.Result{}, err
	}
	res := domain.Result{
		FullName:   parsed.FullName,
		Title:      parsed.Title,
		Department: parsed.Department,
		Errors:     []string{},
	}
	for _, ps := range parsed.Skills {
		created, err := s.linkSkill(ctx, uid, ps)
		if err != nil {
			s.logger.Warn("处理简历技能失败",
				elog.Int64("uid", uid),
				elog.String("skill", ps.Name),
				elog.FieldErr(err))
			res.Errors = append(res.Errors, fmt.Sprintf("技能 %s: %s", ps.Name, err.Error()))
			continue
		}
		if created {
			res.SkillsCreated++
		}
		res.SkillsLinked++
	}

	err = s.userSvc.FillProfile(ctx, uid, parsed.Title, parsed.Department)
	if err != nil {
		return domain.Result{}, err
	}

	txn, err := s.rewardSvc.GrantOnboardingBonus(ctx, uid)
	switch {
	case errors.Is(err, reward.ErrDuplicatedTransaction):
		s.logger.Debug("入职奖励已经发放过", elog.Int64("uid", uid))
	case err != nil:
		return domain.Result{}, fmt.Errorf("发放入职奖励失败: %w", err)
	default:
		res.BonusGranted = true
		res.Xp = txn.XpAmount
		res.Coins = txn.CoinAmount
	}
	return res, s.userSvc.MarkOnboarded(ctx, uid)
}

func (s *onboardingService) linkSkill(ctx context.Context, uid int64, ps ai.ParsedSkill) (bool, error) {
	sk, created, err := s.skillSvc.FindOrCreate(ctx, skill.NewSkill{
		Name:     ps.Name,
		Category: ps.Category,
		Source:   skill.SourceResumeParse,
	})
	if err != nil {
		return false, err
	}
	return created, s.skillSvc.LinkUser(ctx, skill.UserSkill{
		UserId:  uid,
		SkillId: sk.Id,
		Level:   ai.NormalizeLevel(float64(ps.Level)),
		Source:  skill.SourceResumeParse,
	})
}
