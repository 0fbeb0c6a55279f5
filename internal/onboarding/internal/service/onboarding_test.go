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
	"testing"

	"github.com/fnxlabs/levelup/internal/ai"
	aimocks "github.com/fnxlabs/levelup/internal/ai/mocks"
	"github.com/fnxlabs/levelup/internal/onboarding/internal/domain"
	"github.com/fnxlabs/levelup/internal/reward"
	rewardmocks "github.com/fnxlabs/levelup/internal/reward/mocks"
	"github.com/fnxlabs/levelup/internal/skill"
	skillmocks "github.com/fnxlabs/levelup/internal/skill/mocks"
	usermocks "github.com/fnxlabs/levelup/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	extractor *aimocks.MockExtractor
	aiSvc     *aimocks.MockExtractionService
	skillSvc  *skillmocks.MockSkillService
	userSvc   *usermocks.MockUserService
	rewardSvc *rewardmocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		extractor: aimocks.NewMockExtractor(ctrl),
		aiSvc:     aimocks.NewMockExtractionService(ctrl),
		skillSvc:  skillmocks.NewMockSkillService(ctrl),
		userSvc:   usermocks.NewMockUserService(ctrl),
		rewardSvc: rewardmocks.NewMockService(ctrl),
	}
}

func TestOnboardingService_OnboardResume(t *testing.T) {
	file := domain.Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("resume")}
	parsed := ai.ParsedResume{
		FullName:   "Alice",
		Title:      "Frontend Engineer",
		Department: "Engineering",
		Skills: []ai.ParsedSkill{
			{Name: "React", Level: 4, Category: "technical"},
			{Name: "沟通", Level: 3, Category: "soft"},
		},
	}
	expectSkills := func(m mocks) {
		m.skillSvc.EXPECT().FindOrCreate(gomock.Any(), skill.NewSkill{
			Name: "React", Category: "technical", Source: skill.SourceResumeParse,
		}).Return(skill.Skill{Id: 7, Slug: "react", Name: "React"}, true, nil)
		m.skillSvc.EXPECT().LinkUser(gomock.Any(), skill.UserSkill{
			UserId: 1, SkillId: 7, Level: 4, Source: skill.SourceResumeParse,
		}).Return(nil)
		m.skillSvc.EXPECT().FindOrCreate(gomock.Any(), skill.NewSkill{
			Name: "沟通", Category: "soft", Source: skill.SourceResumeParse,
		}).Return(skill.Skill{}, false, skill.ErrInvalidSkillName)
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantRes domain.Result
		wantErr error
	}{
		{
			name: "首次入职发放奖励",
			mock: func(m mocks) {
				m.extractor.EXPECT().Extract("cv.txt", "text/plain", []byte("resume")).Return("resume text", nil)
				m.aiSvc.EXPECT().ParseResume(gomock.Any(), int64(1), "resume text").Return(parsed, nil)
				expectSkills(m)
				m.userSvc.EXPECT().FillProfile(gomock.Any(), int64(1), "Frontend Engineer", "Engineering").Return(nil)
				m.rewardSvc.EXPECT().GrantOnboardingBonus(gomock.Any(), int64(1)).
					Return(reward.Transaction{XpAmount: 500, CoinAmount: 100}, nil)
				m.userSvc.EXPECT().MarkOnboarded(gomock.Any(), int64(1)).Return(nil)
			},
			wantRes: domain.Result{
				FullName:      "Alice",
				Title:         "Frontend Engineer",
				Department:    "Engineering",
				SkillsCreated: 1,
				SkillsLinked:  1,
				Errors:        []string{"技能 沟通: " + skill.ErrInvalidSkillName.Error()},
				BonusGranted:  true,
				Xp:            500,
				Coins:         100,
			},
		},
		{
			name: "重复上传不再发放奖励",
			mock: func(m mocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return("resume text", nil)
				m.aiSvc.EXPECT().ParseResume(gomock.Any(), int64(1), "resume text").Return(parsed, nil)
				expectSkills(m)
				m.userSvc.EXPECT().FillProfile(gomock.Any(), int64(1), "Frontend Engineer", "Engineering").Return(nil)
				m.rewardSvc.EXPECT().GrantOnboardingBonus(gomock.Any(), int64(1)).
					Return(reward.Transaction{}, reward.ErrDuplicatedTransaction)
				m.userSvc.EXPECT().MarkOnboarded(gomock.Any(), int64(1)).Return(nil)
			},
			wantRes: domain.Result{
				FullName:      "Alice",
				Title:         "Frontend Engineer",
				Department:    "Engineering",
				SkillsCreated: 1,
				SkillsLinked:  1,
				Errors:        []string{"技能 沟通: " + skill.ErrInvalidSkillName.Error()},
			},
		},
		{
			name: "不支持的文件类型",
			mock: func(m mocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", ai.ErrUnsupportedType)
			},
			wantErr: ai.ErrUnsupportedType,
		},
		{
			name: "用户不存在",
			mock: func(m mocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return("resume text", nil)
				m.aiSvc.EXPECT().ParseResume(gomock.Any(), int64(1), "resume text").
					Return(ai.ParsedResume{Title: "Engineer"}, nil)
				m.userSvc.EXPECT().FillProfile(gomock.Any(), int64(1), "Engineer", "").Return(ErrUserNotFound)
			},
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			svc := NewOnboardingService(m.extractor, m.aiSvc, m.skillSvc, m.userSvc, m.rewardSvc)
			res, err := svc.OnboardResume(context.Background(), 1, file)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
