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
	"testing"

	"github.com/fnxlabs/levelup/internal/user/internal/domain"
	"github.com/fnxlabs/levelup/internal/user/internal/repository"
	repomocks "github.com/fnxlabs/levelup/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_FillProfile(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) repository.UserRepository
		jobTitle   string
		department string
		wantErr    error
	}{
		{
			name: "去掉首尾空格",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FillEmptyFields(gomock.Any(), int64(1), "Frontend Engineer", "Engineering").Return(nil)
				return repo
			},
			jobTitle:   " Frontend Engineer ",
			department: "Engineering\n",
		},
		{
			name: "都为空不访问数据库",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			jobTitle:   "  ",
			department: "",
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FillEmptyFields(gomock.Any(), int64(1), "", "HR").Return(errors.New("mock db error"))
				return repo
			},
			department: "HR",
			wantErr:    errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			err := svc.FillProfile(context.Background(), 1, tc.jobTitle, tc.department)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestUserService_BatchProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByIds(gomock.Any(), []int64{1, 2, 3}).Return([]domain.User{
		{Id: 1, DisplayName: "Ada"},
		{Id: 3, DisplayName: "Linus"},
	}, nil)
	svc := NewUserService(repo)

	res, err := svc.BatchProfile(context.Background(), []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, map[int64]domain.User{
		1: {Id: 1, DisplayName: "Ada"},
		3: {Id: 3, DisplayName: "Linus"},
	}, res)

	res, err = svc.BatchProfile(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().Update(gomock.Any(), domain.User{Id: 1, DisplayName: "Ada", JobTitle: "SRE"}).Return(nil)
	err := NewUserService(repo).UpdateProfile(context.Background(), domain.User{
		Id:          1,
		DisplayName: " Ada ",
		JobTitle:    "SRE ",
	})
	assert.NoError(t, err)
}
