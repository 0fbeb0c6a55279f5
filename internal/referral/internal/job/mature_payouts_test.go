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

package job

import (
	"context"
	"errors"
	"testing"

	referralmocks "github.com/fnxlabs/levelup/internal/referral/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMaturePayoutsJob_Run(t *testing.T) {
	t.Run("分批处理直到不足一批", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := referralmocks.NewMockService(ctrl)
		gomock.InOrder(
			svc.EXPECT().MaturePayouts(gomock.Any(), gomock.Any(), 2).Return(int64(2), nil),
			svc.EXPECT().MaturePayouts(gomock.Any(), gomock.Any(), 2).Return(int64(1), nil),
		)
		assert.NoError(t, NewMaturePayoutsJob(svc, 2).Run(context.Background()))
	})
	t.Run("数据库错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := referralmocks.NewMockService(ctrl)
		svc.EXPECT().MaturePayouts(gomock.Any(), gomock.Any(), 2).Return(int64(0), errors.New("mock db error"))
		assert.Error(t, NewMaturePayoutsJob(svc, 2).Run(context.Background()))
	})
}
