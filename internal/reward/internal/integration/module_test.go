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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/fnxlabs/levelup/internal/reward"
	"github.com/fnxlabs/levelup/internal/reward/internal/errs"
	"github.com/fnxlabs/levelup/internal/reward/internal/event"
	"github.com/fnxlabs/levelup/internal/reward/internal/repository/dao"
	"github.com/fnxlabs/levelup/internal/reward/internal/web"
	"github.com/fnxlabs/levelup/internal/test"
	testioc "github.com/fnxlabs/levelup/internal/test/ioc"
	"github.com/fnxlabs/levelup/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const adminUid = 1

type ModuleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	mq     mq.MQ
	server *egin.Component
	svc    reward.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
	ec := testioc.InitCache()
	// users 表由用户模块维护
	user.InitModule(s.db, ec)
	module, err := reward.InitModule(s.db, s.mq, ec)
	require.NoError(s.T(), err)
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  adminUid,
			Data: map[string]string{"admin": "true"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `xp_transactions`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `users`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) createUser(uid, xp, coins int64) {
	now := time.Now().UnixMilli()
	err := s.db.Exec("INSERT INTO `users` (`id`, `email`, `current_xp`, `coins_balance`, `current_level`, `ctime`, `utime`) VALUES (?, ?, ?, ?, ?, ?, ?)",
		uid, "u"+time.Now().Format("150405.000000")+"@fnxlabs.com", xp, coins, 1+xp/1000, now, now).Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestAdjust() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		after  func(t *testing.T)
		req    web.AdjustReq

		wantCode int
	}{
		{
			name: "扣减超过余额归零",
			before: func(t *testing.T) {
				s.createUser(3, 0, 100)
			},
			after: func(t *testing.T) {
				var b dao.UserBalance
				err := s.db.Where("id = ?", 3).First(&b).Error
				require.NoError(t, err)
				assert.Equal(t, int64(0), b.CoinsBalance)
				var txn dao.XpTransaction
				err = s.db.Where("user_id = ?", 3).First(&txn).Error
				require.NoError(t, err)
				assert.Equal(t, int64(-150), txn.CoinAmount)
				assert.Equal(t, int64(0), txn.CoinBalance)
				assert.Equal(t, reward.SourceAdminAdjustment.String(), txn.SourceType)
			},
			req: web.AdjustReq{Uid: 3, Amount: -150, Kind: "coins", Reason: "纠正重复发放"},
		},
		{
			name: "经验值升级",
			before: func(t *testing.T) {
				s.createUser(4, 900, 0)
			},
			after: func(t *testing.T) {
				var b dao.UserBalance
				err := s.db.Where("id = ?", 4).First(&b).Error
				require.NoError(t, err)
				assert.Equal(t, int64(1100), b.CurrentXp)
				assert.Equal(t, int64(2), b.CurrentLevel)
			},
			req: web.AdjustReq{Uid: 4, Amount: 200, Kind: "xp", Reason: "分享会"},
		},
		{
			name:     "用户不存在",
			before:   func(t *testing.T) {},
			after:    func(t *testing.T) {},
			req:      web.AdjustReq{Uid: 404, Amount: 10, Kind: "xp", Reason: "test"},
			wantCode: errs.UserNotFound.Code,
		},
		{
			name: "金额为 0",
			before: func(t *testing.T) {
				s.createUser(5, 0, 0)
			},
			after:    func(t *testing.T) {},
			req:      web.AdjustReq{Uid: 5, Kind: "xp", Reason: "test"},
			wantCode: errs.InvalidAdjustment.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			data, err := json.Marshal(tc.req)
			require.NoError(t, err)
			req, err := http.NewRequest(http.MethodPost, "/admin/reward/adjust", bytes.NewReader(data))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Transaction]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *ModuleTestSuite) TestConsumeRewardEvent() {
	t := s.T()
	s.createUser(7, 0, 0)
	producer, err := s.mq.Producer(event.RewardEventsTopic)
	require.NoError(t, err)
	evt := event.RewardEvent{
		Key:         "referral_payout:77",
		Uid:         7,
		Coins:       200,
		SourceType:  reward.SourceReferral.String(),
		SourceLabel: "内推奖励",
		Metadata:    map[string]any{"payout_id": 77},
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// 同一个消息投递两次，只入账一次
	for i := 0; i < 2; i++ {
		_, err = producer.Produce(ctx, &mq.Message{Key: []byte("7"), Value: data})
		require.NoError(t, err)
	}
	assert.Eventually(t, func() bool {
		summary, err := s.svc.Summary(ctx, 7)
		return err == nil && summary.Balance.Coins == 200
	}, 5*time.Second, 100*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	var cnt int64
	err = s.db.Model(&dao.XpTransaction{}).Where("user_id = ?", 7).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *ModuleTestSuite) TestReconcile() {
	t := s.T()
	s.createUser(9, 0, 0)
	ctx := context.Background()
	_, err := s.svc.ManualAdjust(ctx, adminUid, 9, 300, "xp", "test")
	require.NoError(t, err)
	// 人为制造漂移
	err = s.db.Exec("UPDATE `users` SET `current_xp` = 5000 WHERE `id` = 9").Error
	require.NoError(t, err)

	data, err := json.Marshal(web.UidReq{Uid: 9})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/admin/reward/reconcile", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ReconcileResult]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.True(t, res.Drifted)
	assert.Equal(t, int64(5000), res.Before.Xp)
	assert.Equal(t, int64(300), res.After.Xp)
}
