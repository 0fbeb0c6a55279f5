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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestReferralGORMDAO_Hire(t *testing.T) {
	// 2024-03-01 10:00 UTC 录用，90 天之后到期
	const hiredAt int64 = 1709287200000
	payout := ReferralPayout{
		ReferralId:   3,
		UserId:       7,
		Amount:       200,
		Status:       "pending_maturity",
		MaturityDate: 1717063200000,
		IsEligible:   true,
		Ctime:        hiredAt,
	}
	updateSQL := regexp.QuoteMeta("UPDATE `referrals` SET `status`=?,`utime`=? WHERE id = ? AND status = ?")
	insertSQL := regexp.QuoteMeta("INSERT INTO `referral_payouts`")
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantId  int64
		wantErr error
	}{
		{
			name: "状态和奖励一起提交",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).
					WithArgs("hired", hiredAt, int64(3), "offer").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(insertSQL).
					WithArgs(int64(3), int64(7), int64(200), "pending_maturity", int64(1717063200000),
						true, int64(0), hiredAt, hiredAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			wantId: 1,
		},
		{
			name: "状态已经变了",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusChanged,
		},
		{
			name: "奖励已经存在，状态回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(insertSQL).WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicatedPayout,
		},
		{
			name: "数据库错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(updateSQL).WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := NewReferralGORMDAO(newMockDB(t, conn))
			p, err := d.Hire(context.Background(), 3, "offer", payout)
			assert.Equal(t, tc.wantErr, err)
			if err == nil {
				assert.Equal(t, tc.wantId, p.Id)
				assert.Equal(t, hiredAt, p.Ctime)
				assert.Equal(t, 90*24*time.Hour, time.Duration(p.MaturityDate-p.Ctime)*time.Millisecond)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReferralGORMDAO_MarkPaid(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `referral_payouts` SET `paid_at`=?,`status`=?,`utime`=? WHERE id = ? AND status = ?")).
		WithArgs(int64(100), "paid", int64(100), int64(5), "eligible").
		WillReturnResult(sqlmock.NewResult(0, 0))
	d := NewReferralGORMDAO(newMockDB(t, conn))
	err = d.MarkPaid(context.Background(), 5, 100)
	assert.Equal(t, ErrStatusChanged, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
