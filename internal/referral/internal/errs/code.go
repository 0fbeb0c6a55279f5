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

package errs

var (
	SystemError        = ErrorCode{Code: 514001, Msg: "系统错误"}
	ReferralNotFound   = ErrorCode{Code: 414001, Msg: "内推记录不存在"}
	InvalidTransition  = ErrorCode{Code: 414002, Msg: "当前状态不允许这个操作"}
	JobNotOpen         = ErrorCode{Code: 414003, Msg: "职位没有开放内推"}
	InvalidCandidate   = ErrorCode{Code: 414004, Msg: "候选人信息不完整"}
	PayoutNotFound     = ErrorCode{Code: 414005, Msg: "奖励记录不存在"}
	PayoutNotEligible  = ErrorCode{Code: 414006, Msg: "奖励还不能发放"}
	DuplicatedReferral = ErrorCode{Code: 414007, Msg: "已经推荐过这个候选人"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
