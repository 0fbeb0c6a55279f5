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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/fnxlabs/levelup/internal/referral/internal/errs"
	"github.com/fnxlabs/levelup/internal/referral/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var errorCodes = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrReferralNotFound, code: errs.ReferralNotFound},
	{err: service.ErrInvalidTransition, code: errs.InvalidTransition},
	{err: service.ErrJobNotOpen, code: errs.JobNotOpen},
	{err: service.ErrInvalidCandidate, code: errs.InvalidCandidate},
	{err: service.ErrPayoutNotFound, code: errs.PayoutNotFound},
	{err: service.ErrPayoutNotEligible, code: errs.PayoutNotEligible},
	{err: service.ErrDuplicatedEntry, code: errs.DuplicatedReferral},
}

func errorResult(err error) (ginx.Result, error) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return ginx.Result{Code: c.code.Code, Msg: c.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
