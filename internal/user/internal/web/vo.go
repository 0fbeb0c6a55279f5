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

import "github.com/fnxlabs/levelup/internal/user/internal/domain"

type Profile struct {
	Id          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	JobTitle    string `json:"jobTitle"`
	IsAdmin     bool   `json:"isAdmin"`
	Onboarded   bool   `json:"onboarded"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:          u.Id,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Department:  u.Department,
		JobTitle:    u.JobTitle,
		Onboarded:   u.Onboarded,
	}
}

type EditReq struct {
	DisplayName string `json:"displayName"`
	Department  string `json:"department"`
	JobTitle    string `json:"jobTitle"`
}
