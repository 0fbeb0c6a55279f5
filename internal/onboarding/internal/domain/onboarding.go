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

package domain

// Upload 是员工上传的简历文件
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Result struct {
	FullName      string
	Title         string
	Department    string
	SkillsCreated int
	SkillsLinked  int
	// Errors 单个技能处理失败不影响其它技能
	Errors []string
	// BonusGranted 为 false 说明之前已经发放过入职奖励
	BonusGranted bool
	Xp           int64
	Coins        int64
}
