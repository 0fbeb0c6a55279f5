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

const (
	BizJobParse    = "job_parse"
	BizResumeParse = "resume_parse"
)

type LLMRequest struct {
	Uid int64
	// 请求id
	Tid string
	Biz string
	// 用户的输入
	Input string
	// 业务相关的配置
	Config BizConfig
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用的模型
	Model       string
	Temperature float64
	TopP        float64
	// 系统 Prompt，描述输出的 JSON 结构和评分规则
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	MaxInput int
	Utime    int64
}

type LLMRecord struct {
	Id     int64
	Tid    string
	Uid    int64
	Biz    string
	Tokens int64
	Input  string
	Status RecordStatus
	Answer string
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
