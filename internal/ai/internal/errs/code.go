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
	SystemError       = ErrorCode{Code: 516001, Msg: "系统错误"}
	MissingCredential = ErrorCode{Code: 516002, Msg: "AI 服务没有配置"}
	ModelUnavailable  = ErrorCode{Code: 516003, Msg: "AI 服务暂时不可用，请稍后重试"}
	ResponseFormat    = ErrorCode{Code: 516004, Msg: "AI 返回的结果无法解析，请重试"}
	SchemaMismatch    = ErrorCode{Code: 516005, Msg: "AI 返回的结果不完整，请调整输入后重试"}

	EmptyInput      = ErrorCode{Code: 416001, Msg: "输入不能为空"}
	InputTooLong    = ErrorCode{Code: 416002, Msg: "输入内容过长"}
	FileTooLarge    = ErrorCode{Code: 416003, Msg: "文件不能超过 10MB"}
	UnsupportedType = ErrorCode{Code: 416004, Msg: "只支持 PDF、TXT 和 DOCX 文件"}
	EmptyDocument   = ErrorCode{Code: 416005, Msg: "文件中没有识别到文字，请上传文字版简历"}
	InvalidDocument = ErrorCode{Code: 416006, Msg: "文件已损坏"}
	MissingFile     = ErrorCode{Code: 416007, Msg: "请上传文件"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
