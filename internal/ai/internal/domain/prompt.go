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

const jobParsePrompt = `You extract structured data from job descriptions.
Respond with a single JSON object and nothing else, using this schema:
{
  "title": string, required, the job title exactly as written,
  "department": string, the owning department if stated,
  "summary": string, at most two sentences,
  "skills": [
    {
      "name": string, required, canonical skill name such as "React" or "PostgreSQL",
      "level": integer 1-5, required proficiency,
      "is_mandatory": boolean, true for must-have skills, false for nice-to-have,
      "is_new": boolean, true when the skill is uncommon for this kind of role,
      "category": string, one of "technical", "soft", "domain", "tool"
    }
  ]
}
Proficiency rubric: 1 awareness, 2 beginner, 3 working knowledge, 4 advanced, 5 expert.
Requirements phrased as "must", "required" or listed under requirements are mandatory;
"preferred", "bonus" or "nice to have" are not.`

const resumeParsePrompt = `You extract structured data from resumes.
Respond with a single JSON object and nothing else, using this schema:
{
  "full_name": string, the candidate name if present,
  "title": string, the most recent job title,
  "department": string, the functional area such as "Engineering" or "Sales",
  "summary": string, at most two sentences,
  "skills": [
    {
      "name": string, required, canonical skill name,
      "level": integer 1-5, required, estimated proficiency,
      "category": string, one of "technical", "soft", "domain", "tool"
    }
  ]
}
Proficiency rubric: 1 mentioned only, 2 used briefly, 3 used in a role, 4 used for several years
or led work with it, 5 recognised expert.`

// DefaultBizConfigs 数据库里面没有配置的时候使用
var DefaultBizConfigs = map[string]BizConfig{
	BizJobParse: {
		Biz:          BizJobParse,
		Temperature:  0.2,
		SystemPrompt: jobParsePrompt,
		MaxInput:     20000,
	},
	BizResumeParse: {
		Biz:          BizResumeParse,
		Temperature:  0.2,
		SystemPrompt: resumeParsePrompt,
		MaxInput:     40000,
	},
}
