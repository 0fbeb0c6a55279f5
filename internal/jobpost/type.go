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

package jobpost

import (
	"github.com/fnxlabs/levelup/internal/jobpost/internal/domain"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/service"
	"github.com/fnxlabs/levelup/internal/jobpost/internal/web"
)

type Service = service.JobService
type Orchestrator = service.Orchestrator
type JobDetail = service.JobDetail
type Handler = web.Handler
type AdminHandler = web.AdminHandler

type Job = domain.Job
type Status = domain.Status
type CreateOptions = domain.CreateOptions
type ImportResult = domain.ImportResult

const (
	StatusDraft  = domain.StatusDraft
	StatusOpen   = domain.StatusOpen
	StatusClosed = domain.StatusClosed
)

var ErrJobNotFound = service.ErrJobNotFound
