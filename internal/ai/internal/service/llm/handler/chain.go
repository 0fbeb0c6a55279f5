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

package handler

// Chain 把 builders 依次套在 root 外面，builders[0] 最先拿到请求
func Chain(root Handler, builders ...Builder) Handler {
	for i := len(builders) - 1; i >= 0; i-- {
		root = builders[i].Next(root)
	}
	return root
}
