// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main implements the sirseer-pulls command-line interface.
// It lists the pull requests of a GitHub repository that were created,
// updated, merged or closed inside a date window and prints them as JSON.
//
// Usage:
//
//	sirseer-pulls fetch <owner>/<repo> --since YYYY-MM-DD --until YYYY-MM-DD [flags]
//
// Example:
//
//	export TOKEN=your_token
//	sirseer-pulls fetch octo/hello --since 2022-03-01 --until 2022-03-10
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Repository lookup failure or rate limit
//   - 3: Network error
package main
